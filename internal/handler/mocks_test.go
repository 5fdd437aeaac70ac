package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/Tellwe/obedir-qr-codes/internal/model"
	"github.com/Tellwe/obedir-qr-codes/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testID = "3f1c2b7e-8d4a-4e7b-9a55-1c2d3e4f5a6b"

// MockPassportService is a mock implementation of PassportService.
type MockPassportService struct {
	mock.Mock
}

func (m *MockPassportService) List(ctx context.Context, query string) ([]model.Summary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Summary), args.Error(1)
}

func (m *MockPassportService) Get(ctx context.Context, id string) (*model.Passport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Passport), args.Error(1)
}

func (m *MockPassportService) Create(ctx context.Context, p model.Passport) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockPassportService) Update(ctx context.Context, id string, p model.Passport) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

func (m *MockPassportService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPassportService) SetStatus(ctx context.Context, id string, status model.PassportStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockPassportService) View(ctx context.Context, id string) (*model.PassportView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PassportView), args.Error(1)
}

func (m *MockPassportService) QRCode(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// withURLParam attaches a chi URL parameter to the request.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newTestRenderer(t *testing.T) *web.Renderer {
	t.Helper()
	r, err := web.NewRenderer(zerolog.Nop())
	require.NoError(t, err)
	return r
}

func newTestPassport(name string) model.Passport {
	var p model.Passport
	p.BasicDetails.BasicInformation.ProductName = name
	p.BasicDetails.BasicInformation.SKU = "SKU-1"
	p.BasicDetails.BasicInformation.Category = "home"
	return p
}
