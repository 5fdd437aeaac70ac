package service

import (
	"context"

	"github.com/Tellwe/obedir-qr-codes/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of passportapi.Client.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) List(ctx context.Context) ([]model.Passport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Passport), args.Error(1)
}

func (m *MockClient) Read(ctx context.Context, id string) (*model.Passport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Passport), args.Error(1)
}

func (m *MockClient) Create(ctx context.Context, p model.Passport) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockClient) Update(ctx context.Context, id string, p model.Passport) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

func (m *MockClient) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockIndexRepository is a mock implementation of repository.IndexRepository.
type MockIndexRepository struct {
	mock.Mock
}

func (m *MockIndexRepository) Upsert(ctx context.Context, entry *model.IndexEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockIndexRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.IndexEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.IndexEntry), args.Error(1)
}

func (m *MockIndexRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.IndexEntry, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.IndexEntry), args.Error(1)
}

func (m *MockIndexRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.PassportStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockIndexRepository) IncrementScans(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIndexRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStore is a mock implementation of archive.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Put(ctx context.Context, key string, data []byte) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

func (m *MockStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
