package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Tellwe/obedir-qr-codes/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validPassportJSON = `{
	"basic_details": {
		"basic_information": {"product_name": "Desk Lamp", "SKU": "LAMP-1", "category": "electronics"}
	}
}`

func TestProductHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockReturn     []model.Summary
		mockError      error
		expectedStatus int
		expectedCount  int
	}{
		{
			name:           "Success",
			query:          "",
			mockReturn:     []model.Summary{{ID: testID, Name: "Desk Lamp"}, {ID: "b", Name: "Chair"}},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:           "Search",
			query:          "lamp",
			mockReturn:     []model.Summary{{ID: testID, Name: "Desk Lamp"}},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:           "Upstream failure",
			mockError:      model.ErrUpstream,
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockPassportService)
			h := NewProductHandler(mockService, zerolog.Nop())

			if tt.mockError != nil {
				mockService.On("List", mock.Anything, tt.query).Return(nil, tt.mockError)
			} else {
				mockService.On("List", mock.Anything, tt.query).Return(tt.mockReturn, nil)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/products?q="+tt.query, nil)
			w := httptest.NewRecorder()

			h.List(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var summaries []model.Summary
				require.NoError(t, json.NewDecoder(w.Body).Decode(&summaries))
				assert.Len(t, summaries, tt.expectedCount)
			} else {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, model.ErrCodeUpstream, resp.Error)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockError      error
		expectedStatus int
	}{
		{name: "Success", id: testID, expectedStatus: http.StatusOK},
		{name: "Invalid ID", id: "abc", mockError: model.ErrInvalidPassportID, expectedStatus: http.StatusBadRequest},
		{name: "Not found", id: testID, mockError: model.ErrPassportNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockPassportService)
			h := NewProductHandler(mockService, zerolog.Nop())

			if tt.mockError != nil {
				mockService.On("Get", mock.Anything, tt.id).Return(nil, tt.mockError)
			} else {
				p := newTestPassport("Desk Lamp")
				p.UUID = tt.id
				mockService.On("Get", mock.Anything, tt.id).Return(&p, nil)
			}

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/products/"+tt.id, nil), "id", tt.id)
			w := httptest.NewRecorder()

			h.Get(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var p model.Passport
				require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
				assert.Equal(t, "Desk Lamp", p.Name())
				assert.Equal(t, testID, p.UUID)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectService  bool
		mockReturn     string
		mockError      error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Success",
			body:           validPassportJSON,
			expectService:  true,
			mockReturn:     testID,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Invalid JSON",
			body:           `{"basic_details":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
		{
			name:           "Missing SKU",
			body:           `{"basic_details":{"basic_information":{"product_name":"Desk Lamp"}}}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeMissingField,
		},
		{
			name:           "Unknown category",
			body:           `{"basic_details":{"basic_information":{"product_name":"Desk Lamp","SKU":"L1","category":"toys"}}}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidCategory,
		},
		{
			name:           "Upstream failure",
			body:           validPassportJSON,
			expectService:  true,
			mockError:      model.ErrUpstream,
			expectedStatus: http.StatusBadGateway,
			expectedCode:   model.ErrCodeUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockPassportService)
			h := NewProductHandler(mockService, zerolog.Nop())

			if tt.expectService {
				mockService.On("Create", mock.Anything, mock.MatchedBy(func(p model.Passport) bool {
					return p.Name() == "Desk Lamp"
				})).Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				var resp CreateResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, testID, resp.UUID)
			} else {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedCode, resp.Error)
			}
			if !tt.expectService {
				mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockPassportService)
		h := NewProductHandler(mockService, zerolog.Nop())
		mockService.On("Update", mock.Anything, testID, mock.Anything).Return(nil)

		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/products/"+testID, strings.NewReader(validPassportJSON)), "id", testID)
		w := httptest.NewRecorder()

		h.Update(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var p model.Passport
		require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
		assert.Equal(t, testID, p.UUID)
		mockService.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		mockService := new(MockPassportService)
		h := NewProductHandler(mockService, zerolog.Nop())
		mockService.On("Update", mock.Anything, testID, mock.Anything).Return(model.ErrPassportNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/products/"+testID, strings.NewReader(validPassportJSON)), "id", testID)
		w := httptest.NewRecorder()

		h.Update(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		mockError      error
		expectedStatus int
	}{
		{name: "Success", expectedStatus: http.StatusNoContent},
		{name: "Not found", mockError: model.ErrPassportNotFound, expectedStatus: http.StatusNotFound},
		{name: "Upstream failure", mockError: model.ErrUpstream, expectedStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockPassportService)
			h := NewProductHandler(mockService, zerolog.Nop())
			mockService.On("Delete", mock.Anything, testID).Return(tt.mockError)

			req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/products/"+testID, nil), "id", testID)
			w := httptest.NewRecorder()

			h.Delete(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_SetStatus(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectService  bool
		expectedStatus int
	}{
		{name: "Deactivate", body: `{"status":"inactive"}`, expectService: true, expectedStatus: http.StatusOK},
		{name: "Unknown status", body: `{"status":"archived"}`, expectedStatus: http.StatusBadRequest},
		{name: "Invalid JSON", body: `status=inactive`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockPassportService)
			h := NewProductHandler(mockService, zerolog.Nop())
			if tt.expectService {
				mockService.On("SetStatus", mock.Anything, testID, model.StatusInactive).Return(nil)
			}

			req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/products/"+testID+"/status", strings.NewReader(tt.body)), "id", testID)
			w := httptest.NewRecorder()

			h.SetStatus(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if !tt.expectService {
				mockService.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
			}
			mockService.AssertExpectations(t)
		})
	}
}
