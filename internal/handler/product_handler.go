package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Tellwe/obedir-qr-codes/internal/model"
	"github.com/Tellwe/obedir-qr-codes/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler serves the JSON passport API.
type ProductHandler struct {
	service service.PassportService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.PassportService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// CreateResponse is returned by POST /api/products.
type CreateResponse struct {
	UUID string `json:"uuid"`
}

// StatusRequest is the body of PUT /api/products/{id}/status.
type StatusRequest struct {
	Status string `json:"status"`
}

// List handles GET /api/products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

// Get handles GET /api/products/{id} requests.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := h.decodePassport(w, r)
	if !ok {
		return
	}

	id, err := h.service.Create(r.Context(), p)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, CreateResponse{UUID: id})
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := h.decodePassport(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.Update(r.Context(), id, p); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	p.UUID = id
	writeJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetStatus handles PUT /api/products/{id}/status requests.
func (h *ProductHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	status, err := model.ParseStatus(req.Status)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if err := h.service.SetStatus(r.Context(), chi.URLParam(r, "id"), status); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, StatusRequest{Status: string(status)})
}

// decodePassport reads and validates a passport body. It writes the error
// response itself and reports whether the handler should continue.
func (h *ProductHandler) decodePassport(w http.ResponseWriter, r *http.Request) (model.Passport, bool) {
	var p model.Passport
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return p, false
	}

	form := model.NewPassportForm(p)
	if err := form.Validate(); err != nil {
		writeServiceError(w, err, h.logger)
		return p, false
	}

	return p, true
}
