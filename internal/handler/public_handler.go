package handler

import (
	"net/http"

	"github.com/Tellwe/obedir-qr-codes/internal/service"
	"github.com/Tellwe/obedir-qr-codes/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// PublicHandler serves the public passport pages reached by scanning a QR code.
type PublicHandler struct {
	service  service.PassportService
	renderer *web.Renderer
	logger   zerolog.Logger
}

// NewPublicHandler creates a new public handler.
func NewPublicHandler(service service.PassportService, renderer *web.Renderer, logger zerolog.Logger) *PublicHandler {
	return &PublicHandler{
		service:  service,
		renderer: renderer,
		logger:   logger.With().Str("handler", "public").Logger(),
	}
}

// View handles GET /product/{id} requests.
func (h *PublicHandler) View(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	view, err := h.service.View(r.Context(), id)
	if err != nil {
		h.logger.Debug().Err(err).Str("passport_id", id).Msg("passport not shown")
		renderErrorPage(h.renderer, w, err)
		return
	}

	h.renderer.Render(w, http.StatusOK, web.PagePassport, web.Page{
		Title: view.Name,
		Data:  web.PassportPage{View: *view, QRURL: "/product/" + id + "/qr.png"},
	})
}

// QRCode handles GET /product/{id}/qr.png requests.
func (h *PublicHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.service.QRCode(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		renderErrorPage(h.renderer, w, err)
		return
	}

	writePNG(w, png, h.logger)
}

// NotFound renders the 404 page for unknown routes.
func (h *PublicHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.RenderError(w, http.StatusNotFound, "Page not found", "The page you are looking for does not exist.")
}
