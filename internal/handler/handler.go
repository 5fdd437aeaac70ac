package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Tellwe/obedir-qr-codes/internal/model"
	"github.com/Tellwe/obedir-qr-codes/internal/web"

	"github.com/rs/zerolog"
)

// maxBodyBytes limits request bodies of the JSON API and the dashboard forms.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code, code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeServiceError maps a service error to its HTTP status and writes it.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	status, code, message := errorStatus(err)
	writeError(w, status, code, message, logger)
}

// errorStatus maps an error to an HTTP status, an error code and a message
// safe to show to clients.
func errorStatus(err error) (int, string, string) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError, model.ErrCodeInternalError, "Internal server error"
	}

	switch domainErr.Code {
	case model.ErrCodeInvalidJSON,
		model.ErrCodeInvalidForm,
		model.ErrCodeMissingField,
		model.ErrCodeInvalidPassportID,
		model.ErrCodeInvalidCategory,
		model.ErrCodeInvalidStatus:
		return http.StatusBadRequest, domainErr.Code, domainErr.Message
	case model.ErrCodePassportNotFound:
		return http.StatusNotFound, domainErr.Code, domainErr.Message
	case model.ErrCodeUpstream:
		return http.StatusBadGateway, domainErr.Code, domainErr.Message
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized, domainErr.Code, domainErr.Message
	default:
		return http.StatusInternalServerError, model.ErrCodeInternalError, "Internal server error"
	}
}

// renderErrorPage renders the HTML error page matching err.
func renderErrorPage(renderer *web.Renderer, w http.ResponseWriter, err error) {
	status, code, message := errorStatus(err)
	switch code {
	case model.ErrCodePassportNotFound, model.ErrCodeInvalidPassportID:
		renderer.RenderError(w, http.StatusNotFound, "Product not found", "This product passport does not exist or is no longer available.")
	default:
		renderer.RenderError(w, status, "Something went wrong", message)
	}
}

// writePNG writes a PNG image response.
func writePNG(w http.ResponseWriter, data []byte, logger zerolog.Logger) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Warn().Err(err).Msg("failed to write image")
	}
}
