package handler

import (
	"errors"
	"net/http"

	"github.com/Tellwe/obedir-qr-codes/internal/model"
	"github.com/Tellwe/obedir-qr-codes/internal/qr"
	"github.com/Tellwe/obedir-qr-codes/internal/service"
	"github.com/Tellwe/obedir-qr-codes/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"
	"github.com/rs/zerolog"
)

const productsPath = "/dashboard/products"

// DashboardHandler serves the HTML product dashboard.
type DashboardHandler struct {
	service       service.PassportService
	renderer      *web.Renderer
	decoder       *schema.Decoder
	publicBaseURL string
	logger        zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(
	service service.PassportService,
	renderer *web.Renderer,
	publicBaseURL string,
	logger zerolog.Logger,
) *DashboardHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &DashboardHandler{
		service:       service,
		renderer:      renderer,
		decoder:       decoder,
		publicBaseURL: publicBaseURL,
		logger:        logger.With().Str("handler", "dashboard").Logger(),
	}
}

// Landing handles GET / requests.
func (h *DashboardHandler) Landing(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, web.PageLanding, web.Page{Title: "Welcome"})
}

// Redirect handles GET /dashboard requests.
func (h *DashboardHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, productsPath, http.StatusFound)
}

// List handles GET /dashboard/products requests.
func (h *DashboardHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	page := web.ProductsPage{Query: query, EmptyMessage: web.EmptyProductsMessage}

	status := http.StatusOK
	summaries, err := h.service.List(r.Context(), query)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list products")
		status, _, page.Error = errorStatus(err)
	}
	page.Products = summaries

	h.renderer.Render(w, status, web.PageProducts, web.Page{Title: "Products", Nav: "products", Data: page})
}

// New handles GET /dashboard/products/new requests.
func (h *DashboardHandler) New(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, http.StatusOK, "", model.PassportForm{}, r.URL.Query().Get("tab"), "")
}

// Create handles POST /dashboard/products requests.
func (h *DashboardHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, tab, err := h.decodeForm(w, r)
	if err != nil {
		status, _, message := errorStatus(err)
		h.renderForm(w, status, "", form, tab, message)
		return
	}
	form.UUID = ""

	if _, err := h.service.Create(r.Context(), form.ToPassport()); err != nil {
		h.logger.Error().Err(err).Str("product_name", form.Name).Msg("failed to create product")
		status, _, message := errorStatus(err)
		h.renderForm(w, status, "", form, tab, message)
		return
	}

	http.Redirect(w, r, productsPath, http.StatusSeeOther)
}

// Edit handles GET /dashboard/products/{id} requests.
func (h *DashboardHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.renderServiceError(w, err)
		return
	}

	form := model.NewPassportForm(*p)
	form.UUID = id
	h.renderForm(w, http.StatusOK, id, form, r.URL.Query().Get("tab"), "")
}

// Update handles POST /dashboard/products/{id} requests.
func (h *DashboardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	form, tab, err := h.decodeForm(w, r)
	form.UUID = id
	if err != nil {
		status, _, message := errorStatus(err)
		h.renderForm(w, status, id, form, tab, message)
		return
	}

	if err := h.service.Update(r.Context(), id, form.ToPassport()); err != nil {
		h.logger.Error().Err(err).Str("passport_id", id).Msg("failed to update product")
		if errors.Is(err, model.ErrInvalidPassportID) || errors.Is(err, model.ErrPassportNotFound) {
			h.renderServiceError(w, err)
			return
		}
		status, _, message := errorStatus(err)
		h.renderForm(w, status, id, form, tab, message)
		return
	}

	http.Redirect(w, r, productsPath, http.StatusSeeOther)
}

// Delete handles POST /dashboard/products/{id}/delete requests.
func (h *DashboardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error().Err(err).Str("passport_id", id).Msg("failed to delete product")
		h.renderServiceError(w, err)
		return
	}

	http.Redirect(w, r, productsPath, http.StatusSeeOther)
}

// SetStatus handles POST /dashboard/products/{id}/status requests.
func (h *DashboardHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.renderer.RenderError(w, http.StatusBadRequest, "Invalid request", "The submitted form could not be read.")
		return
	}

	status, err := model.ParseStatus(r.PostForm.Get("status"))
	if err == nil {
		err = h.service.SetStatus(r.Context(), id, status)
	}
	if err != nil {
		h.logger.Error().Err(err).Str("passport_id", id).Msg("failed to change product status")
		h.renderServiceError(w, err)
		return
	}

	http.Redirect(w, r, productsPath, http.StatusSeeOther)
}

// QRCode handles GET /dashboard/products/{id}/qr.png requests.
func (h *DashboardHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	png, err := h.service.QRCode(r.Context(), id)
	if err != nil {
		h.renderServiceError(w, err)
		return
	}

	writePNG(w, png, h.logger)
}

// decodeForm parses and validates the posted product form. The returned form
// and tab are usable for a re-render even when err is set.
func (h *DashboardHandler) decodeForm(w http.ResponseWriter, r *http.Request) (model.PassportForm, string, error) {
	var form model.PassportForm

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.logger.Warn().Err(err).Msg("failed to parse product form")
		return form, web.ActiveTab(""), model.NewDomainError(model.ErrCodeInvalidForm, "The submitted form could not be read")
	}

	tab := web.ActiveTab(r.PostForm.Get("active_tab"))
	if err := h.decoder.Decode(&form, r.PostForm); err != nil {
		h.logger.Warn().Err(err).Msg("failed to decode product form")
		return form, tab, model.NewDomainError(model.ErrCodeInvalidForm, "The submitted form could not be read")
	}

	if err := form.Validate(); err != nil {
		return form, tab, err
	}

	return form, tab, nil
}

// renderForm renders the product editor. An empty id renders the create form.
func (h *DashboardHandler) renderForm(w http.ResponseWriter, status int, id string, form model.PassportForm, tab, message string) {
	page := web.FormPage{
		Heading:    web.TitleNewProduct,
		Action:     productsPath,
		Form:       form,
		Categories: model.Categories,
		Tabs:       web.FormTabs,
		ActiveTab:  web.ActiveTab(tab),
		Error:      message,
	}
	nav := "new"

	if id != "" {
		page.Heading = web.TitleEditProduct
		page.Action = productsPath + "/" + id
		page.PassportID = id
		page.QRURL = productsPath + "/" + id + "/qr.png"
		page.PublicURL = qr.PassportURL(h.publicBaseURL, id)
		nav = "products"
	}

	h.renderer.Render(w, status, web.PageForm, web.Page{Title: page.Heading, Nav: nav, Data: page})
}

// renderServiceError renders the error page matching a service error.
func (h *DashboardHandler) renderServiceError(w http.ResponseWriter, err error) {
	renderErrorPage(h.renderer, w, err)
}
