package router

import (
	"net/http"

	"github.com/Tellwe/obedir-qr-codes/internal/config"
	"github.com/Tellwe/obedir-qr-codes/internal/handler"
	"github.com/Tellwe/obedir-qr-codes/internal/middleware"
	"github.com/Tellwe/obedir-qr-codes/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Dashboard *handler.DashboardHandler
	Public    *handler.PublicHandler
	Product   *handler.ProductHandler
}

// DashboardRealm is the basic auth realm of the dashboard routes.
const DashboardRealm = "obedir-dashboard"

// New creates a new HTTP router with all routes and middleware configured.
// The dashboard takes basic auth with the dashboard user and the API key, the
// JSON API takes the API key in X-API-Key.
func New(h Handlers, auth config.AuthConfig, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Recovery -> RequestID -> Logging for every route
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(logger))

	// Health check endpoint (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Handle("/static/*", http.StripPrefix("/static/", web.StaticHandler()))

	r.Get("/", h.Dashboard.Landing)
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(chimw.BasicAuth(DashboardRealm, map[string]string{auth.DashboardUser: auth.APIKey}))

		r.Get("/", h.Dashboard.Redirect)
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Dashboard.List)
			r.Post("/", h.Dashboard.Create)
			r.Get("/new", h.Dashboard.New)
			r.Get("/{id}", h.Dashboard.Edit)
			r.Post("/{id}", h.Dashboard.Update)
			r.Post("/{id}/delete", h.Dashboard.Delete)
			r.Post("/{id}/status", h.Dashboard.SetStatus)
			r.Get("/{id}/qr.png", h.Dashboard.QRCode)
		})
	})

	r.Get("/product/{id}", h.Public.View)
	r.Get("/product/{id}/qr.png", h.Public.QRCode)

	r.Route("/api/products", func(r chi.Router) {
		r.Use(middleware.CORS)
		r.Use(middleware.APIKeyAuth(auth.APIKey, logger))

		r.Get("/", h.Product.List)
		r.Post("/", h.Product.Create)
		r.Get("/{id}", h.Product.Get)
		r.Put("/{id}", h.Product.Update)
		r.Delete("/{id}", h.Product.Delete)
		r.Put("/{id}/status", h.Product.SetStatus)
	})

	r.NotFound(h.Public.NotFound)

	return r
}
