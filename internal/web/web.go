// Package web renders the dashboard and public passport pages.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/Tellwe/obedir-qr-codes/internal/model"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Page names accepted by Renderer.Render.
const (
	PageLanding  = "landing.html"
	PageProducts = "products.html"
	PageForm     = "form.html"
	PagePassport = "passport.html"
	PageError    = "error.html"
)

var pageNames = []string{PageLanding, PageProducts, PageForm, PagePassport, PageError}

// Page is the data passed to the layout. Data holds the page specific model.
type Page struct {
	Title string
	Nav   string
	Data  any
}

// Renderer executes the embedded page templates.
type Renderer struct {
	pages  map[string]*template.Template
	logger zerolog.Logger
}

// NewRenderer parses every page together with the shared layout.
func NewRenderer(logger zerolog.Logger) (*Renderer, error) {
	r := &Renderer{
		pages:  make(map[string]*template.Template, len(pageNames)),
		logger: logger.With().Str("component", "renderer").Logger(),
	}

	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFiles, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}

	return r, nil
}

// Render writes the page with the given status. The page is executed into a
// buffer first so a template error never produces a half written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) {
	t, ok := r.pages[name]
	if !ok {
		r.logger.Error().Str("page", name).Msg("unknown page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		r.logger.Error().Err(err).Str("page", name).Msg("failed to render page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Warn().Err(err).Str("page", name).Msg("failed to write page")
	}
}

// RenderError renders the error page.
func (r *Renderer) RenderError(w http.ResponseWriter, status int, title, message string) {
	r.Render(w, status, PageError, Page{
		Title: title,
		Data:  ErrorPage{Status: status, Title: title, Message: message},
	})
}

// StaticHandler serves the embedded stylesheet and scripts.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

var funcs = template.FuncMap{
	"categoryLabel": model.CategoryLabel,
	"formatDate": func(t *time.Time) string {
		if t == nil || t.IsZero() {
			return "-"
		}
		return t.Format("Jan 2, 2006")
	},
	"lines": model.SplitLines,
	"orDash": func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	},
}
