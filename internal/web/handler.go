// Package web provides the view layer: five server-rendered screens that
// read the session store and call the API client. Handlers are pure
// consumers; every collaborator failure is rendered inline.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"textlens/internal/apiclient"
	"textlens/internal/cache"
	"textlens/internal/session"
)

//go:embed templates/*.html static/*.css
var assets embed.FS

// pages lists the content templates, each rendered inside the layout.
var pages = []string{"home", "analyze", "history", "detail", "login", "register"}

// Client is the slice of the API client the views need.
type Client interface {
	HealthCheck(ctx context.Context) apiclient.Health
	AnalyzeText(ctx context.Context, text string) (apiclient.Analysis, error)
	GetHistory(ctx context.Context, page, limit int) []apiclient.Analysis
	GetAnalysisByID(ctx context.Context, id string) (apiclient.Analysis, error)
	ResendConfirmation(ctx context.Context, email string) error
}

// Handler carries the dependencies shared by all views.
type Handler struct {
	// Client performs the collaborator calls.
	Client Client
	// Store is the shared session holder.
	Store *session.Store
	// Cache holds recently fetched analyses.
	Cache *cache.Analyses
	// Log is the structured logger.
	Log *zap.Logger

	templates map[string]*template.Template
}

// NewHandler constructs a Handler with all content templates parsed.
func NewHandler(client Client, store *session.Store, analyses *cache.Analyses, log *zap.Logger) (*Handler, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(assets, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Handler{
		Client:    client,
		Store:     store,
		Cache:     analyses,
		Log:       log,
		templates: templates,
	}, nil
}

// baseData is the view state every template receives.
type baseData struct {
	Title           string
	User            *apiclient.User
	IsAuthenticated bool
	Online          bool
	Loading         bool
}

// base snapshots the session state for a view.
func (h *Handler) base(title string) baseData {
	return baseData{
		Title:           title,
		User:            h.Store.CurrentUser(),
		IsAuthenticated: h.Store.IsAuthenticated(),
		Online:          h.Store.Online(),
		Loading:         h.Store.Loading(),
	}
}

// render writes one page with the given status. A template failure at this
// point is a programming error; it is logged and turned into a bare 500.
func (h *Handler) render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := h.templates[page]
	if !ok {
		h.Log.Error("unknown template", zap.String("page", page))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		h.Log.Error("render failed", zap.String("page", page), zap.Error(err))
	}
}
