package web

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"textlens/internal/middleware"
)

// NewRouter constructs and returns the HTTP handler serving all five
// views plus static assets.
//
// Routes:
//
//	GET  /                → Home (status screen)
//	GET  /analyze         → AnalyzeForm
//	POST /analyze         → AnalyzeSubmit
//	GET  /history         → History (paged list)
//	GET  /history/{id}    → HistoryDetail
//	GET  /login           → LoginForm
//	POST /login           → LoginSubmit
//	POST /login/resend    → ResendConfirmation
//	GET  /register        → RegisterForm
//	POST /register        → RegisterSubmit
//	POST /logout          → Logout
//	GET  /static/*        → embedded assets
//
// Middleware chain (applied in order):
//  1. WithRequestLogging(logger) — request ids + structured request logs
//  2. Recoverer                  — panics become 500s, never crashes
//  3. cors.Handler               — permissive same-app CORS defaults
func NewRouter(h *Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithRequestLogging(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedMethods:   []string{"GET", "POST"},
		AllowCredentials: true,
	}))

	r.Get("/", h.Home)

	r.Get("/analyze", h.AnalyzeForm)
	r.Post("/analyze", h.AnalyzeSubmit)

	r.Get("/history", h.History)
	r.Get("/history/{id}", h.HistoryDetail)

	r.Get("/login", h.LoginForm)
	r.Post("/login", h.LoginSubmit)
	r.Post("/login/resend", h.ResendConfirmation)
	r.Get("/register", h.RegisterForm)
	r.Post("/register", h.RegisterSubmit)
	r.Post("/logout", h.Logout)

	staticFS, _ := fs.Sub(assets, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	return r
}
