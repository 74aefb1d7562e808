package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"dojo_path/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// RouterDeps はルーター構築に必要なハンドラとミドルウェアです
type RouterDeps struct {
	Logger *slog.Logger
	CORS   *cors.Cors

	Auth       *AuthHandler
	Catalog    *CatalogHandler
	Progress   *ProgressHandler
	Profile    *ProfileHandler
	Navigation *NavigationHandler
	Health     *HealthHandler

	// RequireUser はログイン必須、OptionalUser はログイン任意のルートに適用する
	RequireUser  func(http.Handler) http.Handler
	OptionalUser func(http.Handler) http.Handler

	// UploadsDir が空でなければ /uploads で静的配信する (ローカルストレージ用)
	UploadsDir string
}

func NewRouter(d RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(d.Logger))
	if d.CORS != nil {
		r.Use(d.CORS.Handler)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		if d.Health != nil {
			r.Get("/health", d.Health.Health)
		}
		r.Post("/auth/register", d.Auth.Register)
		r.Get("/auth/verify", d.Auth.VerifyAccount)
		r.Post("/auth/login", d.Auth.Login)
		r.Post("/auth/forgot-password", d.Auth.RequestPasswordReset)
		r.Post("/auth/reset-password", d.Auth.ResetPassword)
		r.Get("/auth/confirm-email", d.Auth.ConfirmEmailChange)

		// --- Optional auth routes ---
		r.Group(func(r chi.Router) {
			r.Use(d.OptionalUser)

			r.Get("/disciplines", d.Catalog.ListDisciplines)
			r.Get("/disciplines/{idOrSlug}", d.Catalog.GetDiscipline)
			r.Get("/categories/{idOrSlug}", d.Catalog.GetCategory)

			r.Get("/navigation", d.Navigation.Current)
			r.Post("/navigation", d.Navigation.Navigate)
			r.Post("/navigation/back", d.Navigation.Back)
		})

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(d.RequireUser)

			r.Post("/auth/logout", d.Auth.Logout)
			r.Put("/auth/password", d.Auth.ChangePassword)
			r.Put("/auth/email", d.Auth.RequestEmailChange)
			r.Delete("/auth/account", d.Auth.DeleteAccount)
			r.Get("/me", d.Auth.GetMe)

			r.Route("/techniques/{id}", func(r chi.Router) {
				r.Get("/", d.Progress.GetTechnique)
				r.Post("/sections/{section}", d.Progress.MarkSectionRead)
				r.Post("/complete", d.Progress.CompleteTechnique)
				r.Get("/next", d.Progress.NextTechnique)
			})

			r.Get("/profile", d.Profile.GetProfile)
			r.Patch("/profile", d.Profile.UpdateProfile)
			r.Post("/profile/avatar", d.Profile.UploadAvatar)
			r.Get("/dashboard", d.Progress.Dashboard)
		})
	})

	if d.Health != nil {
		r.Get("/health", d.Health.Health)
	}
	if d.UploadsDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(d.UploadsDir))))
	}
	return r
}
