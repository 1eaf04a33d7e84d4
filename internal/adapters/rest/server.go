package rest

import (
	"context"
	"errors"
	"listings-service/internal/core/port"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig - все, что нужно для сборки роутера.
type RouterConfig struct {
	AllowedOrigins []string
	Properties     *PropertiesHandler
	Forms          *FormsHandler
	Auth           *AuthHandler
	AuthMiddleware *AuthMiddleware
	Health         http.HandlerFunc
}

// NewRouter собирает chi-роутер со всеми маршрутами API.
func NewRouter(cfg RouterConfig, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(cfg.AuthMiddleware.OptionalAuth)

	if cfg.Health != nil {
		r.Get("/health", cfg.Health)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/properties", cfg.Properties.FindProperties)
		r.Get("/properties/filters/options", cfg.Properties.GetFilterOptions)
		r.Get("/properties/{ref}", cfg.Properties.GetPropertyDetails)
		r.Get("/properties/{ref}/gallery", cfg.Properties.GetGallery)
		r.Get("/featured", cfg.Properties.GetFeatured)
		r.Get("/carousel", cfg.Properties.MoveCarousel)

		r.Post("/contact", cfg.Forms.SubmitInquiry)
		r.Post("/email-capture", cfg.Forms.SubscribeNewsletter)
		r.Post("/newsletter", cfg.Forms.SubscribeNewsletter)

		r.Get("/auth/config", cfg.Auth.GetAuthConfig)
		r.Get("/session", cfg.Auth.GetSession)

		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthMiddleware.RequireAuth)
			r.Get("/dashboard", cfg.Auth.GetDashboard)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(listenPort string, handler http.Handler, logger port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + listenPort,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: logger,
	}
}

// Start блокируется до остановки сервера. После Stop возвращает nil.
func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
