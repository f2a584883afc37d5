package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/lexicon/internal/live"
	"github.com/ziadkadry99/lexicon/internal/logging"
	"github.com/ziadkadry99/lexicon/internal/view"
)

// ClientCookie names the cookie that carries a browser's durable client id.
const ClientCookie = "lexicon_client"

const clientCookieMaxAge = 365 * 24 * 60 * 60

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS and WebSocket origins (dev mode)
}

// Server serves the client shell, its assets and the live socket.
type Server struct {
	cfg        Config
	deps       view.Deps
	router     chi.Router
	httpServer *http.Server
	log        *zap.Logger
}

// New creates a server whose sessions use deps.
func New(cfg Config, deps view.Deps) *Server {
	s := &Server{
		cfg:  cfg,
		deps: deps,
		log:  logging.Named("server"),
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// The socket lives as long as the tab, so it stays outside the timeout.
	r.Handle("/ws", live.NewHandler(view.Factory(s.deps), clientID, s.checkOrigin()))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		// Health check
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.Handle("/assets/*", http.StripPrefix("/assets/", live.Assets()))

		// Every other path is a client route; the session renders it.
		r.Get("/*", s.handleShell)
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

func (s *Server) handleShell(w http.ResponseWriter, r *http.Request) {
	if clientID(r) == "" {
		http.SetCookie(w, &http.Cookie{
			Name:     ClientCookie,
			Value:    uuid.NewString(),
			Path:     "/",
			MaxAge:   clientCookieMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if err := s.deps.Renderer.Shell(w); err != nil {
		s.log.Error("rendering shell", zap.Error(err))
	}
}

// checkOrigin returns nil, the upgrader's same-host check, unless all
// origins are allowed.
func (s *Server) checkOrigin() func(*http.Request) bool {
	if !s.cfg.AllowAll {
		return nil
	}
	return func(*http.Request) bool { return true }
}

// clientID reads the client id cookie. Values that are not UUIDs are ignored.
func clientID(r *http.Request) string {
	c, err := r.Cookie(ClientCookie)
	if err != nil {
		return ""
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return ""
	}
	return id.String()
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info("lexicon listening", zap.String("addr", addr), zap.String("api_base", s.deps.API.BaseURL()))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
