package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/api/handlers/http/admin"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/api/handlers/http/live"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/api/handlers/http/requester"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/api/handlers/http/responder"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/api/handlers/http/system"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/config"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/middleware"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

type Handlers struct {
	Requester *requester.Handler
	Responder *responder.Handler
	Live      *live.Handler
	Admin     *admin.Handler
	System    *system.Handler
	Metrics   http.Handler
}

func NewServer(cfg *config.Config, logger *slog.Logger, h Handlers) *Server {
	return &Server{
		logger: logger,
		router: InitRouter(cfg, h, logger),
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, h Handlers, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// REQUESTER: anonymous or signed in, identified per request
		api.Group(func(rr chi.Router) {
			rr.Use(middleware.Identity())
			rr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			rr.Route("/sessions", func(sr chi.Router) {
				sr.Post("/", h.Requester.SessionStart)
				sr.Route("/{id}", func(ir chi.Router) {
					ir.Post("/checkin", h.Requester.SessionCheckIn)
					ir.Put("/location", h.Requester.SessionUpdateLocation)
					ir.Delete("/", h.Requester.SessionEnd)
				})
			})

			rr.Route("/alerts", func(ar chi.Router) {
				ar.Post("/", h.Requester.AlertCreate)
				ar.Route("/{id}", func(ir chi.Router) {
					ir.Put("/location", h.Requester.AlertUpdateLocation)
					ir.Delete("/", h.Requester.AlertCancel)

					// RESPONDER: signed-in users only, enforced per handler
					ir.Post("/respond", h.Responder.Respond)
					ir.Route("/response", func(pr chi.Router) {
						pr.Put("/progress", h.Responder.Progress)
						pr.Delete("/", h.Responder.CancelResponse)
						pr.Post("/complete", h.Responder.Complete)
					})
				})
			})

			rr.Post("/heartbeat", h.Responder.Heartbeat)

			rr.Route("/live", func(lr chi.Router) {
				lr.Get("/alerts", h.Live.Alerts)
				lr.Get("/commitments", h.Live.Commitments)
				lr.Get("/stats", h.Live.Stats)
				lr.Get("/connection", h.Live.Connection)
				lr.Post("/refresh", h.Live.Refresh)
				lr.Get("/ws", h.Live.Stream)
			})
		})

		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/stats", h.Admin.AdminStats)
			ar.Post("/stats/refresh", h.Admin.AdminStatsRefresh)
			ar.Put("/users/{id}/roles", h.Admin.AdminSetRoles)
		})

		// SYSTEM
		api.Get("/health", h.System.SystemHealth)
	})

	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
