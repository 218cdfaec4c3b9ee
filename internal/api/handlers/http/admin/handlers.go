// Package admin serves operator endpoints behind the shared API key.
package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Profiles interface {
	SetRoles(ctx context.Context, userID uuid.UUID, req domain.SetRolesRequest) error
}

type StatsGetter interface {
	GetStats(ctx context.Context) (*domain.AlertStats, error)
	Refresh(ctx context.Context) error
}

type Handler struct {
	logger   *slog.Logger
	Profiles Profiles
	Stats    StatsGetter
}

func NewHandler(logger *slog.Logger, profiles Profiles, stats StatsGetter) *Handler {
	return &Handler{
		logger:   logger,
		Profiles: profiles,
		Stats:    stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminSetRoles(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.SetRolesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Profiles.SetRoles(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("roles updated",
		slog.String("user_id", id.String()),
		slog.Bool("is_responder", req.IsResponder),
		slog.Bool("is_admin", req.IsAdmin),
	)
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// AdminStats reads the cached aggregate directly, bypassing the live view.
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.GetStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

// AdminStatsRefresh recomputes the aggregate and repopulates the cache.
func (h *Handler) AdminStatsRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Stats.Refresh(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("stats cache refreshed")
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
}
