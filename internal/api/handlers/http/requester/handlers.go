// Package requester serves the monitored-person surface: monitoring
// sessions and the alert lifecycle as seen by the person who raised it.
package requester

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/middleware"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Lifecycle interface {
	StartSession(ctx context.Context, origin domain.Origin, req domain.StartSessionRequest) (*domain.MonitoringSession, error)
	CheckIn(ctx context.Context, sessionID uuid.UUID, origin domain.Origin) (int, error)
	UpdateSessionLocation(ctx context.Context, sessionID uuid.UUID, origin domain.Origin, req domain.UpdateLocationRequest) error
	EndSession(ctx context.Context, sessionID uuid.UUID, origin domain.Origin) error
	CreateAlert(ctx context.Context, origin domain.Origin, req domain.CreateAlertRequest) (*domain.Alert, error)
	UpdateAlertLocation(ctx context.Context, alertID uuid.UUID, origin domain.Origin, req domain.UpdateLocationRequest) error
	CancelAlert(ctx context.Context, alertID uuid.UUID, origin domain.Origin) error
}

type Handler struct {
	logger    *slog.Logger
	Lifecycle Lifecycle
}

func NewHandler(logger *slog.Logger, lifecycle Lifecycle) *Handler {
	return &Handler{
		logger:    logger,
		Lifecycle: lifecycle,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) SessionStart(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	origin, ok := middleware.OriginFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	var req domain.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	session, err := h.Lifecycle.StartSession(r.Context(), origin, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("monitoring session started", slog.String("session_id", session.ID.String()))
	h.writeJSON(w, http.StatusCreated, session)
}

func (h *Handler) SessionCheckIn(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	origin, ok := middleware.OriginFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	count, err := h.Lifecycle.CheckIn(r.Context(), id, origin)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]int{"check_in_count": count})
}

func (h *Handler) SessionUpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	origin, ok := middleware.OriginFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	var req domain.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Lifecycle.UpdateSessionLocation(r.Context(), id, origin, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) SessionEnd(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	origin, ok := middleware.OriginFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	if err := h.Lifecycle.EndSession(r.Context(), id, origin); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("monitoring session ended", slog.String("session_id", id.String()))
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ended"})
}

func (h *Handler) AlertCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	origin, ok := middleware.OriginFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	var req domain.CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	alert, err := h.Lifecycle.CreateAlert(r.Context(), origin, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert created",
		slog.String("alert_id", alert.ID.String()),
		slog.String("general_location", alert.GeneralLocation),
	)
	h.writeJSON(w, http.StatusCreated, alert)
}

func (h *Handler) AlertUpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	origin, ok := middleware.OriginFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	var req domain.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Lifecycle.UpdateAlertLocation(r.Context(), id, origin, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) AlertCancel(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	origin, ok := middleware.OriginFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	if err := h.Lifecycle.CancelAlert(r.Context(), id, origin); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("alert cancelled by originator", slog.String("alert_id", id.String()))
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
