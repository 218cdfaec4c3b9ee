// Package responder serves the responder surface: committing to alerts,
// progress updates, cancellation with a reason, outcome reporting and the
// availability heartbeat. Responding always requires an authenticated user.
package responder

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
type Commitments interface {
	Commit(ctx context.Context, alertID, responderID uuid.UUID) (*domain.Response, error)
	UpdateProgress(ctx context.Context, alertID, responderID uuid.UUID, status domain.ResponseStatus) error
	Cancel(ctx context.Context, alertID, responderID uuid.UUID, reason, detail string) (bool, error)
	EndResponse(ctx context.Context, alertID, responderID uuid.UUID, outcome domain.Outcome) error
}

type Profiles interface {
	Heartbeat(ctx context.Context, userID uuid.UUID) error
}

// Recorder counts commitment traffic. Satisfied by the metrics package.
type Recorder interface {
	CommitRecorded()
	CancelRecorded()
}

type Handler struct {
	logger      *slog.Logger
	Commitments Commitments
	Profiles    Profiles
	recorder    Recorder
}

func NewHandler(logger *slog.Logger, commitments Commitments, profiles Profiles, recorder Recorder) *Handler {
	return &Handler{
		logger:      logger,
		Commitments: commitments,
		Profiles:    profiles,
		recorder:    recorder,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// responderID requires an authenticated user; anonymous callers may raise
// alerts but never respond to them.
func (h *Handler) responderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	origin, ok := middleware.OriginFrom(r.Context())
	if !ok || !origin.Authenticated() {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "responding requires a signed-in account"})
		return uuid.Nil, false
	}
	return *origin.UserID, true
}

func (h *Handler) Respond(w http.ResponseWriter, r *http.Request) {
	alertID, ok := h.parseID(w, r)
	if !ok {
		return
	}
	responderID, ok := h.responderID(w, r)
	if !ok {
		return
	}

	resp, err := h.Commitments.Commit(r.Context(), alertID, responderID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if h.recorder != nil {
		h.recorder.CommitRecorded()
	}

	h.log(r).Info("responder committed",
		slog.String("alert_id", alertID.String()),
		slog.String("responder_id", responderID.String()),
	)
	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	alertID, ok := h.parseID(w, r)
	if !ok {
		return
	}
	responderID, ok := h.responderID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status domain.ResponseStatus `json:"status" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if !req.Status.Committed() {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid progress status"})
		return
	}

	if err := h.Commitments.UpdateProgress(r.Context(), alertID, responderID, req.Status); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": string(req.Status)})
}

func (h *Handler) CancelResponse(w http.ResponseWriter, r *http.Request) {
	alertID, ok := h.parseID(w, r)
	if !ok {
		return
	}
	responderID, ok := h.responderID(w, r)
	if !ok {
		return
	}

	var req domain.CancelResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	removed, err := h.Commitments.Cancel(r.Context(), alertID, responderID, req.Reason, req.Detail)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if removed && h.recorder != nil {
		h.recorder.CancelRecorded()
	}

	h.log(r).Info("response cancelled",
		slog.String("alert_id", alertID.String()),
		slog.String("responder_id", responderID.String()),
		slog.String("reason", req.Reason),
		slog.Bool("removed", removed),
	)
	h.writeJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	alertID, ok := h.parseID(w, r)
	if !ok {
		return
	}
	responderID, ok := h.responderID(w, r)
	if !ok {
		return
	}

	var req domain.EndResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	outcome := domain.Outcome{
		CalledAmbulance: req.CalledAmbulance,
		PersonOkay:      req.PersonOkay,
		NaloxoneUsed:    req.NaloxoneUsed,
		Notes:           req.Notes,
	}
	if err := h.Commitments.EndResponse(r.Context(), alertID, responderID, outcome); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("response completed",
		slog.String("alert_id", alertID.String()),
		slog.String("responder_id", responderID.String()),
		slog.Bool("naloxone_used", req.NaloxoneUsed),
	)
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "completed"})
}

func (h *Handler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	responderID, ok := h.responderID(w, r)
	if !ok {
		return
	}

	if err := h.Profiles.Heartbeat(r.Context(), responderID); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
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
