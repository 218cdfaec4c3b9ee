// Package live serves the synchronized view: active alerts, the caller's
// commitments, network stats and connection state, over plain reads and a
// websocket stream of snapshots.
package live

import (
	"context"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/livesync"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Sync interface {
	Snapshot() livesync.Snapshot
	Status() livesync.Status
	Refresh(ctx context.Context) error
	Subscribe() (<-chan livesync.Snapshot, func())
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	logger *slog.Logger
	Sync   Sync
}

func NewHandler(logger *slog.Logger, sync Sync) *Handler {
	return &Handler{
		logger: logger,
		Sync:   sync,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// viewerID is uuid.Nil for anonymous viewers, who see only redacted rows.
func viewerID(r *http.Request) uuid.UUID {
	origin, ok := middleware.OriginFrom(r.Context())
	if !ok || !origin.Authenticated() {
		return uuid.Nil
	}
	return *origin.UserID
}

func (h *Handler) Alerts(w http.ResponseWriter, r *http.Request) {
	snap := h.Sync.Snapshot()
	h.writeJSON(w, http.StatusOK, map[string]any{
		"alerts":     snap.AlertsFor(viewerID(r)),
		"status":     snap.Status,
		"fetched_at": snap.FetchedAt,
	})
}

func (h *Handler) Commitments(w http.ResponseWriter, r *http.Request) {
	id := viewerID(r)
	if id == uuid.Nil {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "commitments require a signed-in account"})
		return
	}

	snap := h.Sync.Snapshot()
	h.writeJSON(w, http.StatusOK, map[string]any{
		"commitments": snap.CommitmentsFor(id),
		"fetched_at":  snap.FetchedAt,
	})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	snap := h.Sync.Snapshot()
	h.writeJSON(w, http.StatusOK, map[string]any{
		"stats":      snap.Stats,
		"fetched_at": snap.FetchedAt,
	})
}

func (h *Handler) Connection(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"status": h.Sync.Status()})
}

// Refresh forces a full resync on demand, the recovery path for a client
// that suspects its view drifted.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Sync.Refresh(r.Context()); err != nil {
		h.log(r).Warn("manual refresh failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "refresh failed"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"status": h.Sync.Status()})
}

// Stream upgrades to a websocket and pushes a personalized snapshot on
// every state change. The read side only watches for the client closing.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	id := viewerID(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		l.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	snapshots, cancel := h.Sync.Subscribe()
	defer cancel()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// current state first so the client never starts blank
	if err := h.writeSnapshot(conn, h.Sync.Snapshot(), id); err != nil {
		return
	}

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			if err := h.writeSnapshot(conn, snap, id); err != nil {
				l.Debug("websocket write failed", slog.Any("error", err))
				return
			}
		}
	}
}

func (h *Handler) writeSnapshot(conn *websocket.Conn, snap livesync.Snapshot, viewer uuid.UUID) error {
	return conn.WriteJSON(map[string]any{
		"alerts":      snap.AlertsFor(viewer),
		"commitments": snap.CommitmentsFor(viewer),
		"stats":       snap.Stats,
		"status":      snap.Status,
		"fetched_at":  snap.FetchedAt,
	})
}
