package responder_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/api/handlers/http/responder"
	mock_responder "github.com/lolrip/Drewbert-Overdose-Response-Network/internal/api/handlers/http/responder/mocks"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/middleware"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withIdentity runs the request through the identity middleware so the
// handler sees the same context a routed request would.
func withIdentity(t *testing.T, h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	middleware.Identity()(h).ServeHTTP(rr, r)
	return rr
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestRespond_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commitments := mock_responder.NewMockCommitments(ctrl)
	profiles := mock_responder.NewMockProfiles(ctrl)
	recorder := mock_responder.NewMockRecorder(ctrl)

	h := responder.NewHandler(newTestLogger(), commitments, profiles, recorder)

	alertID := uuid.New()
	responderID := uuid.New()
	want := &domain.Response{
		ID:          uuid.New(),
		AlertID:     alertID,
		ResponderID: responderID,
		Status:      domain.ResponseCommitted,
	}

	commitments.EXPECT().
		Commit(gomock.Any(), alertID, responderID).
		Return(want, nil).
		Times(1)
	recorder.EXPECT().CommitRecorded().Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/"+alertID.String()+"/respond", nil)
	req.Header.Set("X-User-ID", responderID.String())
	req = addChiURLParam(req, "id", alertID.String())

	rr := withIdentity(t, h.Respond, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.Response](t, rr)
	if got.ID != want.ID || got.Status != domain.ResponseCommitted {
		t.Fatalf("unexpected body: %+v", got)
	}
}

// Anonymous callers can raise alerts but never respond to them.
func TestRespond_Anonymous_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := responder.NewHandler(newTestLogger(),
		mock_responder.NewMockCommitments(ctrl),
		mock_responder.NewMockProfiles(ctrl),
		nil,
	)

	alertID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/"+alertID.String()+"/respond", nil)
	req.Header.Set("X-Anonymous-ID", "device-4")
	req = addChiURLParam(req, "id", alertID.String())

	rr := withIdentity(t, h.Respond, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d, body=%s", http.StatusUnauthorized, rr.Code, rr.Body.String())
	}
}

func TestCancelResponse_AlreadyGone_200(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commitments := mock_responder.NewMockCommitments(ctrl)
	h := responder.NewHandler(newTestLogger(), commitments, mock_responder.NewMockProfiles(ctrl), nil)

	alertID := uuid.New()
	responderID := uuid.New()

	commitments.EXPECT().
		Cancel(gomock.Any(), alertID, responderID, "accidental", "").
		Return(false, nil).
		Times(1)

	body := `{"reason":"accidental"}`
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/alerts/"+alertID.String()+"/response", bytes.NewBufferString(body))
	req.Header.Set("X-User-ID", responderID.String())
	req = addChiURLParam(req, "id", alertID.String())

	rr := withIdentity(t, h.CancelResponse, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]bool](t, rr)
	if got["removed"] {
		t.Fatalf("expected removed=false, body=%s", rr.Body.String())
	}
}

func TestCancelResponse_UnknownReason_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := responder.NewHandler(newTestLogger(),
		mock_responder.NewMockCommitments(ctrl),
		mock_responder.NewMockProfiles(ctrl),
		nil,
	)

	alertID := uuid.New()
	body := `{"reason":"bored"}`
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/alerts/"+alertID.String()+"/response", bytes.NewBufferString(body))
	req.Header.Set("X-User-ID", uuid.New().String())
	req = addChiURLParam(req, "id", alertID.String())

	rr := withIdentity(t, h.CancelResponse, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestProgress_CompletedRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := responder.NewHandler(newTestLogger(),
		mock_responder.NewMockCommitments(ctrl),
		mock_responder.NewMockProfiles(ctrl),
		nil,
	)

	alertID := uuid.New()
	body := `{"status":"completed"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/alerts/"+alertID.String()+"/response/progress", bytes.NewBufferString(body))
	req.Header.Set("X-User-ID", uuid.New().String())
	req = addChiURLParam(req, "id", alertID.String())

	rr := withIdentity(t, h.Progress, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestComplete_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commitments := mock_responder.NewMockCommitments(ctrl)
	h := responder.NewHandler(newTestLogger(), commitments, mock_responder.NewMockProfiles(ctrl), nil)

	alertID := uuid.New()
	responderID := uuid.New()

	commitments.EXPECT().
		EndResponse(gomock.Any(), alertID, responderID, domain.Outcome{
			CalledAmbulance: true,
			PersonOkay:      true,
			NaloxoneUsed:    true,
			Notes:           "two doses",
		}).
		Return(nil).
		Times(1)

	body := `{"called_ambulance":true,"person_okay":true,"naloxone_used":true,"notes":"two doses"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/"+alertID.String()+"/response/complete", bytes.NewBufferString(body))
	req.Header.Set("X-User-ID", responderID.String())
	req = addChiURLParam(req, "id", alertID.String())

	rr := withIdentity(t, h.Complete, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestHeartbeat_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := mock_responder.NewMockProfiles(ctrl)
	h := responder.NewHandler(newTestLogger(), mock_responder.NewMockCommitments(ctrl), profiles, nil)

	responderID := uuid.New()
	profiles.EXPECT().Heartbeat(gomock.Any(), responderID).Return(nil).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/heartbeat", nil)
	req.Header.Set("X-User-ID", responderID.String())

	rr := withIdentity(t, h.Heartbeat, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}
