package requester_test

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

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/api/handlers/http/requester"
	mock_requester "github.com/lolrip/Drewbert-Overdose-Response-Network/internal/api/handlers/http/requester/mocks"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/middleware"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

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

func TestAlertCreate_Anonymous_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lifecycle := mock_requester.NewMockLifecycle(ctrl)
	h := requester.NewHandler(newTestLogger(), lifecycle)

	alertID := uuid.New()
	lifecycle.EXPECT().
		CreateAlert(gomock.Any(), domain.AnonymousOrigin("device-12"), domain.CreateAlertRequest{
			GeneralLocation: "Transit center",
			PreciseLocation: "North platform bench",
		}).
		Return(&domain.Alert{
			ID:              alertID,
			Origin:          domain.AnonymousOrigin("device-12"),
			GeneralLocation: "Transit center",
			Status:          domain.AlertActive,
		}, nil).
		Times(1)

	body := `{"general_location":"Transit center","precise_location":"North platform bench"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/", bytes.NewBufferString(body))
	req.Header.Set("X-Anonymous-ID", "device-12")

	rr := withIdentity(t, h.AlertCreate, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.Alert](t, rr)
	if got.ID != alertID || got.Status != domain.AlertActive {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestAlertCreate_MissingIdentity_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := requester.NewHandler(newTestLogger(), mock_requester.NewMockLifecycle(ctrl))

	body := `{"general_location":"Transit center"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/", bytes.NewBufferString(body))

	rr := withIdentity(t, h.AlertCreate, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d, body=%s", http.StatusUnauthorized, rr.Code, rr.Body.String())
	}
}

func TestAlertCreate_MissingLocation_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := requester.NewHandler(newTestLogger(), mock_requester.NewMockLifecycle(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/", bytes.NewBufferString(`{}`))
	req.Header.Set("X-Anonymous-ID", "device-12")

	rr := withIdentity(t, h.AlertCreate, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAlertCancel_NotOriginator_403(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lifecycle := mock_requester.NewMockLifecycle(ctrl)
	h := requester.NewHandler(newTestLogger(), lifecycle)

	alertID := uuid.New()
	lifecycle.EXPECT().
		CancelAlert(gomock.Any(), alertID, domain.AnonymousOrigin("device-2")).
		Return(e.ErrForbidden).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/alerts/"+alertID.String()+"/", nil)
	req.Header.Set("X-Anonymous-ID", "device-2")
	req = addChiURLParam(req, "id", alertID.String())

	rr := withIdentity(t, h.AlertCancel, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d, body=%s", http.StatusForbidden, rr.Code, rr.Body.String())
	}
}

func TestSessionStart_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lifecycle := mock_requester.NewMockLifecycle(ctrl)
	h := requester.NewHandler(newTestLogger(), lifecycle)

	userID := uuid.New()
	sessionID := uuid.New()
	lifecycle.EXPECT().
		StartSession(gomock.Any(), domain.UserOrigin(userID), domain.StartSessionRequest{GeneralLocation: "At home"}).
		Return(&domain.MonitoringSession{ID: sessionID, Status: domain.SessionActive}, nil).
		Times(1)

	body := `{"general_location":"At home"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/", bytes.NewBufferString(body))
	req.Header.Set("X-User-ID", userID.String())

	rr := withIdentity(t, h.SessionStart, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.MonitoringSession](t, rr)
	if got.ID != sessionID {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestSessionEnd_NotOriginator_403(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lifecycle := mock_requester.NewMockLifecycle(ctrl)
	h := requester.NewHandler(newTestLogger(), lifecycle)

	sessionID := uuid.New()
	lifecycle.EXPECT().
		EndSession(gomock.Any(), sessionID, domain.AnonymousOrigin("device-9")).
		Return(e.ErrForbidden).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+sessionID.String()+"/end", nil)
	req.Header.Set("X-Anonymous-ID", "device-9")
	req = addChiURLParam(req, "id", sessionID.String())

	rr := withIdentity(t, h.SessionEnd, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d, body=%s", http.StatusForbidden, rr.Code, rr.Body.String())
	}
}

func TestSessionCheckIn_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := requester.NewHandler(newTestLogger(), mock_requester.NewMockLifecycle(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/not-a-uuid/checkin", nil)
	req.Header.Set("X-Anonymous-ID", "device-5")
	req = addChiURLParam(req, "id", "not-a-uuid")

	rr := withIdentity(t, h.SessionCheckIn, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}
