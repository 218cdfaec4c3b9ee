package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/service"
	mock_service "github.com/lolrip/Drewbert-Overdose-Response-Network/internal/service/mocks"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestCommit_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	responses := mock_service.NewMockResponseRepository(ctrl)
	svc := service.NewCommitmentService(alerts, responses, newTestLogger())

	alertID := uuid.New()
	responderID := uuid.New()
	rowID := uuid.New()

	responses.EXPECT().
		Get(gomock.Any(), alertID, responderID).
		Return(nil, e.ErrNotFound).
		Times(1)
	alerts.EXPECT().
		Get(gomock.Any(), alertID).
		Return(&domain.Alert{ID: alertID, Status: domain.AlertActive}, nil).
		Times(1)
	responses.EXPECT().
		CreateSafe(gomock.Any(), alertID, responderID, domain.ResponseCommitted).
		Return(rowID, true, nil).
		Times(1)
	alerts.EXPECT().
		IncrementResponderCount(gomock.Any(), alertID).
		Return(nil).
		Times(1)

	resp, err := svc.Commit(context.Background(), alertID, responderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID != rowID || resp.Status != domain.ResponseCommitted {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCommit_Idempotent_NoSecondIncrement(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	responses := mock_service.NewMockResponseRepository(ctrl)
	svc := service.NewCommitmentService(alerts, responses, newTestLogger())

	alertID := uuid.New()
	responderID := uuid.New()
	existing := &domain.Response{
		ID:          uuid.New(),
		AlertID:     alertID,
		ResponderID: responderID,
		Status:      domain.ResponseEnRoute,
	}

	responses.EXPECT().
		Get(gomock.Any(), alertID, responderID).
		Return(existing, nil).
		Times(1)
	// no CreateSafe, no IncrementResponderCount

	resp, err := svc.Commit(context.Background(), alertID, responderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != existing {
		t.Fatalf("expected the existing row back, got %+v", resp)
	}
}

func TestCommit_TerminalAlert_Rejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	responses := mock_service.NewMockResponseRepository(ctrl)
	svc := service.NewCommitmentService(alerts, responses, newTestLogger())

	alertID := uuid.New()
	responderID := uuid.New()

	responses.EXPECT().
		Get(gomock.Any(), alertID, responderID).
		Return(nil, e.ErrNotFound).
		Times(1)
	alerts.EXPECT().
		Get(gomock.Any(), alertID).
		Return(&domain.Alert{ID: alertID, Status: domain.AlertResolved}, nil).
		Times(1)

	_, err := svc.Commit(context.Background(), alertID, responderID)
	if !errors.Is(err, e.ErrTerminalState) {
		t.Fatalf("expected ErrTerminalState, got %v", err)
	}
}

func TestCommit_Anonymous_Rejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewCommitmentService(
		mock_service.NewMockAlertRepository(ctrl),
		mock_service.NewMockResponseRepository(ctrl),
		newTestLogger(),
	)

	_, err := svc.Commit(context.Background(), uuid.New(), uuid.Nil)
	if !errors.Is(err, e.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

// A duplicate insert losing the race on the fallback path is success: the
// existing row comes back and the counter is not incremented again.
func TestCommit_FallbackDuplicate_TreatedAsSuccess(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	responses := mock_service.NewMockResponseRepository(ctrl)
	svc := service.NewCommitmentService(alerts, responses, newTestLogger())

	alertID := uuid.New()
	responderID := uuid.New()
	existing := &domain.Response{
		ID:          uuid.New(),
		AlertID:     alertID,
		ResponderID: responderID,
		Status:      domain.ResponseCommitted,
	}

	gomock.InOrder(
		responses.EXPECT().
			Get(gomock.Any(), alertID, responderID).
			Return(nil, e.ErrNotFound),
		alerts.EXPECT().
			Get(gomock.Any(), alertID).
			Return(&domain.Alert{ID: alertID, Status: domain.AlertActive}, nil),
		responses.EXPECT().
			CreateSafe(gomock.Any(), alertID, responderID, domain.ResponseCommitted).
			Return(uuid.Nil, false, e.ErrRPCUnavailable),
		responses.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(e.ErrUniqueViolation),
		responses.EXPECT().
			Get(gomock.Any(), alertID, responderID).
			Return(existing, nil),
	)

	resp, err := svc.Commit(context.Background(), alertID, responderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != existing {
		t.Fatalf("expected the existing row back, got %+v", resp)
	}
}

// A retried request can race itself past the existence pre-check: both
// attempts reach CreateSafe, but only the one that actually inserted the
// row may bump the responder count.
func TestCommit_RetriedRequestRace_SingleIncrement(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	responses := mock_service.NewMockResponseRepository(ctrl)
	svc := service.NewCommitmentService(alerts, responses, newTestLogger())

	alertID := uuid.New()
	responderID := uuid.New()
	rowID := uuid.New()
	existing := &domain.Response{
		ID:          rowID,
		AlertID:     alertID,
		ResponderID: responderID,
		Status:      domain.ResponseCommitted,
	}

	// both attempts miss the pre-check, as if neither row was visible yet
	preChecks := 0
	responses.EXPECT().
		Get(gomock.Any(), alertID, responderID).
		DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*domain.Response, error) {
			preChecks++
			if preChecks <= 2 {
				return nil, e.ErrNotFound
			}
			return existing, nil
		}).
		Times(3)
	alerts.EXPECT().
		Get(gomock.Any(), alertID).
		Return(&domain.Alert{ID: alertID, Status: domain.AlertActive}, nil).
		Times(2)

	creates := 0
	responses.EXPECT().
		CreateSafe(gomock.Any(), alertID, responderID, domain.ResponseCommitted).
		DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID, domain.ResponseStatus) (uuid.UUID, bool, error) {
			creates++
			return rowID, creates == 1, nil
		}).
		Times(2)
	alerts.EXPECT().
		IncrementResponderCount(gomock.Any(), alertID).
		Return(nil).
		Times(1)

	for i := 0; i < 2; i++ {
		resp, err := svc.Commit(context.Background(), alertID, responderID)
		if err != nil {
			t.Fatalf("attempt %d: unexpected error: %v", i+1, err)
		}
		if resp.ID != rowID {
			t.Fatalf("attempt %d: unexpected response: %+v", i+1, resp)
		}
	}
}

func TestCancel_AlreadyGone_Benign(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	responses := mock_service.NewMockResponseRepository(ctrl)
	svc := service.NewCommitmentService(alerts, responses, newTestLogger())

	alertID := uuid.New()
	responderID := uuid.New()

	responses.EXPECT().
		CancelSafe(gomock.Any(), alertID, responderID, "accidental", "").
		Return(false, nil).
		Times(1)

	removed, err := svc.Cancel(context.Background(), alertID, responderID, "accidental", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed {
		t.Fatalf("expected removed=false for an already-gone response")
	}
}

// Last committed responder cancelling reverts a responded alert to active,
// exercised through the sequential fallback path.
func TestCancel_LastResponder_RevertsAlertToActive(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	responses := mock_service.NewMockResponseRepository(ctrl)
	svc := service.NewCommitmentService(alerts, responses, newTestLogger())

	alertID := uuid.New()
	responderID := uuid.New()

	gomock.InOrder(
		responses.EXPECT().
			CancelSafe(gomock.Any(), alertID, responderID, "too_far", "").
			Return(false, e.ErrRPCUnavailable),
		responses.EXPECT().
			Delete(gomock.Any(), alertID, responderID).
			Return(true, nil),
		responses.EXPECT().
			RecordCancellation(gomock.Any(), gomock.Any()).
			Return(nil),
		responses.EXPECT().
			CountCommitted(gomock.Any(), alertID).
			Return(0, nil),
		responses.EXPECT().
			SetCount(gomock.Any(), alertID, 0).
			Return(nil),
		alerts.EXPECT().
			Get(gomock.Any(), alertID).
			Return(&domain.Alert{ID: alertID, Status: domain.AlertResponded}, nil),
		alerts.EXPECT().
			UpdateStatus(gomock.Any(), alertID, domain.AlertActive).
			Return(nil),
	)

	removed, err := svc.Cancel(context.Background(), alertID, responderID, "too_far", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !removed {
		t.Fatalf("expected removed=true")
	}
}

// A cancel while other responders remain committed leaves the alert alone.
func TestCancel_OthersRemain_AlertUntouched(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	responses := mock_service.NewMockResponseRepository(ctrl)
	svc := service.NewCommitmentService(alerts, responses, newTestLogger())

	alertID := uuid.New()
	responderID := uuid.New()

	gomock.InOrder(
		responses.EXPECT().
			CancelSafe(gomock.Any(), alertID, responderID, "other", "ran out of gas").
			Return(false, e.ErrRPCUnavailable),
		responses.EXPECT().
			Delete(gomock.Any(), alertID, responderID).
			Return(true, nil),
		responses.EXPECT().
			RecordCancellation(gomock.Any(), gomock.Any()).
			Return(nil),
		responses.EXPECT().
			CountCommitted(gomock.Any(), alertID).
			Return(2, nil),
		responses.EXPECT().
			SetCount(gomock.Any(), alertID, 2).
			Return(nil),
	)

	removed, err := svc.Cancel(context.Background(), alertID, responderID, "other", "ran out of gas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !removed {
		t.Fatalf("expected removed=true")
	}
}

func TestEndResponse_ResolvesAlert(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	responses := mock_service.NewMockResponseRepository(ctrl)
	svc := service.NewCommitmentService(alerts, responses, newTestLogger())

	alertID := uuid.New()
	responderID := uuid.New()
	outcome := domain.Outcome{NaloxoneUsed: true, PersonOkay: true}

	gomock.InOrder(
		responses.EXPECT().
			Complete(gomock.Any(), alertID, responderID, outcome).
			Return(nil),
		alerts.EXPECT().
			DecrementResponderCount(gomock.Any(), alertID).
			Return(nil),
		alerts.EXPECT().
			UpdateStatus(gomock.Any(), alertID, domain.AlertResolved).
			Return(nil),
	)

	if err := svc.EndResponse(context.Background(), alertID, responderID, outcome); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Resolving an alert that went terminal underneath us is not an error.
func TestEndResponse_AlreadyTerminal_Tolerated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alerts := mock_service.NewMockAlertRepository(ctrl)
	responses := mock_service.NewMockResponseRepository(ctrl)
	svc := service.NewCommitmentService(alerts, responses, newTestLogger())

	alertID := uuid.New()
	responderID := uuid.New()

	responses.EXPECT().
		Complete(gomock.Any(), alertID, responderID, gomock.Any()).
		Return(nil)
	alerts.EXPECT().
		DecrementResponderCount(gomock.Any(), alertID).
		Return(nil)
	alerts.EXPECT().
		UpdateStatus(gomock.Any(), alertID, domain.AlertResolved).
		Return(e.ErrTerminalState)

	if err := svc.EndResponse(context.Background(), alertID, responderID, domain.Outcome{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateProgress_RejectsNonLiveStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewCommitmentService(
		mock_service.NewMockAlertRepository(ctrl),
		mock_service.NewMockResponseRepository(ctrl),
		newTestLogger(),
	)

	err := svc.UpdateProgress(context.Background(), uuid.New(), uuid.New(), domain.ResponseCompleted)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
