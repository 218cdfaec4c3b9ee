//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := Migrate(ctx, testPool); err != nil {
		fmt.Println("Migrate:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `
		TRUNCATE TABLE responses, response_cancellations, alerts,
			monitoring_sessions, responder_profiles CASCADE
	`)
	if err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}

func mustCreateAlert(t *testing.T, repo *AlertRepo, origin domain.Origin) *domain.Alert {
	t.Helper()
	a := &domain.Alert{
		Origin:          origin,
		GeneralLocation: "Downtown library",
		PreciseLocation: "Second floor, east stairwell",
	}
	if err := repo.CreateWithNotification(context.Background(), a); err != nil {
		t.Fatalf("CreateWithNotification: %v", err)
	}
	return a
}

func TestAlertRepo_CreateWithNotification_RoundTrip(t *testing.T) {
	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger())
	origin := domain.AnonymousOrigin("device-abc")

	a := mustCreateAlert(t, repo, origin)
	if a.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}

	got, err := repo.Get(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.AlertActive {
		t.Fatalf("expected status=active got=%s", got.Status)
	}
	if got.Origin.AnonymousID == nil || *got.Origin.AnonymousID != "device-abc" {
		t.Fatalf("origin mismatch: %+v", got.Origin)
	}
	if got.Origin.UserID != nil {
		t.Fatalf("expected user_id NULL for anonymous origin")
	}
	if got.GeneralLocation != a.GeneralLocation || got.PreciseLocation != a.PreciseLocation {
		t.Fatalf("location mismatch: %+v", got)
	}
	if got.ResponderCount != 0 {
		t.Fatalf("expected responder_count=0 got=%d", got.ResponderCount)
	}
}

func TestAlertRepo_OriginXOR_Enforced(t *testing.T) {
	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger())

	err := repo.Create(context.Background(), &domain.Alert{
		GeneralLocation: "Nowhere",
	})
	if err == nil {
		t.Fatalf("expected error for originless alert")
	}
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}
}

func TestResponseRepo_CreateSafe_ConcurrentSameResponder_OneRow(t *testing.T) {
	truncateAll(t)

	alerts := NewAlertRepo(testPool, testLogger())
	responses := NewResponseRepo(testPool, testLogger())

	alert := mustCreateAlert(t, alerts, domain.UserOrigin(uuid.New()))
	responder := uuid.New()

	type result struct {
		id      uuid.UUID
		created bool
	}

	const workers = 8
	results := make(chan result, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, created, err := responses.CreateSafe(context.Background(), alert.ID, responder, domain.ResponseCommitted)
			if err != nil {
				t.Errorf("CreateSafe: %v", err)
				return
			}
			results <- result{id: id, created: created}
		}()
	}
	wg.Wait()
	close(results)

	var first uuid.UUID
	createdCount := 0
	for r := range results {
		if r.created {
			createdCount++
		}
		if first == uuid.Nil {
			first = r.id
			continue
		}
		if r.id != first {
			t.Fatalf("expected all calls to converge on one row, got %s and %s", first, r.id)
		}
	}
	if createdCount != 1 {
		t.Fatalf("expected exactly one call to report created=true, got %d", createdCount)
	}

	var count int
	if err := testPool.QueryRow(context.Background(),
		`SELECT count(*) FROM responses WHERE alert_id = $1`, alert.ID).Scan(&count); err != nil {
		t.Fatalf("count responses: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 response row, got %d", count)
	}
}

func TestResponseRepo_Create_DuplicatePair_UniqueViolation(t *testing.T) {
	truncateAll(t)

	alerts := NewAlertRepo(testPool, testLogger())
	responses := NewResponseRepo(testPool, testLogger())

	alert := mustCreateAlert(t, alerts, domain.UserOrigin(uuid.New()))
	responder := uuid.New()

	r1 := &domain.Response{AlertID: alert.ID, ResponderID: responder}
	if err := responses.Create(context.Background(), r1); err != nil {
		t.Fatalf("Create: %v", err)
	}

	r2 := &domain.Response{AlertID: alert.ID, ResponderID: responder}
	err := responses.Create(context.Background(), r2)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got: %v", err)
	}
}

func TestIncrementResponderCount_TransitionsActiveToResponded(t *testing.T) {
	truncateAll(t)

	alerts := NewAlertRepo(testPool, testLogger())
	alert := mustCreateAlert(t, alerts, domain.UserOrigin(uuid.New()))

	if err := alerts.IncrementResponderCount(context.Background(), alert.ID); err != nil {
		t.Fatalf("IncrementResponderCount: %v", err)
	}

	got, err := alerts.Get(context.Background(), alert.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.AlertResponded {
		t.Fatalf("expected status=responded got=%s", got.Status)
	}
	if got.ResponderCount != 1 {
		t.Fatalf("expected responder_count=1 got=%d", got.ResponderCount)
	}

	// terminal rows are untouchable, even by the counter procedure
	if err := alerts.UpdateStatus(context.Background(), alert.ID, domain.AlertResolved); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if err := alerts.IncrementResponderCount(context.Background(), alert.ID); err != nil {
		t.Fatalf("IncrementResponderCount on resolved: %v", err)
	}
	got, err = alerts.Get(context.Background(), alert.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.AlertResolved || got.ResponderCount != 1 {
		t.Fatalf("resolved alert mutated: %+v", got)
	}
}

func TestCancelSafe_LastResponder_RevertsAlertAndAudits(t *testing.T) {
	truncateAll(t)

	alerts := NewAlertRepo(testPool, testLogger())
	responses := NewResponseRepo(testPool, testLogger())

	alert := mustCreateAlert(t, alerts, domain.UserOrigin(uuid.New()))
	responder := uuid.New()

	if _, _, err := responses.CreateSafe(context.Background(), alert.ID, responder, domain.ResponseCommitted); err != nil {
		t.Fatalf("CreateSafe: %v", err)
	}
	if err := alerts.IncrementResponderCount(context.Background(), alert.ID); err != nil {
		t.Fatalf("IncrementResponderCount: %v", err)
	}

	removed, err := responses.CancelSafe(context.Background(), alert.ID, responder, "no_longer_needed", "")
	if err != nil {
		t.Fatalf("CancelSafe: %v", err)
	}
	if !removed {
		t.Fatalf("expected removed=true")
	}

	got, err := alerts.Get(context.Background(), alert.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.AlertActive {
		t.Fatalf("expected alert reverted to active, got=%s", got.Status)
	}
	if got.ResponderCount != 0 {
		t.Fatalf("expected responder_count=0 got=%d", got.ResponderCount)
	}

	var audits int
	if err := testPool.QueryRow(context.Background(),
		`SELECT count(*) FROM response_cancellations WHERE alert_id = $1 AND responder_id = $2`,
		alert.ID, responder).Scan(&audits); err != nil {
		t.Fatalf("count cancellations: %v", err)
	}
	if audits != 1 {
		t.Fatalf("expected 1 cancellation record, got %d", audits)
	}

	// a retried cancel finds nothing to remove and stays benign
	removed, err = responses.CancelSafe(context.Background(), alert.ID, responder, "no_longer_needed", "")
	if err != nil {
		t.Fatalf("CancelSafe retry: %v", err)
	}
	if removed {
		t.Fatalf("expected removed=false on retry")
	}
}

func TestCancelSafe_OthersRemain_AlertStaysResponded(t *testing.T) {
	truncateAll(t)

	alerts := NewAlertRepo(testPool, testLogger())
	responses := NewResponseRepo(testPool, testLogger())

	alert := mustCreateAlert(t, alerts, domain.AnonymousOrigin("device-9"))
	first, second := uuid.New(), uuid.New()

	for _, responder := range []uuid.UUID{first, second} {
		if _, _, err := responses.CreateSafe(context.Background(), alert.ID, responder, domain.ResponseCommitted); err != nil {
			t.Fatalf("CreateSafe: %v", err)
		}
		if err := alerts.IncrementResponderCount(context.Background(), alert.ID); err != nil {
			t.Fatalf("IncrementResponderCount: %v", err)
		}
	}

	removed, err := responses.CancelSafe(context.Background(), alert.ID, first, "too_far", "")
	if err != nil {
		t.Fatalf("CancelSafe: %v", err)
	}
	if !removed {
		t.Fatalf("expected removed=true")
	}

	got, err := alerts.Get(context.Background(), alert.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.AlertResponded {
		t.Fatalf("expected alert still responded, got=%s", got.Status)
	}
	if got.ResponderCount != 1 {
		t.Fatalf("expected responder_count=1 got=%d", got.ResponderCount)
	}
}

func TestCancelSafe_CompletedResponse_NotRemovable(t *testing.T) {
	truncateAll(t)

	alerts := NewAlertRepo(testPool, testLogger())
	responses := NewResponseRepo(testPool, testLogger())

	alert := mustCreateAlert(t, alerts, domain.UserOrigin(uuid.New()))
	responder := uuid.New()

	if _, _, err := responses.CreateSafe(context.Background(), alert.ID, responder, domain.ResponseCommitted); err != nil {
		t.Fatalf("CreateSafe: %v", err)
	}
	outcome := domain.Outcome{CalledAmbulance: true, PersonOkay: true, Notes: "responded in time"}
	if err := responses.Complete(context.Background(), alert.ID, responder, outcome); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	removed, err := responses.CancelSafe(context.Background(), alert.ID, responder, "other", "")
	if err != nil {
		t.Fatalf("CancelSafe: %v", err)
	}
	if removed {
		t.Fatalf("completed response must not be cancellable")
	}

	got, err := responses.Get(context.Background(), alert.ID, responder)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.ResponseCompleted {
		t.Fatalf("expected status=completed got=%s", got.Status)
	}
	if got.Outcome == nil || !got.Outcome.CalledAmbulance || got.Outcome.Notes != "responded in time" {
		t.Fatalf("outcome not persisted: %+v", got.Outcome)
	}
}

func TestAlertRepo_UpdateStatus_TerminalGuard(t *testing.T) {
	truncateAll(t)

	alerts := NewAlertRepo(testPool, testLogger())
	alert := mustCreateAlert(t, alerts, domain.UserOrigin(uuid.New()))

	if err := alerts.UpdateStatus(context.Background(), alert.ID, domain.AlertResolved); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	err := alerts.UpdateStatus(context.Background(), alert.ID, domain.AlertCancelled)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, e.ErrTerminalState) {
		t.Fatalf("expected ErrTerminalState, got: %v", err)
	}
}

func TestSessionRepo_OneActivePerOrigin(t *testing.T) {
	truncateAll(t)

	sessions := NewSessionRepo(testPool, testLogger())
	origin := domain.AnonymousOrigin("device-xyz")

	first := &domain.MonitoringSession{Origin: origin, GeneralLocation: "At home"}
	if err := sessions.Create(context.Background(), first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	second := &domain.MonitoringSession{Origin: origin, GeneralLocation: "At home"}
	err := sessions.Create(context.Background(), second)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got: %v", err)
	}

	if err := sessions.CloseActiveFor(context.Background(), origin); err != nil {
		t.Fatalf("CloseActiveFor: %v", err)
	}

	third := &domain.MonitoringSession{ID: uuid.New(), Origin: origin, GeneralLocation: "At home"}
	if err := sessions.Create(context.Background(), third); err != nil {
		t.Fatalf("Create after close: %v", err)
	}
}

func TestSessionRepo_CheckInAndEndSafe(t *testing.T) {
	truncateAll(t)

	sessions := NewSessionRepo(testPool, testLogger())
	origin := domain.UserOrigin(uuid.New())

	s := &domain.MonitoringSession{Origin: origin, GeneralLocation: "Friend's place"}
	if err := sessions.Create(context.Background(), s); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for want := 1; want <= 3; want++ {
		count, err := sessions.IncrementCheckIn(context.Background(), s.ID)
		if err != nil {
			t.Fatalf("IncrementCheckIn: %v", err)
		}
		if count != want {
			t.Fatalf("expected check_in_count=%d got=%d", want, count)
		}
	}

	if err := sessions.EndSafe(context.Background(), s.ID, domain.SessionCompleted); err != nil {
		t.Fatalf("EndSafe: %v", err)
	}
	// idempotent: the second call must be a silent no-op
	if err := sessions.EndSafe(context.Background(), s.ID, domain.SessionCompleted); err != nil {
		t.Fatalf("EndSafe retry: %v", err)
	}

	got, err := sessions.Get(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.SessionCompleted {
		t.Fatalf("expected status=completed got=%s", got.Status)
	}
	if got.EndedAt == nil {
		t.Fatalf("expected ended_at set")
	}

	// ended sessions take no more check-ins
	if _, err := sessions.IncrementCheckIn(context.Background(), s.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on ended session, got: %v", err)
	}
}

func TestStatsRepo_RPCAndFallbackAgree(t *testing.T) {
	truncateAll(t)

	alerts := NewAlertRepo(testPool, testLogger())
	responses := NewResponseRepo(testPool, testLogger())
	profiles := NewProfileRepo(testPool, testLogger())
	stats := NewStatsRepo(testPool, testLogger())

	responder := uuid.New()
	if err := profiles.Heartbeat(context.Background(), responder); err != nil {
		t.Fatalf("Heartbeat: %v", err)
	}
	if err := profiles.SetRoles(context.Background(), responder, true, false); err != nil {
		t.Fatalf("SetRoles: %v", err)
	}

	alert := mustCreateAlert(t, alerts, domain.AnonymousOrigin("device-7"))
	if _, _, err := responses.CreateSafe(context.Background(), alert.ID, responder, domain.ResponseCommitted); err != nil {
		t.Fatalf("CreateSafe: %v", err)
	}
	if err := alerts.IncrementResponderCount(context.Background(), alert.ID); err != nil {
		t.Fatalf("IncrementResponderCount: %v", err)
	}

	rpc, err := stats.alertStatsRPC(context.Background())
	if err != nil {
		t.Fatalf("alertStatsRPC: %v", err)
	}
	fallback, err := stats.alertStatsFallback(context.Background())
	if err != nil {
		t.Fatalf("alertStatsFallback: %v", err)
	}

	if rpc.ActiveResponders != 1 || fallback.ActiveResponders != 1 {
		t.Fatalf("expected 1 active responder, rpc=%d fallback=%d", rpc.ActiveResponders, fallback.ActiveResponders)
	}
	if rpc.CommittedResponders != fallback.CommittedResponders {
		t.Fatalf("committed mismatch: rpc=%d fallback=%d", rpc.CommittedResponders, fallback.CommittedResponders)
	}
	if rpc.AlertCommitments[alert.ID] != 1 || fallback.AlertCommitments[alert.ID] != 1 {
		t.Fatalf("per-alert commitments mismatch: rpc=%v fallback=%v", rpc.AlertCommitments, fallback.AlertCommitments)
	}
}
