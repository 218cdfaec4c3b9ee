package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/service"
	mock_service "github.com/lolrip/Drewbert-Overdose-Response-Network/internal/service/mocks"
)

func TestGetStats_CacheHitSkipsStore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockStatsCache(ctrl)
	svc := service.NewStatsService(repo, cache, newTestLogger(), 30*time.Second)

	cached := &domain.AlertStats{ActiveResponders: 7, CommittedResponders: 2}
	cache.EXPECT().Get(gomock.Any()).Return(cached, nil)

	got, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != cached {
		t.Fatalf("expected cached snapshot, got %+v", got)
	}
}

func TestGetStats_CacheMissComputesAndStores(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockStatsCache(ctrl)
	svc := service.NewStatsService(repo, cache, newTestLogger(), 30*time.Second)

	fresh := &domain.AlertStats{ActiveResponders: 3}

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any()).Return(nil, nil),
		repo.EXPECT().AlertStats(gomock.Any()).Return(fresh, nil),
		cache.EXPECT().Set(gomock.Any(), fresh, 30*time.Second).Return(nil),
	)

	got, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != fresh {
		t.Fatalf("expected fresh snapshot, got %+v", got)
	}
}

// A broken cache degrades to the store, it never fails the read.
func TestGetStats_CacheErrorDegradesToStore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockStatsRepository(ctrl)
	cache := mock_service.NewMockStatsCache(ctrl)
	svc := service.NewStatsService(repo, cache, newTestLogger(), time.Minute)

	fresh := &domain.AlertStats{CommittedResponders: 1}

	cache.EXPECT().Get(gomock.Any()).Return(nil, context.DeadlineExceeded)
	repo.EXPECT().AlertStats(gomock.Any()).Return(fresh, nil)
	cache.EXPECT().Set(gomock.Any(), fresh, time.Minute).Return(nil)

	got, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != fresh {
		t.Fatalf("expected fresh snapshot, got %+v", got)
	}
}
