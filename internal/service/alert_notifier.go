package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/config"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/redis"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/e"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/retry"
)

// AlertNotifier drains the outbound queue and posts new-alert payloads to
// the on-call webhook.
type AlertNotifier struct {
	logger *slog.Logger
	cfg    config.NotifyConfig
	queue  *redis.NotifyQueue
	policy retry.Policy
	http   *http.Client
}

func NewAlertNotifier(logger *slog.Logger, cfg config.NotifyConfig, q *redis.NotifyQueue, policy retry.Policy) *AlertNotifier {
	return &AlertNotifier{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		policy: policy,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *AlertNotifier) Run(ctx context.Context) {
	if s.cfg.Disabled {
		s.logger.Info("alert notifier disabled")
		return
	}
	s.logger.Info("alert notifier started", slog.String("url", s.cfg.WebhookURL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("alert notifier stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending alert notification", slog.String("alert_id", payload.AlertID.String()))
		s.send(ctx, payload)
	}
}

func (s *AlertNotifier) send(ctx context.Context, p domain.AlertNotification) {
	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("marshal notification payload failed", slog.String("error", err.Error()))
		return
	}

	webhookPolicy := s.policy
	webhookPolicy.RetryIf = func(error) bool { return true }

	err = webhookPolicy.Do(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WebhookURL, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("webhook status %s", resp.Status)
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		s.logger.Warn("alert notification dropped after retries",
			slog.String("alert_id", p.AlertID.String()),
			slog.String("reason", err.Error()))
	}
}
