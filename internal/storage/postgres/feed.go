package postgres

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/e"
)

// feed channels emitted by the notify_row_change trigger
const (
	alertFeedChannel    = "alerts_feed"
	responseFeedChannel = "responses_feed"
)

// ChangeFeed consumes the store's row-level change notifications over a
// dedicated connection. Delivery is best-effort: no ordering or delivery
// guarantee, which is why consumers treat every event as a refetch hint.
type ChangeFeed struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewChangeFeed(pool *pgxpool.Pool, logger *slog.Logger) *ChangeFeed {
	return &ChangeFeed{pool: pool, logger: logger}
}

// Listen blocks, delivering change events to handle until the context is
// cancelled or the connection breaks (returned as an error so the caller
// can reconnect with backoff). ready is invoked once the subscription is
// actually established.
func (f *ChangeFeed) Listen(ctx context.Context, ready func(), handle func(domain.ChangeEvent)) error {
	const op = "postgres.ChangeFeed.Listen"

	conn, err := f.pool.Acquire(ctx)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	defer conn.Release()

	for _, channel := range []string{alertFeedChannel, responseFeedChannel} {
		if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
			f.logger.Error("listen failed", slog.String("op", op), slog.String("channel", channel), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
	}

	f.logger.Info("change feed subscribed",
		slog.String("channels", alertFeedChannel+","+responseFeedChannel))
	if ready != nil {
		ready()
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return e.WrapError(ctx, op, err)
		}

		var ev domain.ChangeEvent
		if err := json.Unmarshal([]byte(notification.Payload), &ev); err != nil {
			// a malformed payload is still a change hint, deliver it
			f.logger.Warn("undecodable feed payload",
				slog.String("channel", notification.Channel),
				slog.String("error", err.Error()))
			ev = domain.ChangeEvent{Table: notification.Channel}
		}
		handle(ev)
	}
}
