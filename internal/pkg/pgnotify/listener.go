package pgnotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/feed"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/logger"
	retrierconfig "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/retrier"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/retrier/backoff_adapter"
)

// Channel — канал pg_notify, который наполняет триггер на delivery_orders.
const Channel = "delivery_orders_feed"

const (
	initialInterval = time.Second
	maxInterval     = 30 * time.Second
	randomization   = 0.5
	multiplier      = 2
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Listener держит выделенное соединение из пула под LISTEN и
// транслирует уведомления триггера в хаб. При потере соединения
// переподключается с экспоненциальной паузой; подписчики на это
// время ничего не теряют сверх обычного overflow-правила хаба.
type Listener struct {
	log  handlerLogger
	pool *pgxpool.Pool
	hub  *feed.Hub
}

func New(log handlerLogger, pool *pgxpool.Pool, hub *feed.Hub) *Listener {
	return &Listener{
		log:  log.With(logger.NewField("component", "pgnotify")),
		pool: pool,
		hub:  hub,
	}
}

// Run блокируется до отмены контекста.
func (l *Listener) Run(ctx context.Context) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  0, // слушаем, пока жив контекст
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil,
	}
	retrier := backoff_adapter.New(retryConfig)

	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		err := l.listen(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			l.log.Warn("listen loop interrupted, reconnecting",
				logger.NewField("error", err),
			)
		}
		return err
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("pgnotify listener stopped: %w", err)
	}
	return nil
}

func (l *Listener) listen(ctx context.Context) error {
	poolConn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen connection: %w", err)
	}
	defer poolConn.Release()

	conn := poolConn.Conn()

	_, err = conn.Exec(ctx, "LISTEN "+Channel)
	if err != nil {
		return fmt.Errorf("listen %s: %w", Channel, err)
	}

	l.log.Info("listening for order feed notifications",
		logger.NewField("channel", Channel),
	)

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}

		var event feed.Event
		err = json.Unmarshal([]byte(notification.Payload), &event)
		if err != nil {
			// битый payload пропускаем, триггер контролируем мы сами
			l.log.Error("malformed feed notification",
				logger.NewField("payload", notification.Payload),
				logger.NewField("error", err),
			)
			continue
		}

		l.hub.Publish(event)
	}
}
