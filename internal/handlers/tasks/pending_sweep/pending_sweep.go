package pending_sweep

import (
	"context"
	"time"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/logger"
)

type Service interface {
	SweepPending(ctx context.Context, olderThan time.Duration) (int64, error)
}

// PendingSweep периодически повторяет автоподбор для заказов,
// застрявших в pending. Заказы никогда не отменяет.
type PendingSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	minAge   time.Duration
}

func NewPendingSweep(log logger.Logger, service Service, interval, minAge time.Duration) *PendingSweep {
	return &PendingSweep{
		log:      log,
		service:  service,
		interval: interval,
		minAge:   minAge,
	}
}

func (p *PendingSweep) TTL() time.Duration {
	return p.interval
}

func (p *PendingSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	assigned, err := p.service.SweepPending(ctxWithTimeout, p.minAge)

	if assigned > 0 {
		p.log.With(
			logger.NewField("assigned_orders", assigned),
		).Info("pending sweep")
	}

	return err
}

func (p *PendingSweep) Info() string {
	return "pending sweep"
}
