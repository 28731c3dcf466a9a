//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=track_test
package track

import (
	"context"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/feed"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Hub interface {
	Subscribe(scope feed.Scope) *feed.Subscription
	Unsubscribe(sub *feed.Subscription)
}

type Tracker interface {
	RecordPing(ctx context.Context, request feed.PingRequest) (*entities.LocationPing, error)
}
