package order_event

import (
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/pkg/factory/dispatch_handle"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type HandlerFactory interface {
	GetHandler(event dispatch_handle.OrderEventType) (dispatch_handle.ExecuteFn, error)
}
