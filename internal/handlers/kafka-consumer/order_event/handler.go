package order_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/pkg/factory/dispatch_handle"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/dispatch"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/status"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/logger"
)

type Handler struct {
	handlerFactory           HandlerFactory
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, handlerFactory HandlerFactory, timeout time.Duration) *Handler {
	return &Handler{
		handlerFactory:           handlerFactory,
		log:                      log.With(),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event orderEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("event", event.Event),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.events processing")

	execute, err := h.handlerFactory.GetHandler(dispatch_handle.OrderEventType(event.Event))
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("order.events handler unknown event type")
		sess.MarkMessage(message, "")
		return false
	}

	err = execute(ctx, event.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, dispatch.ErrNoFreeAgent):
			// заказ остаётся pending, фоновый sweep попробует снова
			msgLog.Warn("order.events: no free agent, order stays pending")

		case errors.Is(err, dispatch.ErrInvalidTransition) || errors.Is(err, status.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.events: order already past the requested transition")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.events handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.events: processed")

	sess.MarkMessage(message, "")
	return false
}
