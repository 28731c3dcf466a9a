package track

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/identity"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/feed"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/logger"
)

const (
	// pingInterval — как часто сервер шлёт ping клиенту.
	pingInterval = 30 * time.Second

	// pongWait — максимальное время ожидания pong от клиента.
	pongWait = 60 * time.Second

	// writeWait — таймаут на отправку одного сообщения.
	writeWait = 10 * time.Second

	// maxMessageSize — входящие сообщения это геопинги, больше не нужно.
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// pingMessage — геопинг агента, единственный тип входящих сообщений.
type pingMessage struct {
	OrderID string  `json:"order_id"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type Handler struct {
	log     handlerLogger
	hub     Hub
	tracker Tracker
}

func NewHandler(log logger.Logger, hub Hub, tracker Tracker) *Handler {
	return &Handler{
		log:     log,
		hub:     hub,
		tracker: tracker,
	}
}

// Handle поднимает websocket-сессию живой ленты заказов. Scope подписки
// берётся из заголовков идентификации: администратор видит все заказы,
// агент — назначенные ему, заказчик — свои. Агентские сессии дополнительно
// принимают геопинги, остальные только читают.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlerLog := h.log.With()

	scope, ok := subscriptionScope(r)
	if !ok {
		http.Error(w, "identity required", http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		handlerLog.Warn("websocket upgrade failed", logger.NewField("error", err.Error()))
		return
	}

	handlerLog = handlerLog.With(
		logger.NewField("scope_kind", string(scope.Kind)),
		logger.NewField("scope_id", scope.ID),
	)
	handlerLog.Info("tracking session opened")

	sub := h.hub.Subscribe(scope)
	defer h.hub.Unsubscribe(sub)

	done := make(chan struct{})
	go h.readPump(r, conn, scope, done, handlerLog)
	h.writePump(conn, sub, done, handlerLog)

	handlerLog.Info("tracking session closed")
}

func subscriptionScope(r *http.Request) (feed.Scope, bool) {
	if identity.IsAdmin(r) {
		return feed.Scope{Kind: feed.ScopeAdmin}, true
	}
	if agentID := identity.AgentID(r); agentID != "" {
		return feed.Scope{Kind: feed.ScopeAgent, ID: agentID}, true
	}
	if userID := identity.UserID(r); userID != "" {
		return feed.Scope{Kind: feed.ScopeUser, ID: userID}, true
	}

	return feed.Scope{}, false
}

// readPump читает входящие сообщения и держит pong-дедлайн. Геопинги
// принимаются только от агентских сессий, для остальных чтение нужно
// лишь чтобы заметить закрытие соединения.
func (h *Handler) readPump(
	r *http.Request,
	conn *websocket.Conn,
	scope feed.Scope,
	done chan<- struct{},
	handlerLog logger.Logger,
) {
	defer close(done)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				handlerLog.Warn("websocket read failed", logger.NewField("error", err.Error()))
			}
			return
		}

		if scope.Kind != feed.ScopeAgent {
			continue
		}

		var ping pingMessage
		if err = json.Unmarshal(message, &ping); err != nil {
			handlerLog.Warn("malformed ping message", logger.NewField("error", err.Error()))
			continue
		}

		_, err = h.tracker.RecordPing(r.Context(), feed.PingRequest{
			OrderID:      ping.OrderID,
			ActorAgentID: scope.ID,
			Lat:          ping.Lat,
			Lng:          ping.Lng,
		})
		if err != nil {
			h.logPingError(handlerLog, ping.OrderID, err)
		}
	}
}

func (h *Handler) logPingError(handlerLog logger.Logger, orderID string, err error) {
	switch {
	case errors.Is(err, feed.ErrOrderNotFound),
		errors.Is(err, feed.ErrNotAssignedAgent),
		errors.Is(err, feed.ErrOrderNotActive),
		errors.Is(err, feed.ErrInvalidOrderID),
		errors.Is(err, feed.ErrInvalidCoordinate):
		handlerLog.Warn("ping rejected",
			logger.NewField("order_id", orderID),
			logger.NewField("reason", err.Error()),
		)
	default:
		handlerLog.Error("record ping failed",
			logger.NewField("order_id", orderID),
			logger.NewField("error", err.Error()),
		)
	}
}

// writePump отдаёт события подписки и пингует клиента. Сразу после
// подключения и после переполнения очереди клиенту отправляется resync:
// дельты потеряны, представление нужно перечитать запросом списка.
func (h *Handler) writePump(
	conn *websocket.Conn,
	sub *feed.Subscription,
	done <-chan struct{},
	handlerLog logger.Logger,
) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	if err := h.writeEvent(conn, feed.Event{Op: feed.OpResync}); err != nil {
		return
	}

	for {
		select {
		case <-done:
			return

		case event, ok := <-sub.Events():
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if sub.Stale() {
				event = feed.Event{Op: feed.OpResync}
			}

			if err := h.writeEvent(conn, event); err != nil {
				handlerLog.Warn("websocket write failed", logger.NewField("error", err.Error()))
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) writeEvent(conn *websocket.Conn, event feed.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))

	return conn.WriteMessage(websocket.TextMessage, payload)
}
