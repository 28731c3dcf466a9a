package feed

import (
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/logger"
)

// subscriberBuffer — глубина очереди событий одного подписчика.
// Переполнение не буферизуется: подписчик помечается отставшим
// и получает указание на полную пересинхронизацию.
const subscriberBuffer = 64

type EventOp string

const (
	OpInsert EventOp = "insert"
	OpUpdate EventOp = "update"
	OpResync EventOp = "resync"
)

// Event — одна мутация заказа. Для insert подписчик перечитывает список
// целиком, для update вливает Fields в закэшированную запись пополево.
type Event struct {
	Op              EventOp         `json:"op"`
	OrderID         string          `json:"order_id"`
	UserID          string          `json:"user_id"`
	AssignedAgentID *string         `json:"assigned_agent_id"`
	Fields          json.RawMessage `json:"fields,omitempty"`
}

type ScopeKind string

const (
	ScopeUser  ScopeKind = "user"
	ScopeAgent ScopeKind = "agent"
	ScopeAdmin ScopeKind = "admin"
)

// Scope ограничивает видимость подписки: заказчик видит свои заказы,
// агент — назначенные ему, администратор — все.
type Scope struct {
	Kind ScopeKind
	ID   string
}

func (s Scope) matches(e Event) bool {
	switch s.Kind {
	case ScopeAdmin:
		return true
	case ScopeUser:
		return e.UserID == s.ID
	case ScopeAgent:
		return e.AssignedAgentID != nil && *e.AssignedAgentID == s.ID
	default:
		return false
	}
}

type Subscription struct {
	scope  Scope
	events chan Event
	stale  atomic.Bool
	once   sync.Once
}

// Events — канал доставки. Закрывается хабом при Unsubscribe.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Stale сообщает, что подписчик пропустил события и обязан перечитать
// своё представление целиком; флаг сбрасывается при чтении.
func (s *Subscription) Stale() bool {
	return s.stale.Swap(false)
}

// drain выбрасывает накопленные события. Вызывается при переполнении:
// очередь без потерянной дельты уже неполна, досылать её нельзя.
func (s *Subscription) drain() {
	for {
		select {
		case <-s.events:
		default:
			return
		}
	}
}

func (s *Subscription) close() {
	s.once.Do(func() {
		close(s.events)
	})
}

// Hub раздаёт события заказов подписанным сессиям без опроса.
// Публикация не блокируется медленными подписчиками.
type Hub struct {
	log logger.Logger

	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		log:  log.With(logger.NewField("component", "tracking_feed")),
		subs: make(map[*Subscription]struct{}),
	}
}

func (h *Hub) Subscribe(scope Scope) *Subscription {
	sub := &Subscription{
		scope:  scope,
		events: make(chan Event, subscriberBuffer),
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	h.log.Debug("subscriber attached",
		logger.NewField("kind", string(scope.Kind)),
		logger.NewField("id", scope.ID),
	)
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	_, ok := h.subs[sub]
	delete(h.subs, sub)
	h.mu.Unlock()

	if ok {
		sub.close()
	}
}

// Publish доставляет событие каждому подписчику с подходящим scope.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs {
		if !sub.scope.matches(event) {
			continue
		}

		select {
		case sub.events <- event:
		default:
			// Очередь полна: старые дельты сбрасываются, чтобы после
			// пересинхронизации подписчик не влил их поверх свежего
			// снимка. В очереди остаётся только текущее событие.
			sub.stale.Store(true)
			sub.drain()
			select {
			case sub.events <- event:
			default:
			}
		}
	}
}

// SubscriberCount — для метрик и тестов.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close отключает всех подписчиков.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := make([]*Subscription, 0, len(h.subs))
	for sub := range h.subs {
		subs = append(subs, sub)
	}
	h.subs = make(map[*Subscription]struct{})
	h.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
}
