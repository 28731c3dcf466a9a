package entities

import "time"

// LocationPing — последняя известная позиция агента по активному заказу.
// Частоту записи задаёт клиент агента, здесь только контракт чтения.
type LocationPing struct {
	OrderID    string
	AgentID    string
	Lat        float64
	Lng        float64
	RecordedAt time.Time
}
