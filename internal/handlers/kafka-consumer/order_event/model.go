package order_event

// orderEvent — сообщение топика delivery.order.events.
type orderEvent struct {
	OrderID string `json:"order_id"`
	Event   string `json:"event"`
}
