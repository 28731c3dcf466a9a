package order

import (
	"strings"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidActorID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidEndpoint(e entities.Endpoint) bool {
	return strings.TrimSpace(e.Address) != "" &&
		strings.TrimSpace(e.ContactName) != "" &&
		strings.TrimSpace(e.ContactPhone) != ""
}

func isValidStatus(status string) bool {
	switch status {
	case "pending", "agent_assigned", "picked_up", "in_transit", "delivered", "cancelled":
		return true
	default:
		return false
	}
}

func isValidUrgency(u entities.OrderUrgencyType) bool {
	switch u {
	case entities.UrgencyNormal, entities.UrgencyUrgent:
		return true
	default:
		return false
	}
}
