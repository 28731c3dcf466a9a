package status

import (
	"strings"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

// isAgentTarget — статусы, в которые заказ продвигает назначенный агент.
// pending и cancelled агентам недоступны.
func isAgentTarget(target entities.OrderStatusType) bool {
	switch target {
	case entities.OrderPickedUp, entities.OrderInTransit, entities.OrderDelivered:
		return true
	default:
		return false
	}
}
