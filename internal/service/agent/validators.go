package agent

import "strings"

func isValidAgentID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidVehicle(vehicle string) bool {
	switch vehicle {
	case "bike", "car", "foot":
		return true
	default:
		return false
	}
}

func isValidAvailabilityStatus(status string) bool {
	switch status {
	case "online", "busy", "offline":
		return true
	default:
		return false
	}
}
