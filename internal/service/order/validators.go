package order

import (
	"regexp"
	"strings"
)

var orderIDPattern = regexp.MustCompile(`^(?i)RA[0-9]{6}$`)

func isValidOrderID(id string) bool {
	return orderIDPattern.MatchString(strings.TrimSpace(id))
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	digits := 0
	for _, char := range phone {
		switch {
		case char >= '0' && char <= '9':
			digits++
		case char == '+' || char == ' ' || char == '-' || char == '(' || char == ')':
		default:
			return false
		}
	}
	return digits >= 10
}

func isValidFulfillment(fulfillment string) bool {
	switch fulfillment {
	case "pickup", "delivery":
		return true
	default:
		return false
	}
}
