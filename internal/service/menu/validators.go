package menu

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidCategory(category string) bool {
	switch category {
	case "appetizers", "mains", "desserts", "beverages":
		return true
	default:
		return false
	}
}

func isValidPrice(price int64) bool {
	return price > 0
}
