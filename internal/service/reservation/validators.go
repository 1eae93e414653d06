package reservation

import (
	"strings"
	"time"
)

const (
	minGuests = 1
	maxGuests = 50
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidGuests(guests int) bool {
	return guests >= minGuests && guests <= maxGuests
}

// isValidDate requires at least one day of notice, compared by calendar
// day so a booking for tomorrow morning is accepted at any hour today.
func isValidDate(date, now time.Time) bool {
	tomorrow := now.AddDate(0, 0, 1)
	y, m, d := tomorrow.Date()
	cutoff := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return !date.Before(cutoff)
}
