package entities

import "time"

// OrderStatusChangedEvent is the wire form published to the broker whenever
// an order moves to a new status.
type OrderStatusChangedEvent struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
