package order

import (
	"restaurant/internal/entities"
)

// statusRank orders the normal fulfillment flow. Transitions may only move
// forward through it; skipping stages is allowed, walking back is not.
var statusRank = map[entities.OrderStatusType]int{
	entities.OrderConfirmed: 0,
	entities.OrderPreparing: 1,
	entities.OrderReady:     2,
	entities.OrderCompleted: 3,
}

// validateTransition reports whether an order in status from may be moved
// to status to. Re-asserting the current status is a no-op, not an error,
// so replayed updates stay harmless.
func validateTransition(from, to entities.OrderStatusType) error {
	if !to.IsKnown() {
		return ErrInvalidStatus
	}
	if from == to {
		return nil
	}
	if from.IsTerminal() {
		return ErrTerminalStatus
	}
	if to == entities.OrderCancelled {
		return nil
	}
	if statusRank[to] > statusRank[from] {
		return nil
	}
	return ErrInvalidTransition
}
