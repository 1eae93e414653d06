package tracking

import (
	"restaurant/internal/entities"
)

var statusFlow = []entities.OrderStatusType{
	entities.OrderConfirmed,
	entities.OrderPreparing,
	entities.OrderReady,
	entities.OrderCompleted,
}

// Timeline renders the fulfillment progression for the tracking view. The
// ready step is labelled per fulfillment type. A cancelled order collapses
// to a single terminal entry.
func Timeline(status entities.OrderStatusType, fulfillment entities.FulfillmentType) []entities.TimelineEntry {
	if status == entities.OrderCancelled {
		return []entities.TimelineEntry{
			{
				Status:  entities.OrderCancelled,
				Label:   entities.OrderCancelled.Info().Label,
				Done:    true,
				Current: true,
			},
		}
	}

	rank := 0
	for i, step := range statusFlow {
		if step == status {
			rank = i
		}
	}

	entries := make([]entities.TimelineEntry, len(statusFlow))
	for i, step := range statusFlow {
		label := step.Info().Label
		if step == entities.OrderReady {
			label = readyLabel(fulfillment)
		}
		entries[i] = entities.TimelineEntry{
			Status:  step,
			Label:   label,
			Done:    i <= rank,
			Current: step == status,
		}
	}
	return entries
}

func readyLabel(fulfillment entities.FulfillmentType) string {
	if fulfillment == entities.FulfillmentPickup {
		return "Ready for Pickup"
	}
	return "Out for Delivery"
}
