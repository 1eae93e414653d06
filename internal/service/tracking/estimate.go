package tracking

import (
	"fmt"
	"time"

	"restaurant/internal/entities"
)

const (
	prepDuration     = 30 * time.Minute
	deliveryDuration = 15 * time.Minute
)

// Estimate builds the human estimate line for the tracking view. It is
// derived from the order's age, not from kitchen telemetry, so it degrades
// to "any moment now" once the window has passed.
func Estimate(order entities.Order, now time.Time) string {
	switch order.Status {
	case entities.OrderCancelled:
		return "This order was cancelled"
	case entities.OrderCompleted:
		return "Completed. Enjoy your meal!"
	case entities.OrderReady:
		if order.FulfillmentType == entities.FulfillmentPickup {
			return "Ready for pickup now"
		}
		return "Out for delivery"
	}

	target := order.CreatedAt.Add(prepDuration)
	if order.FulfillmentType == entities.FulfillmentDelivery {
		target = target.Add(deliveryDuration)
	}

	remaining := target.Sub(now)
	if remaining <= 0 {
		return "Any moment now!"
	}

	minutes := int((remaining + time.Minute - 1) / time.Minute)
	if order.FulfillmentType == entities.FulfillmentDelivery {
		return fmt.Sprintf("Estimated delivery in %d min", minutes)
	}
	return fmt.Sprintf("Ready for pickup in about %d min", minutes)
}
