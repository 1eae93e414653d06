package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"restaurant/internal/entities"
)

// Composer builds wa.me deep links for customer-facing notifications.
type Composer struct {
	restaurantName string
	businessNumber string
}

func NewComposer(restaurantName, businessNumber string) *Composer {
	return &Composer{
		restaurantName: restaurantName,
		businessNumber: normalizeNumber(businessNumber),
	}
}

// Link returns a wa.me URL that opens a chat with the business number and
// the given message prefilled.
func (c *Composer) Link(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", c.businessNumber, url.QueryEscape(message))
}

func (c *Composer) NewOrderMessage(order entities.Order) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "*New Order - %s*\n\n", c.restaurantName)
	fmt.Fprintf(&sb, "Order ID: %s\n", order.ID)
	fmt.Fprintf(&sb, "Customer: %s\n", order.CustomerName)
	fmt.Fprintf(&sb, "Phone: %s\n\n", order.Phone)

	for _, item := range order.Items {
		fmt.Fprintf(&sb, "%dx %s - %s\n", item.Quantity, item.Name, formatNaira(item.UnitPrice*int64(item.Quantity)))
	}

	fmt.Fprintf(&sb, "\nSubtotal: %s\n", formatNaira(order.Subtotal))
	if order.FulfillmentType == entities.FulfillmentDelivery {
		fmt.Fprintf(&sb, "Delivery Fee: %s\n", formatNaira(order.DeliveryFee))
		fmt.Fprintf(&sb, "Address: %s\n", order.Address)
	}
	fmt.Fprintf(&sb, "Total: %s", formatNaira(order.Total))

	if order.Instructions != "" {
		fmt.Fprintf(&sb, "\n\nInstructions: %s", order.Instructions)
	}

	return sb.String()
}

func (c *Composer) StatusUpdateMessage(order entities.Order) string {
	info := order.Status.Info()

	var sb strings.Builder
	fmt.Fprintf(&sb, "*%s*\n\n", c.restaurantName)
	fmt.Fprintf(&sb, "Hi %s, your order %s is now: %s", order.CustomerName, order.ID, info.Label)

	switch order.Status {
	case entities.OrderReady:
		if order.FulfillmentType == entities.FulfillmentPickup {
			sb.WriteString("\n\nYour order is ready for pickup!")
		} else {
			sb.WriteString("\n\nYour order is on its way!")
		}
	case entities.OrderCompleted:
		sb.WriteString("\n\nThank you for your order. Enjoy your meal!")
	}

	return sb.String()
}

func (c *Composer) ReservationConfirmation(res entities.Reservation) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "*Buffet Reservation - %s*\n\n", c.restaurantName)
	fmt.Fprintf(&sb, "Reservation ID: %s\n", res.ID)
	fmt.Fprintf(&sb, "Name: %s\n", res.CustomerName)
	fmt.Fprintf(&sb, "Date: %s\n", res.Date.Format("Monday, 2 January 2006"))
	fmt.Fprintf(&sb, "Guests: %d\n", res.Guests)
	fmt.Fprintf(&sb, "Package: %s\n\n", res.PackageType)
	fmt.Fprintf(&sb, "Total: %s\n", formatNaira(res.Total))
	fmt.Fprintf(&sb, "Deposit due: %s", formatNaira(res.Deposit))

	return sb.String()
}

// normalizeNumber strips everything but digits so "+234 916 669 3315"
// becomes a valid wa.me path segment.
func normalizeNumber(number string) string {
	var sb strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func formatNaira(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	if len(s) <= 3 {
		return "₦" + s
	}

	var sb strings.Builder
	sb.WriteString("₦")
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > len("₦") {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
