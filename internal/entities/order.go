package entities

import "time"

// Order is a finalized, paid purchase. Item snapshots and the payment
// reference are frozen at creation; only Status changes afterwards.
type Order struct {
	ID              string
	CustomerName    string
	Phone           string
	Email           string
	FulfillmentType FulfillmentType
	Address         string
	Instructions    string
	Items           []OrderItem
	Subtotal        int64
	DeliveryFee     int64
	Total           int64
	Status          OrderStatusType
	PaymentRef      string
	CreatedAt       time.Time
}

// OrderItem is a line snapshot taken at checkout. Later menu edits must
// never change a placed order's recorded names or prices.
type OrderItem struct {
	Name      string
	UnitPrice int64
	Quantity  int
}

type FulfillmentType string

const (
	FulfillmentPickup   FulfillmentType = "pickup"
	FulfillmentDelivery FulfillmentType = "delivery"
)

func (t FulfillmentType) String() string {
	return string(t)
}

type OrderStatusType string

const (
	OrderConfirmed OrderStatusType = "confirmed"
	OrderPreparing OrderStatusType = "preparing"
	OrderReady     OrderStatusType = "ready"
	OrderCompleted OrderStatusType = "completed"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is permitted.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// StatusInfo is the display projection of a status. Change detection always
// compares the status value itself, never these derived labels.
type StatusInfo struct {
	Status OrderStatusType
	Label  string
	Color  string
}

var statusInfos = map[OrderStatusType]StatusInfo{
	OrderConfirmed: {Status: OrderConfirmed, Label: "Order Confirmed", Color: "blue"},
	OrderPreparing: {Status: OrderPreparing, Label: "Preparing Food", Color: "yellow"},
	OrderReady:     {Status: OrderReady, Label: "Ready", Color: "green"},
	OrderCompleted: {Status: OrderCompleted, Label: "Completed", Color: "gray"},
	OrderCancelled: {Status: OrderCancelled, Label: "Cancelled", Color: "red"},
}

// Info returns the display info for the status, falling back to the
// confirmed projection for unrecognized values.
func (s OrderStatusType) Info() StatusInfo {
	info, ok := statusInfos[s]
	if !ok {
		return statusInfos[OrderConfirmed]
	}
	return info
}

// IsKnown reports whether the status is one of the recognized values.
func (s OrderStatusType) IsKnown() bool {
	_, ok := statusInfos[s]
	return ok
}

type OrderModify struct {
	ID     *string
	Status *OrderStatusType
}
