package order

import "time"

type OrderDB struct {
	ID              string
	CustomerName    string
	Phone           string
	Email           string
	FulfillmentType string
	Address         string
	Instructions    string
	Subtotal        int64
	DeliveryFee     int64
	Total           int64
	Status          string
	PaymentRef      string
	CreatedAt       time.Time
}

type OrderItemDB struct {
	OrderID   string
	Name      string
	UnitPrice int64
	Quantity  int32
}

type OrderModifyDB struct {
	ID     *string
	Status *string
}
