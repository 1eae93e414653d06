package entities

// Checkout is a customer's cart at the moment of payment. Prices are not
// trusted from the client; the order is re-priced from the stored menu.
type Checkout struct {
	CustomerName    string
	Phone           string
	Email           string
	FulfillmentType FulfillmentType
	Address         string
	Instructions    string
	PaymentRef      string
	Items           []CartItem
}

type CartItem struct {
	MenuItemID int64
	Quantity   int
}
