package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrTerminalStatus        = errors.New("order is in a terminal status")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrItemUnavailable       = errors.New("menu item unavailable")
	ErrPaymentNotVerified    = errors.New("payment not verified")
	ErrAmountMismatch        = errors.New("paid amount does not match order total")

	ErrOrderNotFound = errors.New("order not found")
	ErrConflict      = errors.New("resource already exists")
)
