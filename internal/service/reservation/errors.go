package reservation

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPackage        = errors.New("invalid buffet package")
	ErrInvalidGuests         = errors.New("invalid guest count")
	ErrInvalidDate           = errors.New("invalid reservation date")
	ErrDepositNotVerified    = errors.New("deposit payment not verified")
	ErrAmountMismatch        = errors.New("paid amount does not match deposit")

	ErrReservationNotFound = errors.New("reservation not found")
	ErrConflict            = errors.New("resource already exists")
)
