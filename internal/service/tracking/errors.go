package tracking

import "errors"

var (
	ErrEmptyQuery   = errors.New("empty tracking query")
	ErrInvalidQuery = errors.New("invalid tracking query")

	// ErrStorageUnavailable distinguishes a store that cannot be read from a
	// store that simply has no matching order.
	ErrStorageUnavailable = errors.New("order storage unavailable")
)
