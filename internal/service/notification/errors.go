package notification

import "errors"

var (
	ErrUndefinedStatus = errors.New("undefined order status")

	// ErrAlreadyNotified marks a (order, status) pair that was processed
	// before, which is expected under at-least-once delivery.
	ErrAlreadyNotified = errors.New("status change already notified")
)
