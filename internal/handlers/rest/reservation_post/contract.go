//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reservation_post_test
package reservation_post

import (
	"context"

	"restaurant/internal/entities"
	"restaurant/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Book(ctx context.Context, booking entities.BuffetBooking) (*entities.Reservation, error)
}

type MessageComposer interface {
	ReservationConfirmation(reservation entities.Reservation) string
	Link(message string) string
}
