//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reservation_test
package reservation

import (
	"context"

	"restaurant/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, reservationEntity entities.Reservation) error
	GetByID(ctx context.Context, id string) (*entities.Reservation, error)
	GetAll(ctx context.Context) ([]entities.Reservation, error)
}

type PaymentGateway interface {
	VerifyTransaction(ctx context.Context, reference string) (*entities.PaymentVerification, error)
}
