//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"restaurant/internal/entities"
	"restaurant/pkg/logger"
)

type Repository interface {
	Record(ctx context.Context, orderID string, status entities.OrderStatusType) error
}

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
}

type MessageComposer interface {
	StatusUpdateMessage(order entities.Order) string
	Link(message string) string
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
