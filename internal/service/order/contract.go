//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"restaurant/internal/entities"
	"restaurant/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, orderEntity entities.Order) error
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type MenuService interface {
	GetItems(ctx context.Context, ids []int64) ([]entities.MenuItem, error)
}

type PaymentGateway interface {
	VerifyTransaction(ctx context.Context, reference string) (*entities.PaymentVerification, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
