package order_status_changed

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
	ProcessStatusChange(ctx context.Context, event entities.OrderStatusChangedEvent) (*entities.Order, error)
}
