//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=menu_put_test
package menu_put

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
	UpdateItem(ctx context.Context, itemModify entities.MenuItemModify) (*entities.MenuItem, error)
}
