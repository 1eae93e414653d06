//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=menu_delete_test
package menu_delete

import (
	"context"

	"restaurant/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteItem(ctx context.Context, id int64) error
}
