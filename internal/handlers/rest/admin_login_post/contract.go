//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_login_post_test
package admin_login_post

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
	Login(ctx context.Context, password string) (string, error)
}
