package admin_auth

import (
	"context"

	"restaurant/pkg/logger"
)

type sessionChecker interface {
	Validate(ctx context.Context, token string) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
