//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=track_stream_get_test
package track_stream_get

import (
	"context"
	"time"

	"restaurant/internal/entities"
	"restaurant/internal/service/tracking"
	"restaurant/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Resolve(ctx context.Context, query string) (*entities.Order, error)
	PollInterval() time.Duration
	NewWatcher() *tracking.Watcher
}
