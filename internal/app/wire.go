//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"restaurant/internal/pkg/config"
	"restaurant/internal/pkg/kafka"
	authService "restaurant/internal/service/auth"
	menuService "restaurant/internal/service/menu"
	orderService "restaurant/internal/service/order"
	reservationService "restaurant/internal/service/reservation"
	trackingService "restaurant/internal/service/tracking"
	"restaurant/pkg/logger"
)

// InitializeApplication builds the dependency graph for the HTTP service
// (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideMenuRepository,
		provideOrderRepository,
		provideReservationRepository,

		providePaystackGateway,
		provideComposer,

		provideServiceMenu,
		provideServiceOrder,
		provideServiceTracking,
		provideServiceReservation,
		provideServiceAuth,

		provideOrderStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceMenu), new(*menuService.Menu)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),
		wire.Bind(new(ServiceReservation), new(*reservationService.Reservation)),
		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp builds the dependency graph for the status
// notification worker (cmd/worker-status-notify).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideOrderRepository,
		provideNotificationRepository,

		provideComposer,
		provideServiceNotification,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
