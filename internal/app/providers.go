package app

import (
	"context"
	"net/http"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"restaurant/internal/gateway/paystack"
	"restaurant/internal/handlers/tasks/order_stats"
	"restaurant/internal/pkg/config"
	"restaurant/internal/pkg/kafka"
	"restaurant/internal/pkg/whatsapp"
	menuRepo "restaurant/internal/repository/menu"
	notificationRepo "restaurant/internal/repository/notification"
	orderRepo "restaurant/internal/repository/order"
	reservationRepo "restaurant/internal/repository/reservation"
	authService "restaurant/internal/service/auth"
	menuService "restaurant/internal/service/menu"
	notificationService "restaurant/internal/service/notification"
	orderService "restaurant/internal/service/order"
	reservationService "restaurant/internal/service/reservation"
	trackingService "restaurant/internal/service/tracking"
	"restaurant/pkg/background"
	"restaurant/pkg/logger"
	"restaurant/pkg/querier"
	"restaurant/pkg/tx"
)

const paystackHTTPTimeout = 10 * time.Second

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideMenuRepository(querier *querier.Querier) *menuRepo.Repository {
	return menuRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideReservationRepository(querier *querier.Querier) *reservationRepo.Repository {
	return reservationRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func providePaystackGateway(cfg *config.Config) *paystack.PaystackGateway {
	httpClient := &http.Client{Timeout: paystackHTTPTimeout}
	return paystack.New(httpClient, cfg.Paystack.BaseURL, cfg.Paystack.SecretKey)
}

func provideComposer(cfg *config.Config) *whatsapp.Composer {
	return whatsapp.NewComposer(cfg.Restaurant.Name, cfg.Restaurant.WhatsAppNumber)
}

func provideServiceMenu(repository *menuRepo.Repository) *menuService.Menu {
	return menuService.New(repository)
}

func provideServiceOrder(
	log logger.Logger,
	repository *orderRepo.Repository,
	menu *menuService.Menu,
	payments *paystack.PaystackGateway,
	producer *kafka.Producer,
	txManager *tx.Manager,
	cfg *config.Config,
) *orderService.Order {
	return orderService.New(
		log,
		repository,
		menu,
		payments,
		producer,
		txManager,
		cfg.Restaurant.DeliveryFee,
	)
}

func provideServiceTracking(repository *orderRepo.Repository, cfg *config.Config) *trackingService.Tracking {
	return trackingService.New(repository, cfg.Tracking.PollInterval)
}

func provideServiceReservation(
	repository *reservationRepo.Repository,
	payments *paystack.PaystackGateway,
) *reservationService.Reservation {
	return reservationService.New(repository, payments)
}

func provideServiceAuth(cfg *config.Config) *authService.Auth {
	return authService.New(cfg.Restaurant.AdminPassword, cfg.Tracking.SessionTokenTTL)
}

func provideServiceNotification(
	log logger.Logger,
	repository *notificationRepo.Repository,
	orders *orderRepo.Repository,
	composer *whatsapp.Composer,
) *notificationService.Notification {
	return notificationService.New(log, repository, orders, composer)
}

func provideOrderStatsTask(service *orderService.Order, cfg *config.Config) *order_stats.OrderStats {
	return order_stats.NewOrderStats(service, cfg.Tasks.OrderStatsInterval)
}

func provideTaskList(orderStatsTask *order_stats.OrderStats) []background.Task {
	return []background.Task{orderStatsTask}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
