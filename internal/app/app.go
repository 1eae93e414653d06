package app

import (
	"context"

	"restaurant/internal/handlers/rest/admin_login_post"
	"restaurant/internal/handlers/rest/admin_logout_post"
	"restaurant/internal/handlers/rest/buffet_packages_get"
	"restaurant/internal/handlers/rest/checkout_post"
	"restaurant/internal/handlers/rest/menu_delete"
	"restaurant/internal/handlers/rest/menu_get"
	"restaurant/internal/handlers/rest/menu_post"
	"restaurant/internal/handlers/rest/menu_put"
	"restaurant/internal/handlers/rest/order_delete"
	"restaurant/internal/handlers/rest/order_status_put"
	"restaurant/internal/handlers/rest/orders_get"
	"restaurant/internal/handlers/rest/reservation_post"
	"restaurant/internal/handlers/rest/track_get"
	"restaurant/internal/handlers/rest/track_stream_get"
	"restaurant/internal/pkg/whatsapp"
	notificationService "restaurant/internal/service/notification"
	"restaurant/pkg/background"
)

// Application bundles everything the HTTP binary wires into its router.
type Application struct {
	ServiceMenu        ServiceMenu
	ServiceOrder       ServiceOrder
	ServiceTracking    ServiceTracking
	ServiceReservation ServiceReservation
	ServiceAuth        ServiceAuth
	Composer           *whatsapp.Composer
	BackgroundWorkers  *background.Worker
}

type ServiceMenu interface {
	menu_get.Service
	menu_post.Service
	menu_put.Service
	menu_delete.Service
}

type ServiceOrder interface {
	checkout_post.Service
	orders_get.Service
	order_status_put.Service
	order_delete.Service
}

type ServiceTracking interface {
	track_get.Service
	track_stream_get.Service
}

type ServiceReservation interface {
	reservation_post.Service
	buffet_packages_get.Service
}

type ServiceAuth interface {
	admin_login_post.Service
	admin_logout_post.Service
	Validate(ctx context.Context, token string) error
}

// KafkaWorkerApp bundles what the status notification worker needs.
type KafkaWorkerApp struct {
	NotificationService *notificationService.Notification
}
