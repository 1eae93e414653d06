package orders_export_get

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"restaurant/internal/entities"
	"restaurant/pkg/logger"
)

var csvHeader = []string{
	"id",
	"created_at",
	"customer_name",
	"phone",
	"fulfillment_type",
	"items",
	"subtotal",
	"delivery_fee",
	"total",
	"status",
}

// Handler exports all orders as a CSV download for the admin dashboard.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.GetOrders(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("orders-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write CSV header")
		return
	}

	for i := range orders {
		if err := writer.Write(csvRow(orders[i])); err != nil {
			h.log.With(
				logger.NewField("error", err),
			).Error("write CSV row")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("flush CSV")
	}
}

func csvRow(order entities.Order) []string {
	items := make([]string, len(order.Items))
	for i, item := range order.Items {
		items[i] = fmt.Sprintf("%dx %s", item.Quantity, item.Name)
	}

	return []string{
		order.ID,
		order.CreatedAt.UTC().Format(time.RFC3339),
		order.CustomerName,
		order.Phone,
		order.FulfillmentType.String(),
		strings.Join(items, "; "),
		fmt.Sprintf("%d", order.Subtotal),
		fmt.Sprintf("%d", order.DeliveryFee),
		fmt.Sprintf("%d", order.Total),
		order.Status.String(),
	}
}
