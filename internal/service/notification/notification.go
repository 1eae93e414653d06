package notification

import (
	"context"
	"fmt"

	"restaurant/internal/entities"
	"restaurant/pkg/logger"
)

type Notification struct {
	repository Repository
	orders     OrderRepository
	composer   MessageComposer
	log        serviceLogger
}

func New(log serviceLogger, repository Repository, orders OrderRepository, composer MessageComposer) *Notification {
	return &Notification{
		repository: repository,
		orders:     orders,
		composer:   composer,
		log:        log,
	}
}

// ProcessStatusChange handles one status change event from the broker.
// The (order, status) pair is claimed with a unique insert first, so
// redelivered events never produce a second notification.
func (s *Notification) ProcessStatusChange(ctx context.Context, event entities.OrderStatusChangedEvent) (*entities.Order, error) {
	status := entities.OrderStatusType(event.Status)
	if !status.IsKnown() {
		return nil, ErrUndefinedStatus
	}

	if err := s.repository.Record(ctx, event.OrderID, status); err != nil {
		return nil, fmt.Errorf("record notification: %w", err)
	}

	order, err := s.orders.GetByID(ctx, event.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	// the order may already have advanced past the event; the message
	// reflects the status that was claimed, not the current one
	notified := *order
	notified.Status = status

	message := s.composer.StatusUpdateMessage(notified)

	s.log.With(
		logger.NewField("order", notified.ID),
		logger.NewField("status", status.String()),
		logger.NewField("link", s.composer.Link(message)),
	).Info("customer notification prepared")

	notificationsPrepared.WithLabelValues(status.String()).Inc()

	return &notified, nil
}
