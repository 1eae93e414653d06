package notification

import (
	"context"
	"fmt"

	"restaurant/internal/entities"
	"restaurant/internal/repository"
	"restaurant/internal/service/notification"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Record claims the (order_id, status) pair. The unique constraint makes
// re-delivered events from the broker a no-op.
func (r *Repository) Record(ctx context.Context, orderID string, status entities.OrderStatusType) error {
	query := `INSERT INTO status_notifications (order_id, status, notified_at)
		VALUES ($1, $2, NOW())`

	_, err := r.querier.Exec(ctx, query, orderID, status.String())
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return notification.ErrAlreadyNotified
		}
		return fmt.Errorf("unexpected notification repository record error: %w", err)
	}

	return nil
}
