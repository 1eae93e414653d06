package tracking

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"restaurant/internal/entities"
	"restaurant/internal/service/order"
)

var orderIDPattern = regexp.MustCompile(`^(?i)RA[0-9]{6}$`)

type Tracking struct {
	repository   OrderRepository
	pollInterval time.Duration
}

func New(repository OrderRepository, pollInterval time.Duration) *Tracking {
	return &Tracking{
		repository:   repository,
		pollInterval: pollInterval,
	}
}

// PollInterval is how often clients should re-query for status changes.
func (s *Tracking) PollInterval() time.Duration {
	return s.pollInterval
}

// NewWatcher returns a fresh watcher bound to this service's store and
// interval. Each streaming client gets its own.
func (s *Tracking) NewWatcher() *Watcher {
	return NewWatcher(s.repository, s.pollInterval)
}

// Resolve finds an order either by its ID or by the customer's phone
// number. Order IDs are matched case-insensitively; phone queries match
// when the stored number contains the last ten digits of the query, so
// "+234 803 123 4567" and "08031234567" find the same order.
func (s *Tracking) Resolve(ctx context.Context, query string) (*entities.Order, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if orderIDPattern.MatchString(query) {
		found, err := s.repository.GetByID(ctx, query)
		if err != nil {
			if errors.Is(err, order.ErrOrderNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("resolve by id: %w", errors.Join(ErrStorageUnavailable, err))
		}
		return found, nil
	}

	digits := digitsOf(query)
	if len(digits) < 4 {
		return nil, ErrInvalidQuery
	}
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}

	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve by phone: %w", errors.Join(ErrStorageUnavailable, err))
	}

	// orders come newest-first, so a repeat customer sees their latest order
	for i := range orders {
		if strings.Contains(digitsOf(orders[i].Phone), digits) {
			return &orders[i], nil
		}
	}

	return nil, order.ErrOrderNotFound
}

func digitsOf(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
