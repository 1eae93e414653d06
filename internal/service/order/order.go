package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"restaurant/internal/entities"
	"restaurant/pkg/logger"
)

const createAttempts = 3

type Order struct {
	repository  Repository
	menuService MenuService
	payments    PaymentGateway
	publisher   EventPublisher
	txManager   TxManager
	log         serviceLogger
	deliveryFee int64
}

func New(
	log serviceLogger,
	repository Repository,
	menuService MenuService,
	payments PaymentGateway,
	publisher EventPublisher,
	txManager TxManager,
	deliveryFee int64,
) *Order {
	return &Order{
		repository:  repository,
		menuService: menuService,
		payments:    payments,
		publisher:   publisher,
		txManager:   txManager,
		log:         log,
		deliveryFee: deliveryFee,
	}
}

// Checkout turns a paid cart into a stored order. The cart is re-priced
// from the menu and the payment is verified against that server-side total
// before anything is persisted.
func (s *Order) Checkout(ctx context.Context, checkout entities.Checkout) (*entities.Order, error) {
	if err := validateCheckout(checkout); err != nil {
		return nil, err
	}

	items, subtotal, err := s.priceCart(ctx, checkout.Items)
	if err != nil {
		return nil, err
	}

	var deliveryFee int64
	if checkout.FulfillmentType == entities.FulfillmentDelivery {
		deliveryFee = s.deliveryFee
	}
	total := subtotal + deliveryFee

	verification, err := s.payments.VerifyTransaction(ctx, checkout.PaymentRef)
	if err != nil {
		return nil, fmt.Errorf("verify payment: %w", errors.Join(ErrPaymentNotVerified, err))
	}
	if !verification.Succeeded() {
		return nil, ErrPaymentNotVerified
	}
	// provider reports kobo
	if verification.Amount != total*100 {
		return nil, ErrAmountMismatch
	}

	order := entities.Order{
		CustomerName:    checkout.CustomerName,
		Phone:           checkout.Phone,
		Email:           checkout.Email,
		FulfillmentType: checkout.FulfillmentType,
		Address:         checkout.Address,
		Instructions:    checkout.Instructions,
		Items:           items,
		Subtotal:        subtotal,
		DeliveryFee:     deliveryFee,
		Total:           total,
		Status:          entities.OrderConfirmed,
		PaymentRef:      checkout.PaymentRef,
		CreatedAt:       time.Now().UTC(),
	}

	// a colliding generated ID shows up as a unique violation, try a fresh one
	for attempt := 0; attempt < createAttempts; attempt++ {
		order.ID = newOrderID()

		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.repository.Create(ctx, order)
		})
		if err == nil {
			break
		}
		if !errors.Is(err, ErrConflict) {
			return nil, fmt.Errorf("create order: %w", err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.publishStatusChange(ctx, order.ID, order.Status)

	return &order, nil
}

func (s *Order) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (s *Order) GetOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

// ChangeStatus moves an order through the status flow. The read and the
// update share a transaction so concurrent changes cannot interleave.
func (s *Order) ChangeStatus(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || !isValidOrderID(*orderModify.ID) {
		return nil, ErrInvalidOrderID
	}
	if orderModify.Status == nil {
		return nil, ErrMissingRequiredFields
	}

	var result *entities.Order
	var changed bool

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, *orderModify.ID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if err := validateTransition(current.Status, *orderModify.Status); err != nil {
			return err
		}

		if current.Status == *orderModify.Status {
			result = current
			return nil
		}

		updated, err := s.repository.UpdateStatus(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		result = updated
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.publishStatusChange(ctx, result.ID, result.Status)
	}

	return result, nil
}

func (s *Order) DeleteOrder(ctx context.Context, id string) error {
	if !isValidOrderID(id) {
		return ErrInvalidOrderID
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}

func (s *Order) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	return counts, nil
}

func (s *Order) priceCart(ctx context.Context, cart []entities.CartItem) ([]entities.OrderItem, int64, error) {
	ids := make([]int64, len(cart))
	for i, cartItem := range cart {
		ids[i] = cartItem.MenuItemID
	}

	menuItems, err := s.menuService.GetItems(ctx, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("load menu items: %w", err)
	}

	byID := make(map[int64]entities.MenuItem, len(menuItems))
	for _, item := range menuItems {
		byID[item.ID] = item
	}

	items := make([]entities.OrderItem, 0, len(cart))
	var subtotal int64
	for _, cartItem := range cart {
		menuItem, ok := byID[cartItem.MenuItemID]
		if !ok || !menuItem.Available {
			return nil, 0, ErrItemUnavailable
		}

		items = append(items, entities.OrderItem{
			Name:      menuItem.Name,
			UnitPrice: menuItem.Price,
			Quantity:  cartItem.Quantity,
		})
		subtotal += menuItem.Price * int64(cartItem.Quantity)
	}

	return items, subtotal, nil
}

// publishStatusChange is best effort. A lost event delays a customer
// notification, it never blocks the order itself.
func (s *Order) publishStatusChange(ctx context.Context, orderID string, status entities.OrderStatusType) {
	event := entities.OrderStatusChangedEvent{
		OrderID:    orderID,
		Status:     status.String(),
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.log.With(
			logger.NewField("order", orderID),
			logger.NewField("error", err),
		).Error("failed to marshal status change event")
		return
	}

	if err := s.publisher.Publish(ctx, orderID, payload); err != nil {
		s.log.With(
			logger.NewField("order", orderID),
			logger.NewField("status", status.String()),
			logger.NewField("error", err),
		).Warn("failed to publish status change event")
	}
}

func validateCheckout(checkout entities.Checkout) error {
	if !isValidName(checkout.CustomerName) {
		return ErrMissingRequiredFields
	}
	if !isValidPhone(checkout.Phone) {
		return ErrInvalidPhone
	}
	if !isValidFulfillment(checkout.FulfillmentType.String()) {
		return ErrMissingRequiredFields
	}
	if checkout.FulfillmentType == entities.FulfillmentDelivery && checkout.Address == "" {
		return ErrMissingRequiredFields
	}
	if checkout.PaymentRef == "" {
		return ErrMissingRequiredFields
	}
	if len(checkout.Items) == 0 {
		return ErrEmptyCart
	}
	for _, item := range checkout.Items {
		if item.Quantity <= 0 {
			return ErrEmptyCart
		}
	}
	return nil
}

func newOrderID() string {
	return fmt.Sprintf("RA%06d", rand.IntN(1000000))
}
