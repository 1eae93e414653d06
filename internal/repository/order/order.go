package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"restaurant/internal/entities"
	"restaurant/internal/repository"
	"restaurant/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create inserts the order and its item snapshots. Callers run it inside a
// transaction so a failed item insert never leaves a headless order behind.
func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) error {
	orderDB, itemsDB := FromDomain(&orderEntity)

	query := `INSERT INTO orders (id, customer_name, phone, email, fulfillment_type, address,
			instructions, subtotal, delivery_fee, total, status, payment_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.querier.Exec(
		ctx,
		query,
		orderDB.ID,
		orderDB.CustomerName,
		orderDB.Phone,
		orderDB.Email,
		orderDB.FulfillmentType,
		orderDB.Address,
		orderDB.Instructions,
		orderDB.Subtotal,
		orderDB.DeliveryFee,
		orderDB.Total,
		orderDB.Status,
		orderDB.PaymentRef,
		orderDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return order.ErrConflict
		}
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	itemQuery := `INSERT INTO order_items (order_id, name, unit_price, quantity)
		VALUES ($1, $2, $3, $4)`

	for _, item := range itemsDB {
		_, err := r.querier.Exec(ctx, itemQuery, item.OrderID, item.Name, item.UnitPrice, item.Quantity)
		if err != nil {
			return fmt.Errorf("unexpected order repository create error: %w", err)
		}
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT id, customer_name, phone, email, fulfillment_type, address,
			instructions, subtotal, delivery_fee, total, status, payment_ref, created_at
		FROM orders
		WHERE id = $1`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, strings.ToUpper(id)).
		Scan(
			&orderDB.ID,
			&orderDB.CustomerName,
			&orderDB.Phone,
			&orderDB.Email,
			&orderDB.FulfillmentType,
			&orderDB.Address,
			&orderDB.Instructions,
			&orderDB.Subtotal,
			&orderDB.DeliveryFee,
			&orderDB.Total,
			&orderDB.Status,
			&orderDB.PaymentRef,
			&orderDB.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	items, err := r.getItems(ctx, []string{orderDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items[orderDB.ID]), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	query := `
	SELECT id, customer_name, phone, email, fulfillment_type, address,
		instructions, subtotal, delivery_fee, total, status, payment_ref, created_at
	FROM orders
	ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(
			&orderDB.ID,
			&orderDB.CustomerName,
			&orderDB.Phone,
			&orderDB.Email,
			&orderDB.FulfillmentType,
			&orderDB.Address,
			&orderDB.Instructions,
			&orderDB.Subtotal,
			&orderDB.DeliveryFee,
			&orderDB.Total,
			&orderDB.Status,
			&orderDB.PaymentRef,
			&orderDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, orderDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	if len(orderModels) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orderModels))
	for i, orderDB := range orderModels {
		ids[i] = orderDB.ID
	}

	itemsByOrder, err := r.getItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, len(orderModels))
	for i, orderDB := range orderModels {
		result[i] = *ToDomain(&orderDB, itemsByOrder[orderDB.ID])
	}
	return result, nil
}

// UpdateStatus applies a partial update and returns the stored row so the
// caller sees the persisted state, not its own intent.
func (r *Repository) UpdateStatus(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyDB := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	if orderModifyDB.Status != nil {
		builder = builder.Set("status", orderModifyDB.Status)
	}

	builder = builder.
		Where(sq.Eq{"id": orderModifyDB.ID}).
		Suffix(`RETURNING id, customer_name, phone, email, fulfillment_type, address,
			instructions, subtotal, delivery_fee, total, status, payment_ref, created_at`)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&orderDB.ID,
			&orderDB.CustomerName,
			&orderDB.Phone,
			&orderDB.Email,
			&orderDB.FulfillmentType,
			&orderDB.Address,
			&orderDB.Instructions,
			&orderDB.Subtotal,
			&orderDB.DeliveryFee,
			&orderDB.Total,
			&orderDB.Status,
			&orderDB.PaymentRef,
			&orderDB.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	items, err := r.getItems(ctx, []string{orderDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items[orderDB.ID]), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM orders WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, strings.ToUpper(id))
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	query := `
	SELECT status, COUNT(*)
	FROM orders
	GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusType]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
		}
		counts[entities.OrderStatusType(status)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}

	return counts, nil
}

func (r *Repository) getItems(ctx context.Context, orderIDs []string) (map[string][]OrderItemDB, error) {
	query := `
	SELECT order_id, name, unit_price, quantity
	FROM order_items
	WHERE order_id = ANY($1)
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getitems error: %w", err)
	}
	defer rows.Close()

	itemsByOrder := make(map[string][]OrderItemDB, len(orderIDs))
	for rows.Next() {
		var item OrderItemDB
		err := rows.Scan(&item.OrderID, &item.Name, &item.UnitPrice, &item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getitems error: %w", err)
		}
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getitems error: %w", err)
	}

	return itemsByOrder, nil
}
