package menu

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"restaurant/internal/entities"
	"restaurant/internal/repository"
	"restaurant/internal/service/menu"
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

func (r *Repository) Create(ctx context.Context, itemModifyEntity entities.MenuItemModify) (int64, error) {
	itemModifyDB := FromDomainModify(&itemModifyEntity)
	query := `INSERT INTO menu_items (name, category, price, description, image_url, available, spicy, allergens)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		itemModifyDB.Name,
		itemModifyDB.Category,
		itemModifyDB.Price,
		itemModifyDB.Description,
		itemModifyDB.ImageURL,
		itemModifyDB.Available,
		itemModifyDB.Spicy,
		itemModifyDB.Allergens,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, menu.ErrConflict
		}
		return 0, fmt.Errorf("unexpected menu repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, itemModifyEntity entities.MenuItemModify) (*entities.MenuItem, error) {
	itemModifyDB := FromDomainModify(&itemModifyEntity)

	builder := qb.
		Update("menu_items")

	if itemModifyDB.Name != nil {
		builder = builder.Set("name", itemModifyDB.Name)
	}
	if itemModifyDB.Category != nil {
		builder = builder.Set("category", itemModifyDB.Category)
	}
	if itemModifyDB.Price != nil {
		builder = builder.Set("price", itemModifyDB.Price)
	}
	if itemModifyDB.Description != nil {
		builder = builder.Set("description", itemModifyDB.Description)
	}
	if itemModifyDB.ImageURL != nil {
		builder = builder.Set("image_url", itemModifyDB.ImageURL)
	}
	if itemModifyDB.Available != nil {
		builder = builder.Set("available", itemModifyDB.Available)
	}
	if itemModifyDB.Spicy != nil {
		builder = builder.Set("spicy", itemModifyDB.Spicy)
	}
	if itemModifyDB.Allergens != nil {
		builder = builder.Set("allergens", *itemModifyDB.Allergens)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": itemModifyDB.ID}).
		Suffix("RETURNING id, name, category, price, description, image_url, available, spicy, allergens, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected menu repository update error: %w", err)
	}

	var itemDB MenuItemDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&itemDB.ID,
			&itemDB.Name,
			&itemDB.Category,
			&itemDB.Price,
			&itemDB.Description,
			&itemDB.ImageURL,
			&itemDB.Available,
			&itemDB.Spicy,
			&itemDB.Allergens,
			&itemDB.CreatedAt,
			&itemDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, menu.ErrMenuItemNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, menu.ErrConflict
		}

		return nil, fmt.Errorf("unexpected menu repository update error: %w", err)
	}

	return ToDomain(&itemDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.MenuItem, error) {
	query := `SELECT id, name, category, price, description, image_url, available, spicy, allergens, created_at, updated_at
		FROM menu_items
		WHERE id = $1`

	var itemDB MenuItemDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&itemDB.ID,
			&itemDB.Name,
			&itemDB.Category,
			&itemDB.Price,
			&itemDB.Description,
			&itemDB.ImageURL,
			&itemDB.Available,
			&itemDB.Spicy,
			&itemDB.Allergens,
			&itemDB.CreatedAt,
			&itemDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, menu.ErrMenuItemNotFound
		}

		return nil, fmt.Errorf("unexpected menu repository getbyid error: %w", err)
	}

	return ToDomain(&itemDB), nil
}

func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]entities.MenuItem, error) {
	query := `
	SELECT id, name, category, price, description, image_url, available, spicy, allergens, created_at, updated_at
	FROM menu_items
	WHERE id = ANY($1)
	ORDER BY id`

	return r.queryList(ctx, query, ids)
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.MenuItem, error) {
	query := `
	SELECT id, name, category, price, description, image_url, available, spicy, allergens, created_at, updated_at
	FROM menu_items
	ORDER BY category, id`

	return r.queryList(ctx, query)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM menu_items WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected menu repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return menu.ErrMenuItemNotFound
	}

	return nil
}

func (r *Repository) queryList(ctx context.Context, query string, args ...interface{}) ([]entities.MenuItem, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected menu repository query error: %w", err)
	}
	defer rows.Close()

	itemModels := make([]MenuItemDB, 0, 16)
	for rows.Next() {
		var itemDB MenuItemDB
		err := rows.Scan(
			&itemDB.ID,
			&itemDB.Name,
			&itemDB.Category,
			&itemDB.Price,
			&itemDB.Description,
			&itemDB.ImageURL,
			&itemDB.Available,
			&itemDB.Spicy,
			&itemDB.Allergens,
			&itemDB.CreatedAt,
			&itemDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected menu repository query error: %w", err)
		}
		itemModels = append(itemModels, itemDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected menu repository query error: %w", err)
	}

	return ToDomainList(itemModels), nil
}
