//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=menu_test
package menu

import (
	"context"

	"restaurant/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, itemModifyEntity entities.MenuItemModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.MenuItem, error)
	GetByIDs(ctx context.Context, ids []int64) ([]entities.MenuItem, error)
	GetAll(ctx context.Context) ([]entities.MenuItem, error)
	Update(ctx context.Context, itemModifyEntity entities.MenuItemModify) (*entities.MenuItem, error)
	Delete(ctx context.Context, id int64) error
}
