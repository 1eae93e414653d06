package menu

import (
	"context"
	"fmt"

	"restaurant/internal/entities"
)

type Menu struct {
	repository Repository
}

func New(repository Repository) *Menu {
	return &Menu{
		repository: repository,
	}
}

func (s *Menu) CreateItem(ctx context.Context, itemModify entities.MenuItemModify) (int64, error) {
	if itemModify.Name == nil ||
		itemModify.Category == nil ||
		itemModify.Price == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*itemModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidCategory(itemModify.Category.String()) {
		return 0, ErrInvalidCategory
	}
	if !isValidPrice(*itemModify.Price) {
		return 0, ErrInvalidPrice
	}

	id, err := s.repository.Create(ctx, itemModify)
	if err != nil {
		return 0, fmt.Errorf("create menu item: %w", err)
	}

	return id, nil
}

func (s *Menu) UpdateItem(ctx context.Context, itemModify entities.MenuItemModify) (*entities.MenuItem, error) {
	if itemModify.ID == nil {
		return nil, ErrInvalidMenuItemID
	}
	if itemModify.Name == nil &&
		itemModify.Category == nil &&
		itemModify.Price == nil &&
		itemModify.Description == nil &&
		itemModify.ImageURL == nil &&
		itemModify.Available == nil &&
		itemModify.Spicy == nil &&
		itemModify.Allergens == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if itemModify.Name != nil && !isValidName(*itemModify.Name) {
		return nil, ErrInvalidName
	}
	if itemModify.Category != nil && !isValidCategory(itemModify.Category.String()) {
		return nil, ErrInvalidCategory
	}
	if itemModify.Price != nil && !isValidPrice(*itemModify.Price) {
		return nil, ErrInvalidPrice
	}

	item, err := s.repository.Update(ctx, itemModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return item, nil
}

func (s *Menu) GetItem(ctx context.Context, id int64) (*entities.MenuItem, error) {
	item, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	return item, nil
}

func (s *Menu) GetItems(ctx context.Context, ids []int64) ([]entities.MenuItem, error) {
	items, err := s.repository.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}

	return items, nil
}

func (s *Menu) GetMenu(ctx context.Context) ([]entities.MenuItem, error) {
	items, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	return items, nil
}

func (s *Menu) DeleteItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidMenuItemID
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	return nil
}
