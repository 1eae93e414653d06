package menu

import (
	"restaurant/internal/entities"
)

func ToDomain(m *MenuItemDB) *entities.MenuItem {
	if m == nil {
		return nil
	}

	return &entities.MenuItem{
		ID:          m.ID,
		Name:        m.Name,
		Category:    entities.MenuCategory(m.Category),
		Price:       m.Price,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Available:   m.Available,
		Spicy:       m.Spicy,
		Allergens:   m.Allergens,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromDomainModify(itemModify *entities.MenuItemModify) *MenuItemModifyDB {
	if itemModify == nil {
		return nil
	}
	itemDB := &MenuItemModifyDB{}

	if itemModify.ID != nil {
		itemDB.ID = itemModify.ID
	}
	if itemModify.Name != nil {
		itemDB.Name = itemModify.Name
	}
	if itemModify.Category != nil {
		category := itemModify.Category.String()
		itemDB.Category = &category
	}
	if itemModify.Price != nil {
		itemDB.Price = itemModify.Price
	}
	if itemModify.Description != nil {
		itemDB.Description = itemModify.Description
	}
	if itemModify.ImageURL != nil {
		itemDB.ImageURL = itemModify.ImageURL
	}
	if itemModify.Available != nil {
		itemDB.Available = itemModify.Available
	}
	if itemModify.Spicy != nil {
		itemDB.Spicy = itemModify.Spicy
	}
	if itemModify.Allergens != nil {
		itemDB.Allergens = itemModify.Allergens
	}

	return itemDB
}

func ToDomainList(itemsDB []MenuItemDB) []entities.MenuItem {
	if len(itemsDB) == 0 {
		return []entities.MenuItem{}
	}

	result := make([]entities.MenuItem, len(itemsDB))
	for i, itemDB := range itemsDB {
		result[i] = *ToDomain(&itemDB)
	}
	return result
}
