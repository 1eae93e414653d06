package entities

import "time"

type MenuItem struct {
	ID          int64
	Name        string
	Category    MenuCategory
	Price       int64
	Description string
	ImageURL    string
	Available   bool
	Spicy       bool
	Allergens   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MenuCategory string

const (
	CategoryAppetizers MenuCategory = "appetizers"
	CategoryMains      MenuCategory = "mains"
	CategoryDesserts   MenuCategory = "desserts"
	CategoryBeverages  MenuCategory = "beverages"
)

func (c MenuCategory) String() string {
	return string(c)
}

type MenuItemModify struct {
	ID          *int64
	Name        *string
	Category    *MenuCategory
	Price       *int64
	Description *string
	ImageURL    *string
	Available   *bool
	Spicy       *bool
	Allergens   *[]string
}
