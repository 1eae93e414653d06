package menu

import "time"

type MenuItemDB struct {
	ID          int64
	Name        string
	Category    string
	Price       int64
	Description string
	ImageURL    string
	Available   bool
	Spicy       bool
	Allergens   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MenuItemModifyDB struct {
	ID          *int64
	Name        *string
	Category    *string
	Price       *int64
	Description *string
	ImageURL    *string
	Available   *bool
	Spicy       *bool
	Allergens   *[]string
}
