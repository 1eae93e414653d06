package menu

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidMenuItemID     = errors.New("invalid menu item id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidCategory       = errors.New("invalid category")
	ErrInvalidPrice          = errors.New("invalid price")

	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrConflict         = errors.New("resource already exists")
)
