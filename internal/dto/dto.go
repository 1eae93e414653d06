// Package dto holds the request and response bodies of the REST API.
package dto

import "time"

type MenuItem struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       int64    `json:"price"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Available   bool     `json:"available"`
	Spicy       bool     `json:"spicy,omitempty"`
	Allergens   []string `json:"allergens,omitempty"`
}

type MenuItemCreate struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       int64    `json:"price"`
	Description *string  `json:"description,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Available   *bool    `json:"available,omitempty"`
	Spicy       *bool    `json:"spicy,omitempty"`
	Allergens   []string `json:"allergens,omitempty"`
}

type MenuItemCreateResponse struct {
	ID int64 `json:"id"`
}

type MenuItemUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *int64   `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Available   *bool    `json:"available,omitempty"`
	Spicy       *bool    `json:"spicy,omitempty"`
	Allergens   []string `json:"allergens,omitempty"`
}

type CartItem struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerName    string     `json:"customer_name"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email,omitempty"`
	FulfillmentType string     `json:"fulfillment_type"`
	Address         string     `json:"address,omitempty"`
	Instructions    string     `json:"instructions,omitempty"`
	PaymentRef      string     `json:"payment_ref"`
	Items           []CartItem `json:"items"`
}

type OrderItem struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customer_name"`
	Phone           string      `json:"phone"`
	Email           string      `json:"email,omitempty"`
	FulfillmentType string      `json:"fulfillment_type"`
	Address         string      `json:"address,omitempty"`
	Instructions    string      `json:"instructions,omitempty"`
	Items           []OrderItem `json:"items"`
	Subtotal        int64       `json:"subtotal"`
	DeliveryFee     int64       `json:"delivery_fee"`
	Total           int64       `json:"total"`
	Status          string      `json:"status"`
	StatusLabel     string      `json:"status_label"`
	StatusColor     string      `json:"status_color"`
	CreatedAt       time.Time   `json:"created_at"`
}

type TimelineEntry struct {
	Status  string `json:"status"`
	Label   string `json:"label"`
	Done    bool   `json:"done"`
	Current bool   `json:"current"`
}

type TrackResponse struct {
	Order              Order           `json:"order"`
	Timeline           []TimelineEntry `json:"timeline"`
	Estimate           string          `json:"estimate"`
	PollIntervalSecond int             `json:"poll_interval_seconds"`
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type BuffetPackage struct {
	Type          string `json:"type"`
	Name          string `json:"name"`
	PricePerGuest int64  `json:"price_per_guest"`
	Description   string `json:"description"`
}

type ReservationRequest struct {
	PackageType  string `json:"package_type"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	Date         string `json:"date"`
	Guests       int    `json:"guests"`
	Occasion     string `json:"occasion,omitempty"`
	Requests     string `json:"requests,omitempty"`
	PaymentRef   string `json:"payment_ref"`
}

type Reservation struct {
	ID            string    `json:"id"`
	PackageType   string    `json:"package_type"`
	CustomerName  string    `json:"customer_name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	Date          time.Time `json:"date"`
	Guests        int       `json:"guests"`
	Occasion      string    `json:"occasion,omitempty"`
	Requests      string    `json:"requests,omitempty"`
	Subtotal      int64     `json:"subtotal"`
	ServiceCharge int64     `json:"service_charge"`
	Total         int64     `json:"total"`
	Deposit       int64     `json:"deposit"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReservationResponse struct {
	Reservation  Reservation `json:"reservation"`
	WhatsAppLink string      `json:"whatsapp_link"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
