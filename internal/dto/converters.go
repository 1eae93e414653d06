package dto

import (
	"restaurant/internal/entities"
)

func FromOrder(order entities.Order) Order {
	info := order.Status.Info()

	items := make([]OrderItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItem{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}

	return Order{
		ID:              order.ID,
		CustomerName:    order.CustomerName,
		Phone:           order.Phone,
		Email:           order.Email,
		FulfillmentType: order.FulfillmentType.String(),
		Address:         order.Address,
		Instructions:    order.Instructions,
		Items:           items,
		Subtotal:        order.Subtotal,
		DeliveryFee:     order.DeliveryFee,
		Total:           order.Total,
		Status:          order.Status.String(),
		StatusLabel:     info.Label,
		StatusColor:     info.Color,
		CreatedAt:       order.CreatedAt,
	}
}

func FromMenuItem(item entities.MenuItem) MenuItem {
	return MenuItem{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category.String(),
		Price:       item.Price,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Available:   item.Available,
		Spicy:       item.Spicy,
		Allergens:   item.Allergens,
	}
}

func FromTimeline(entries []entities.TimelineEntry) []TimelineEntry {
	result := make([]TimelineEntry, len(entries))
	for i, entry := range entries {
		result[i] = TimelineEntry{
			Status:  entry.Status.String(),
			Label:   entry.Label,
			Done:    entry.Done,
			Current: entry.Current,
		}
	}
	return result
}

func FromReservation(reservation entities.Reservation) Reservation {
	return Reservation{
		ID:            reservation.ID,
		PackageType:   reservation.PackageType.String(),
		CustomerName:  reservation.CustomerName,
		Phone:         reservation.Phone,
		Email:         reservation.Email,
		Date:          reservation.Date,
		Guests:        reservation.Guests,
		Occasion:      reservation.Occasion,
		Requests:      reservation.Requests,
		Subtotal:      reservation.Subtotal,
		ServiceCharge: reservation.ServiceCharge,
		Total:         reservation.Total,
		Deposit:       reservation.Deposit,
		Status:        reservation.Status.String(),
		CreatedAt:     reservation.CreatedAt,
	}
}
