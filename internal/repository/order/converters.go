package order

import (
	"restaurant/internal/entities"
)

func ToDomain(o *OrderDB, items []OrderItemDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		Phone:           o.Phone,
		Email:           o.Email,
		FulfillmentType: entities.FulfillmentType(o.FulfillmentType),
		Address:         o.Address,
		Instructions:    o.Instructions,
		Items:           toDomainItems(items),
		Subtotal:        o.Subtotal,
		DeliveryFee:     o.DeliveryFee,
		Total:           o.Total,
		Status:          entities.OrderStatusType(o.Status),
		PaymentRef:      o.PaymentRef,
		CreatedAt:       o.CreatedAt,
	}
}

func toDomainItems(items []OrderItemDB) []entities.OrderItem {
	if len(items) == 0 {
		return []entities.OrderItem{}
	}

	result := make([]entities.OrderItem, len(items))
	for i, item := range items {
		result[i] = entities.OrderItem{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  int(item.Quantity),
		}
	}
	return result
}

func FromDomain(order *entities.Order) (*OrderDB, []OrderItemDB) {
	if order == nil {
		return nil, nil
	}

	orderDB := &OrderDB{
		ID:              order.ID,
		CustomerName:    order.CustomerName,
		Phone:           order.Phone,
		Email:           order.Email,
		FulfillmentType: order.FulfillmentType.String(),
		Address:         order.Address,
		Instructions:    order.Instructions,
		Subtotal:        order.Subtotal,
		DeliveryFee:     order.DeliveryFee,
		Total:           order.Total,
		Status:          order.Status.String(),
		PaymentRef:      order.PaymentRef,
		CreatedAt:       order.CreatedAt,
	}

	itemsDB := make([]OrderItemDB, len(order.Items))
	for i, item := range order.Items {
		itemsDB[i] = OrderItemDB{
			OrderID:   order.ID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  int32(item.Quantity),
		}
	}

	return orderDB, itemsDB
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.ID != nil {
		orderDB.ID = orderModify.ID
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}

	return orderDB
}
