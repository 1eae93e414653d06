package paystack

import (
	"time"

	"restaurant/internal/entities"
)

func toDomain(data *verifyData) *entities.PaymentVerification {
	if data == nil {
		return nil
	}

	var paidAt time.Time
	if data.PaidAt != nil {
		paidAt = *data.PaidAt
	}

	return &entities.PaymentVerification{
		Reference: data.Reference,
		Status:    data.Status,
		Amount:    data.Amount,
		Currency:  data.Currency,
		Channel:   data.Channel,
		PaidAt:    paidAt,
	}
}
