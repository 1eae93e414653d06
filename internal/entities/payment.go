package entities

import "time"

// PaymentVerification is the provider-confirmed state of a transaction.
// Amount is in kobo, as reported by the provider.
type PaymentVerification struct {
	Reference string
	Status    string
	Amount    int64
	Currency  string
	Channel   string
	PaidAt    time.Time
}

func (v PaymentVerification) Succeeded() bool {
	return v.Status == "success"
}
