package paystack

import "time"

type verifyResponse struct {
	Status  bool       `json:"status"`
	Message string     `json:"message"`
	Data    verifyData `json:"data"`
}

type verifyData struct {
	Reference string     `json:"reference"`
	Status    string     `json:"status"`
	Amount    int64      `json:"amount"`
	Currency  string     `json:"currency"`
	Channel   string     `json:"channel"`
	PaidAt    *time.Time `json:"paid_at"`
}
