package reservation

import "time"

type ReservationDB struct {
	ID            string
	PackageType   string
	CustomerName  string
	Phone         string
	Email         string
	Date          time.Time
	Guests        int32
	Occasion      string
	Requests      string
	Subtotal      int64
	ServiceCharge int64
	Total         int64
	Deposit       int64
	Status        string
	PaymentRef    string
	CreatedAt     time.Time
}
