package entities

import "time"

// Reservation is a paid buffet booking. The deposit is collected up front,
// the balance is settled at the restaurant.
type Reservation struct {
	ID            string
	PackageType   BuffetPackageType
	CustomerName  string
	Phone         string
	Email         string
	Date          time.Time
	Guests        int
	Occasion      string
	Requests      string
	Subtotal      int64
	ServiceCharge int64
	Total         int64
	Deposit       int64
	Status        ReservationStatus
	PaymentRef    string
	CreatedAt     time.Time
}

// ReservationStatus has a single value today: a reservation only exists
// once its deposit is verified.
type ReservationStatus string

const ReservationConfirmed ReservationStatus = "confirmed"

func (s ReservationStatus) String() string {
	return string(s)
}

type BuffetPackageType string

const (
	PackageStandard BuffetPackageType = "standard"
	PackagePremium  BuffetPackageType = "premium"
	PackageVIP      BuffetPackageType = "vip"
)

func (p BuffetPackageType) String() string {
	return string(p)
}

// BuffetBooking is a reservation request before pricing. Totals are always
// computed server-side from the package table.
type BuffetBooking struct {
	PackageType  BuffetPackageType
	CustomerName string
	Phone        string
	Email        string
	Date         time.Time
	Guests       int
	Occasion     string
	Requests     string
	PaymentRef   string
}

type BuffetPackage struct {
	Type          BuffetPackageType
	Name          string
	PricePerGuest int64
	Description   string
}
