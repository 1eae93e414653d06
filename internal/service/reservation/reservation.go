package reservation

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"restaurant/internal/entities"
)

const (
	serviceChargePercent = 5
	depositPercent       = 50
	createAttempts       = 3
)

var buffetPackages = []entities.BuffetPackage{
	{
		Type:          entities.PackageStandard,
		Name:          "Standard Buffet",
		PricePerGuest: 8000,
		Description:   "Full access to the main buffet spread",
	},
	{
		Type:          entities.PackagePremium,
		Name:          "Premium Buffet",
		PricePerGuest: 12000,
		Description:   "Main spread plus grills and seafood stations",
	},
	{
		Type:          entities.PackageVIP,
		Name:          "VIP Buffet",
		PricePerGuest: 18000,
		Description:   "Private section, dedicated service and the full menu",
	},
}

type Reservation struct {
	repository Repository
	payments   PaymentGateway
}

func New(repository Repository, payments PaymentGateway) *Reservation {
	return &Reservation{
		repository: repository,
		payments:   payments,
	}
}

func (s *Reservation) Packages() []entities.BuffetPackage {
	packages := make([]entities.BuffetPackage, len(buffetPackages))
	copy(packages, buffetPackages)
	return packages
}

// Book prices the request from the package table, verifies the deposit
// payment and persists the reservation.
func (s *Reservation) Book(ctx context.Context, booking entities.BuffetBooking) (*entities.Reservation, error) {
	if !isValidName(booking.CustomerName) || booking.Phone == "" || booking.PaymentRef == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidGuests(booking.Guests) {
		return nil, ErrInvalidGuests
	}
	if !isValidDate(booking.Date, time.Now()) {
		return nil, ErrInvalidDate
	}

	pkg, ok := findPackage(booking.PackageType)
	if !ok {
		return nil, ErrInvalidPackage
	}

	subtotal := pkg.PricePerGuest * int64(booking.Guests)
	serviceCharge := subtotal * serviceChargePercent / 100
	total := subtotal + serviceCharge
	deposit := total * depositPercent / 100

	verification, err := s.payments.VerifyTransaction(ctx, booking.PaymentRef)
	if err != nil {
		return nil, fmt.Errorf("verify deposit: %w", errors.Join(ErrDepositNotVerified, err))
	}
	if !verification.Succeeded() {
		return nil, ErrDepositNotVerified
	}
	// provider reports kobo
	if verification.Amount != deposit*100 {
		return nil, ErrAmountMismatch
	}

	reservation := entities.Reservation{
		PackageType:   booking.PackageType,
		CustomerName:  booking.CustomerName,
		Phone:         booking.Phone,
		Email:         booking.Email,
		Date:          booking.Date,
		Guests:        booking.Guests,
		Occasion:      booking.Occasion,
		Requests:      booking.Requests,
		Subtotal:      subtotal,
		ServiceCharge: serviceCharge,
		Total:         total,
		Deposit:       deposit,
		Status:        entities.ReservationConfirmed,
		PaymentRef:    booking.PaymentRef,
		CreatedAt:     time.Now().UTC(),
	}

	for attempt := 0; attempt < createAttempts; attempt++ {
		reservation.ID = newReservationID()

		err = s.repository.Create(ctx, reservation)
		if err == nil {
			break
		}
		if !errors.Is(err, ErrConflict) {
			return nil, fmt.Errorf("create reservation: %w", err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	return &reservation, nil
}

func (s *Reservation) GetReservation(ctx context.Context, id string) (*entities.Reservation, error) {
	reservation, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return reservation, nil
}

func (s *Reservation) GetReservations(ctx context.Context) ([]entities.Reservation, error) {
	reservations, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}

	return reservations, nil
}

func findPackage(packageType entities.BuffetPackageType) (entities.BuffetPackage, bool) {
	for _, pkg := range buffetPackages {
		if pkg.Type == packageType {
			return pkg, true
		}
	}
	return entities.BuffetPackage{}, false
}

func newReservationID() string {
	return fmt.Sprintf("BF%06d", rand.IntN(1000000))
}
