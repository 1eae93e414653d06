package reservation

import (
	"restaurant/internal/entities"
)

func ToDomain(r *ReservationDB) *entities.Reservation {
	if r == nil {
		return nil
	}

	return &entities.Reservation{
		ID:            r.ID,
		PackageType:   entities.BuffetPackageType(r.PackageType),
		CustomerName:  r.CustomerName,
		Phone:         r.Phone,
		Email:         r.Email,
		Date:          r.Date,
		Guests:        int(r.Guests),
		Occasion:      r.Occasion,
		Requests:      r.Requests,
		Subtotal:      r.Subtotal,
		ServiceCharge: r.ServiceCharge,
		Total:         r.Total,
		Deposit:       r.Deposit,
		Status:        entities.ReservationStatus(r.Status),
		PaymentRef:    r.PaymentRef,
		CreatedAt:     r.CreatedAt,
	}
}

func FromDomain(res *entities.Reservation) *ReservationDB {
	if res == nil {
		return nil
	}

	return &ReservationDB{
		ID:            res.ID,
		PackageType:   res.PackageType.String(),
		CustomerName:  res.CustomerName,
		Phone:         res.Phone,
		Email:         res.Email,
		Date:          res.Date,
		Guests:        int32(res.Guests),
		Occasion:      res.Occasion,
		Requests:      res.Requests,
		Subtotal:      res.Subtotal,
		ServiceCharge: res.ServiceCharge,
		Total:         res.Total,
		Deposit:       res.Deposit,
		Status:        res.Status.String(),
		PaymentRef:    res.PaymentRef,
		CreatedAt:     res.CreatedAt,
	}
}

func ToDomainList(reservationsDB []ReservationDB) []entities.Reservation {
	if len(reservationsDB) == 0 {
		return []entities.Reservation{}
	}

	result := make([]entities.Reservation, len(reservationsDB))
	for i, reservationDB := range reservationsDB {
		result[i] = *ToDomain(&reservationDB)
	}
	return result
}
