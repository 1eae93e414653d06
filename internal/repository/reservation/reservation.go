package reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"restaurant/internal/entities"
	"restaurant/internal/repository"
	"restaurant/internal/service/reservation"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, reservationEntity entities.Reservation) error {
	reservationDB := FromDomain(&reservationEntity)

	query := `INSERT INTO reservations (id, package_type, customer_name, phone, email, date, guests,
			occasion, requests, subtotal, service_charge, total, deposit, status, payment_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.querier.Exec(
		ctx,
		query,
		reservationDB.ID,
		reservationDB.PackageType,
		reservationDB.CustomerName,
		reservationDB.Phone,
		reservationDB.Email,
		reservationDB.Date,
		reservationDB.Guests,
		reservationDB.Occasion,
		reservationDB.Requests,
		reservationDB.Subtotal,
		reservationDB.ServiceCharge,
		reservationDB.Total,
		reservationDB.Deposit,
		reservationDB.Status,
		reservationDB.PaymentRef,
		reservationDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return reservation.ErrConflict
		}
		return fmt.Errorf("unexpected reservation repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Reservation, error) {
	query := `SELECT id, package_type, customer_name, phone, email, date, guests,
			occasion, requests, subtotal, service_charge, total, deposit, status, payment_ref, created_at
		FROM reservations
		WHERE id = $1`

	var reservationDB ReservationDB
	err := r.querier.QueryRow(ctx, query, strings.ToUpper(id)).
		Scan(
			&reservationDB.ID,
			&reservationDB.PackageType,
			&reservationDB.CustomerName,
			&reservationDB.Phone,
			&reservationDB.Email,
			&reservationDB.Date,
			&reservationDB.Guests,
			&reservationDB.Occasion,
			&reservationDB.Requests,
			&reservationDB.Subtotal,
			&reservationDB.ServiceCharge,
			&reservationDB.Total,
			&reservationDB.Deposit,
			&reservationDB.Status,
			&reservationDB.PaymentRef,
			&reservationDB.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, reservation.ErrReservationNotFound
		}

		return nil, fmt.Errorf("unexpected reservation repository getbyid error: %w", err)
	}

	return ToDomain(&reservationDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Reservation, error) {
	query := `
	SELECT id, package_type, customer_name, phone, email, date, guests,
		occasion, requests, subtotal, service_charge, total, deposit, status, payment_ref, created_at
	FROM reservations
	ORDER BY date, created_at`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected reservation repository getall error: %w", err)
	}
	defer rows.Close()

	reservationModels := make([]ReservationDB, 0, 8)
	for rows.Next() {
		var reservationDB ReservationDB
		err := rows.Scan(
			&reservationDB.ID,
			&reservationDB.PackageType,
			&reservationDB.CustomerName,
			&reservationDB.Phone,
			&reservationDB.Email,
			&reservationDB.Date,
			&reservationDB.Guests,
			&reservationDB.Occasion,
			&reservationDB.Requests,
			&reservationDB.Subtotal,
			&reservationDB.ServiceCharge,
			&reservationDB.Total,
			&reservationDB.Deposit,
			&reservationDB.Status,
			&reservationDB.PaymentRef,
			&reservationDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected reservation repository getall error: %w", err)
		}
		reservationModels = append(reservationModels, reservationDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected reservation repository getall error: %w", err)
	}

	return ToDomainList(reservationModels), nil
}
