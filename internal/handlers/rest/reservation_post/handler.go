package reservation_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"restaurant/internal/dto"
	"restaurant/internal/entities"
	"restaurant/internal/service/reservation"
	"restaurant/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	composer MessageComposer
}

func New(log handlerLogger, service Service, composer MessageComposer) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		composer: composer,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.ReservationRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	date, err := time.ParseInLocation("2006-01-02", request.Date, time.Local)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	booking := entities.BuffetBooking{
		PackageType:  entities.BuffetPackageType(request.PackageType),
		CustomerName: request.CustomerName,
		Phone:        request.Phone,
		Email:        request.Email,
		Date:         date,
		Guests:       request.Guests,
		Occasion:     request.Occasion,
		Requests:     request.Requests,
		PaymentRef:   request.PaymentRef,
	}

	booked, err := h.service.Book(r.Context(), booking)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrMissingRequiredFields),
			errors.Is(err, reservation.ErrInvalidGuests),
			errors.Is(err, reservation.ErrInvalidDate),
			errors.Is(err, reservation.ErrInvalidPackage):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, reservation.ErrDepositNotVerified),
			errors.Is(err, reservation.ErrAmountMismatch):
			w.WriteHeader(http.StatusPaymentRequired)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ReservationResponse{
		Reservation:  dto.FromReservation(*booked),
		WhatsAppLink: h.composer.Link(h.composer.ReservationConfirmation(*booked)),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
