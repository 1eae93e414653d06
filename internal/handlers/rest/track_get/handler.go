package track_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"restaurant/internal/dto"
	"restaurant/internal/service/order"
	"restaurant/internal/service/tracking"
	"restaurant/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	found, err := h.service.Resolve(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrEmptyQuery),
			errors.Is(err, tracking.ErrInvalidQuery):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, tracking.ErrStorageUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TrackResponse{
		Order:              dto.FromOrder(*found),
		Timeline:           dto.FromTimeline(tracking.Timeline(found.Status, found.FulfillmentType)),
		Estimate:           tracking.Estimate(*found, time.Now()),
		PollIntervalSecond: int(h.service.PollInterval() / time.Second),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
