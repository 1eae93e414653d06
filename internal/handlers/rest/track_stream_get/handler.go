package track_stream_get

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"restaurant/internal/dto"
	"restaurant/internal/entities"
	"restaurant/internal/service/order"
	"restaurant/internal/service/tracking"
	"restaurant/pkg/logger"
)

// Handler streams order status changes over Server-Sent Events. It is the
// push alternative to polling the track endpoint: one snapshot event up
// front, then an update event per status change until the order reaches a
// terminal status or the client disconnects.
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
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

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

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	h.writeEvent(w, "snapshot", *found)
	flusher.Flush()

	if found.Status.IsTerminal() {
		return
	}

	changes := make(chan entities.Order, 4)
	watcher := h.service.NewWatcher()
	watcher.Start(r.Context(), found.ID, found.Status, func(changed entities.Order) {
		select {
		case changes <- changed:
		default:
			// a slow client drops this update for good; a reconnect
			// gets a fresh snapshot
		}
	})
	defer watcher.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case changed := <-changes:
			h.writeEvent(w, "update", changed)
			flusher.Flush()
		case <-watcher.Done():
			// drain anything the poll loop emitted right before exiting
			for {
				select {
				case changed := <-changes:
					h.writeEvent(w, "update", changed)
					flusher.Flush()
				default:
					return
				}
			}
		}
	}
}

func (h *Handler) writeEvent(w http.ResponseWriter, event string, changed entities.Order) {
	payload := dto.TrackResponse{
		Order:              dto.FromOrder(changed),
		Timeline:           dto.FromTimeline(tracking.Timeline(changed.Status, changed.FulfillmentType)),
		Estimate:           tracking.Estimate(changed, time.Now()),
		PollIntervalSecond: int(h.service.PollInterval() / time.Second),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("marshal SSE event")
		return
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write SSE event")
	}
}
