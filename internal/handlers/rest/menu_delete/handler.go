package menu_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"restaurant/internal/service/menu"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.DeleteItem(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrInvalidMenuItemID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, menu.ErrMenuItemNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
