package menu_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"restaurant/internal/dto"
	"restaurant/internal/entities"
	"restaurant/internal/service/menu"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var itemDTO dto.MenuItemUpdate
	err = json.NewDecoder(r.Body).Decode(&itemDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	itemModify := entities.MenuItemModify{
		ID:          &id,
		Name:        itemDTO.Name,
		Price:       itemDTO.Price,
		Description: itemDTO.Description,
		ImageURL:    itemDTO.ImageURL,
		Available:   itemDTO.Available,
		Spicy:       itemDTO.Spicy,
	}
	if itemDTO.Category != nil {
		category := entities.MenuCategory(*itemDTO.Category)
		itemModify.Category = &category
	}
	if itemDTO.Allergens != nil {
		itemModify.Allergens = &itemDTO.Allergens
	}

	res, err := h.service.UpdateItem(r.Context(), itemModify)
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrMissingRequiredFields),
			errors.Is(err, menu.ErrInvalidMenuItemID),
			errors.Is(err, menu.ErrInvalidName),
			errors.Is(err, menu.ErrInvalidCategory),
			errors.Is(err, menu.ErrInvalidPrice):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, menu.ErrMenuItemNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, menu.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromMenuItem(*res)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
