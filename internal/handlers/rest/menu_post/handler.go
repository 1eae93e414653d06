package menu_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var itemDTO dto.MenuItemCreate
	err := json.NewDecoder(r.Body).Decode(&itemDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	category := entities.MenuCategory(itemDTO.Category)
	itemModify := entities.MenuItemModify{
		Name:        &itemDTO.Name,
		Category:    &category,
		Price:       &itemDTO.Price,
		Description: itemDTO.Description,
		ImageURL:    itemDTO.ImageURL,
		Available:   itemDTO.Available,
		Spicy:       itemDTO.Spicy,
	}
	if itemDTO.Allergens != nil {
		itemModify.Allergens = &itemDTO.Allergens
	}

	id, err := h.service.CreateItem(r.Context(), itemModify)
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrMissingRequiredFields),
			errors.Is(err, menu.ErrInvalidName),
			errors.Is(err, menu.ErrInvalidCategory),
			errors.Is(err, menu.ErrInvalidPrice):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, menu.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.MenuItemCreateResponse{
		ID: id,
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
