package menu_get

import (
	"encoding/json"
	"net/http"
	"strings"

	"restaurant/internal/dto"
	"restaurant/internal/entities"
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
	items, err := h.service.GetMenu(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	category := query.Get("category")
	search := strings.ToLower(strings.TrimSpace(query.Get("q")))
	availableOnly := query.Get("available") == "true"

	response := make([]dto.MenuItem, 0, len(items))
	for _, item := range items {
		if !matches(item, category, search, availableOnly) {
			continue
		}
		response = append(response, dto.FromMenuItem(item))
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

func matches(item entities.MenuItem, category, search string, availableOnly bool) bool {
	if category != "" && item.Category.String() != category {
		return false
	}
	if availableOnly && !item.Available {
		return false
	}
	if search != "" &&
		!strings.Contains(strings.ToLower(item.Name), search) &&
		!strings.Contains(strings.ToLower(item.Description), search) {
		return false
	}
	return true
}
