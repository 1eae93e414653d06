package buffet_packages_get

import (
	"encoding/json"
	"net/http"

	"restaurant/internal/dto"
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
	packages := h.service.Packages()

	response := make([]dto.BuffetPackage, len(packages))
	for i, pkg := range packages {
		response[i] = dto.BuffetPackage{
			Type:          pkg.Type.String(),
			Name:          pkg.Name,
			PricePerGuest: pkg.PricePerGuest,
			Description:   pkg.Description,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
