package checkout_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"restaurant/internal/dto"
	"restaurant/internal/entities"
	"restaurant/internal/service/order"
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

type response struct {
	Order        dto.Order `json:"order"`
	WhatsAppLink string    `json:"whatsapp_link"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var checkoutDTO dto.CheckoutRequest
	err := json.NewDecoder(r.Body).Decode(&checkoutDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]entities.CartItem, len(checkoutDTO.Items))
	for i, item := range checkoutDTO.Items {
		items[i] = entities.CartItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
	}

	checkout := entities.Checkout{
		CustomerName:    checkoutDTO.CustomerName,
		Phone:           checkoutDTO.Phone,
		Email:           checkoutDTO.Email,
		FulfillmentType: entities.FulfillmentType(checkoutDTO.FulfillmentType),
		Address:         checkoutDTO.Address,
		Instructions:    checkoutDTO.Instructions,
		PaymentRef:      checkoutDTO.PaymentRef,
		Items:           items,
	}

	created, err := h.service.Checkout(r.Context(), checkout)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidPhone),
			errors.Is(err, order.ErrEmptyCart):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrItemUnavailable):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, order.ErrPaymentNotVerified),
			errors.Is(err, order.ErrAmountMismatch):
			w.WriteHeader(http.StatusPaymentRequired)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	message := h.composer.NewOrderMessage(*created)
	resp := response{
		Order:        dto.FromOrder(*created),
		WhatsAppLink: h.composer.Link(message),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
