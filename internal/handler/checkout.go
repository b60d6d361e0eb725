package handler

import (
	"errors"
	"net/http"

	"dalarosa-be/internal/checkout"
	"dalarosa-be/internal/utils"
)

type checkoutErrorResponse struct {
	Error   string            `json:"error"`
	Attempt *checkout.Attempt `json:"attempt"`
}

// Checkout submits the cart as an order and returns the WhatsApp hand-off.
// Validation failures answer 422 with the attempt so the client stays on the
// form with its input intact.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	store, r := h.cartFor(w, r)

	var form checkout.Form
	if err := utils.DecodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	attempt, err := h.checkout.Submit(r.Context(), store, form)
	if err != nil {
		if errors.Is(err, checkout.ErrInvalidForm) {
			utils.WriteJSON(w, http.StatusUnprocessableEntity, checkoutErrorResponse{Error: err.Error(), Attempt: attempt})
			return
		}
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, attempt)
}
