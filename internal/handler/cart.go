package handler

import (
	"net/http"
	"strings"

	"dalarosa-be/internal/cart"
	"dalarosa-be/internal/logger"
	"dalarosa-be/internal/product"
	"dalarosa-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const CartCookie = "cart_session"

// cartFor returns the shopper's cart, issuing a cart cookie on first visit,
// and a request whose context carries the cart id for logging.
func (h *Handler) cartFor(w http.ResponseWriter, r *http.Request) (*cart.Store, *http.Request) {
	var sessionID string
	if c, err := r.Cookie(CartCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			sessionID = c.Value
		}
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     CartCookie,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
			Secure:   h.secure,
			SameSite: http.SameSiteLaxMode,
		})
	}

	r = r.WithContext(logger.WithCartID(r.Context(), sessionID))
	return h.carts.Get(sessionID), r
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	store, _ := h.cartFor(w, r)
	utils.WriteJSON(w, http.StatusOK, store.Summary())
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	// Quantity is accepted for compatibility; a new line always starts at 1.
	Quantity int `json:"quantity,omitempty"`
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	store, r := h.cartFor(w, r)
	ctx := r.Context()

	var req addItemRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	id := strings.TrimSpace(req.ProductID)
	if _, err := uuid.Parse(id); err != nil {
		// malformed ids never reach the database; the store logs and drops them
		writeError(w, r, store.Add(ctx, cart.LineItem{Name: id}))
		return
	}

	found, err := h.backend.FetchProducts(ctx, product.Filter{ID: id})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(found) == 0 {
		writeError(w, r, cart.ErrProductNotFound)
		return
	}
	p := found[0]
	if !p.InStock() {
		writeError(w, r, cart.ErrOutOfStock)
		return
	}

	if err := store.Add(ctx, cart.FromProduct(p)); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromCtx(ctx).Debug("cart item added",
		zap.String("layer", "handler"),
		zap.String("product_id", p.ID),
	)
	utils.WriteJSON(w, http.StatusOK, store.Summary())
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets a line's quantity; zero or less removes the line.
func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	store, r := h.cartFor(w, r)

	var req updateQuantityRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	store.UpdateQuantity(r.PathValue("id"), req.Quantity)
	utils.WriteJSON(w, http.StatusOK, store.Summary())
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	store, _ := h.cartFor(w, r)
	store.Remove(r.PathValue("id"))
	utils.WriteJSON(w, http.StatusOK, store.Summary())
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	store, _ := h.cartFor(w, r)
	store.Clear()
	utils.WriteJSON(w, http.StatusOK, store.Summary())
}
