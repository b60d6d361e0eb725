package handler

import (
	"net/http"
	"strconv"

	"dalarosa-be/internal/order"
	"dalarosa-be/internal/product"
	"dalarosa-be/internal/utils"
)

// confirmed reads the confirm query flag required by deletes.
func confirmed(r *http.Request) bool {
	ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return ok
}

type adminProductsResponse struct {
	Products   []product.Product  `json:"products"`
	Categories []product.Category `json:"categories"`
	Units      []product.Unit     `json:"units"`
}

func (h *Handler) writeProducts(w http.ResponseWriter, code int, products []product.Product) {
	utils.WriteJSON(w, code, adminProductsResponse{
		Products:   products,
		Categories: product.Categories,
		Units:      product.Units,
	})
}

func (h *Handler) AdminListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.admin.ListProducts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeProducts(w, http.StatusOK, products)
}

func (h *Handler) AdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	var form product.Form
	if err := utils.DecodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	products, err := h.admin.CreateProduct(r.Context(), form)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeProducts(w, http.StatusCreated, products)
}

func (h *Handler) AdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var form product.Form
	if err := utils.DecodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	products, err := h.admin.UpdateProduct(r.Context(), r.PathValue("id"), form)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeProducts(w, http.StatusOK, products)
}

func (h *Handler) AdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	products, err := h.admin.DeleteProduct(r.Context(), r.PathValue("id"), confirmed(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeProducts(w, http.StatusOK, products)
}

type adminOrdersResponse struct {
	Orders   []order.Order  `json:"orders"`
	Statuses []order.Status `json:"statuses"`
}

func (h *Handler) writeOrders(w http.ResponseWriter, orders []order.Order) {
	utils.WriteJSON(w, http.StatusOK, adminOrdersResponse{Orders: orders, Statuses: order.Statuses})
}

func (h *Handler) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.admin.ListOrders(r.Context(), order.Status(r.URL.Query().Get("status")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeOrders(w, orders)
}

type statusRequest struct {
	Status order.Status `json:"status"`
}

func (h *Handler) AdminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	orders, err := h.admin.UpdateOrderStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeOrders(w, orders)
}

func (h *Handler) AdminDeleteOrder(w http.ResponseWriter, r *http.Request) {
	orders, err := h.admin.DeleteOrder(r.Context(), r.PathValue("id"), confirmed(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeOrders(w, orders)
}

func (h *Handler) AdminMetrics(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]any{"checkout": h.checkout.Metrics()})
}
