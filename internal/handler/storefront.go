package handler

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"dalarosa-be/internal/catalog"
	"dalarosa-be/internal/product"
	"dalarosa-be/internal/utils"
)

var (
	ErrContactNameRequired    = errors.New("nome é obrigatório")
	ErrContactMessageRequired = errors.New("mensagem é obrigatória")
)

type homeResponse struct {
	Store      string             `json:"store"`
	Featured   []product.Product  `json:"featured"`
	Categories []product.Category `json:"categories"`
	Navigation []NavLink          `json:"navigation"`
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	featured, err := h.catalog.Featured(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, homeResponse{
		Store:      h.profile.Name,
		Featured:   featured,
		Categories: h.catalog.Categories(),
		Navigation: Navigation(),
	})
}

// parseCatalogOptions reads category, on_sale, q, max_price and sort.
func parseCatalogOptions(r *http.Request) (catalog.Options, error) {
	q := r.URL.Query()

	category, err := catalog.ParseCategory(q.Get("category"))
	if err != nil {
		return catalog.Options{}, err
	}
	onSale, err := catalog.ParseOnSale(q.Get("on_sale"))
	if err != nil {
		return catalog.Options{}, err
	}
	maxPrice, err := catalog.ParseMaxPrice(q.Get("max_price"))
	if err != nil {
		return catalog.Options{}, err
	}
	sort, err := catalog.ParseSort(q.Get("sort"))
	if err != nil {
		return catalog.Options{}, err
	}

	return catalog.Options{
		Category:   category,
		OnSaleOnly: onSale,
		Query:      strings.TrimSpace(q.Get("q")),
		MaxPrice:   maxPrice,
		Sort:       sort,
	}, nil
}

type productsResponse struct {
	Products []product.Product `json:"products"`
	Count    int               `json:"count"`
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	opts, err := parseCatalogOptions(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	seq, err := h.catalog.List(r.Context(), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	products := slices.Collect(seq)
	if products == nil {
		products = []product.Product{}
	}
	utils.WriteJSON(w, http.StatusOK, productsResponse{Products: products, Count: len(products)})
}

func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.profile)
}

type contactResponse struct {
	Address       string `json:"address"`
	WhatsAppLabel string `json:"whatsapp_label"`
	WhatsAppURL   string `json:"whatsapp_url"`
}

func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, contactResponse{
		Address:       h.profile.Contact.Address,
		WhatsAppLabel: h.profile.Contact.WhatsAppLabel,
		WhatsAppURL:   "https://wa.me/" + h.composer.Number(),
	})
}

type contactRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type linkResponse struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// SendContact composes the contact-form message and returns the hand-off link.
func (h *Handler) SendContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	message := strings.TrimSpace(req.Message)
	switch {
	case name == "":
		utils.WriteJSONError(w, ErrContactNameRequired.Error(), http.StatusUnprocessableEntity)
		return
	case message == "":
		utils.WriteJSONError(w, ErrContactMessageRequired.Error(), http.StatusUnprocessableEntity)
		return
	}

	text := h.composer.ContactMessage(name, message)
	utils.WriteJSON(w, http.StatusOK, linkResponse{Message: text, WhatsAppURL: h.composer.Link(text)})
}
