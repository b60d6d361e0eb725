package handler

import (
	"errors"
	"net/http"

	"dalarosa-be/internal/admin"
	"dalarosa-be/internal/backend"
	"dalarosa-be/internal/cart"
	"dalarosa-be/internal/catalog"
	"dalarosa-be/internal/checkout"
	"dalarosa-be/internal/config"
	"dalarosa-be/internal/logger"
	"dalarosa-be/internal/order"
	"dalarosa-be/internal/product"
	"dalarosa-be/internal/user"
	"dalarosa-be/internal/utils"
	"dalarosa-be/internal/whatsapp"

	"go.uber.org/zap"
)

const remoteFailureMessage = "serviço indisponível, tente novamente"

type Deps struct {
	Catalog  catalog.Service
	Carts    *cart.Registry
	Checkout *checkout.Flow
	Admin    admin.Service
	Backend  backend.Backend
	Users    user.Service
	Composer *whatsapp.Composer
	Profile  *config.StoreProfile

	// SecureCookies marks session cookies Secure (production only).
	SecureCookies bool
}

type Handler struct {
	catalog  catalog.Service
	carts    *cart.Registry
	checkout *checkout.Flow
	admin    admin.Service
	backend  backend.Backend
	users    user.Service
	composer *whatsapp.Composer
	profile  *config.StoreProfile
	secure   bool
}

func New(d Deps) *Handler {
	return &Handler{
		catalog:  d.Catalog,
		carts:    d.Carts,
		checkout: d.Checkout,
		admin:    d.Admin,
		backend:  d.Backend,
		users:    d.Users,
		composer: d.Composer,
		profile:  d.Profile,
		secure:   d.SecureCookies,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, checkout.ErrInvalidForm):
		return http.StatusUnprocessableEntity
	case errors.Is(err, utils.ErrInvalidBody),
		errors.Is(err, product.ErrInvalidProduct),
		errors.Is(err, order.ErrInvalidOrder),
		errors.Is(err, cart.ErrMissingProductID),
		errors.Is(err, admin.ErrMissingID),
		errors.Is(err, admin.ErrInvalidID),
		catalog.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, admin.ErrConfirmationRequired):
		return http.StatusPreconditionRequired
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, cart.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, cart.ErrOutOfStock):
		return http.StatusConflict
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, backend.ErrRemote),
		errors.Is(err, checkout.ErrSubmitFailed):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// writeError maps err onto a status code. Remote and unexpected failures
// get a generic message; the cause only goes to the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	log := logger.FromCtx(r.Context()).With(
		zap.String("layer", "handler"),
		zap.String("path", r.URL.Path),
		zap.Int("status", code),
	)

	switch code {
	case http.StatusBadGateway:
		log.Error("remote call failed", zap.Error(err))
		utils.WriteJSONError(w, remoteFailureMessage, code)
	case http.StatusInternalServerError:
		log.Error("unexpected error", zap.Error(err))
		utils.WriteJSONError(w, "internal server error", code)
	default:
		log.Info("request rejected", zap.Error(err))
		utils.WriteJSONError(w, err.Error(), code)
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
