package server

import (
	"net/http"

	"dalarosa-be/internal/handler"
	"dalarosa-be/internal/logger"
	"dalarosa-be/internal/middleware"
)

type Options struct {
	CORSOrigin string
	Limiter    *middleware.RateLimiter
	// AdminGate wraps every /admin route.
	AdminGate func(http.Handler) http.Handler
}

// NewRouter registers the storefront routes. /offers and /butchery are
// linked from the navigation but not registered, so they answer 404.
func NewRouter(h *handler.Handler, opts Options) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health)

	// storefront
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /products", h.ListProducts)
	mux.HandleFunc("GET /about", h.About)
	mux.HandleFunc("GET /contact", h.Contact)
	mux.HandleFunc("POST /contact", h.SendContact)

	// cart
	mux.HandleFunc("GET /cart", h.GetCart)
	mux.HandleFunc("DELETE /cart", h.ClearCart)
	mux.HandleFunc("POST /cart/items", h.AddCartItem)
	mux.HandleFunc("PATCH /cart/items/{id}", h.UpdateCartItem)
	mux.HandleFunc("DELETE /cart/items/{id}", h.RemoveCartItem)
	mux.HandleFunc("POST /cart/checkout", h.Checkout)

	// session
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("POST /logout", h.Logout)

	// admin
	gate := opts.AdminGate
	admin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, gate(fn))
	}
	admin("GET /admin", h.AdminHome)
	admin("GET /admin/metrics", h.AdminMetrics)
	admin("GET /admin/products", h.AdminListProducts)
	admin("POST /admin/products", h.AdminCreateProduct)
	admin("PUT /admin/products/{id}", h.AdminUpdateProduct)
	admin("DELETE /admin/products/{id}", h.AdminDeleteProduct)
	admin("GET /admin/orders", h.AdminListOrders)
	admin("PATCH /admin/orders/{id}/status", h.AdminUpdateOrderStatus)
	admin("DELETE /admin/orders/{id}", h.AdminDeleteOrder)

	// each wrap is outside the previous one
	var root http.Handler = mux
	if opts.Limiter != nil {
		root = opts.Limiter.Middleware(root)
	}
	root = middleware.CORS(opts.CORSOrigin)(root)
	root = logger.LoggingMiddleware(root)
	root = middleware.Recover(root)
	root = logger.RequestIDMiddleware(root)
	return root
}
