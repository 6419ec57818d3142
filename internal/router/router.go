package router

import (
	"net/http"
	"strings"

	"shopkart/internal/handler"
	"shopkart/internal/middleware"
	"shopkart/internal/service"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	authHandler *handler.AuthHandler,
	paymentHandler *handler.PaymentHandler,
	userHandler *handler.UserHandler,
	userService service.UserService,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product routes: listing and detail are public; catalog writes are
	// admin only.
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		isCollection := r.URL.Path == "/api/products" || r.URL.Path == "/api/products/"

		switch {
		case r.Method == http.MethodGet && isCollection:
			productHandler.GetAll(w, r)
		case r.Method == http.MethodGet:
			productHandler.GetByID(w, r)
		case r.Method == http.MethodPost && isCollection:
			middleware.RequireAdmin(productHandler.Create)(w, r)
		case r.Method == http.MethodPut && !isCollection:
			middleware.RequireAdmin(productHandler.Update)(w, r)
		case r.Method == http.MethodDelete && !isCollection:
			middleware.RequireAdmin(productHandler.Delete)(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart routes all act on the caller's own cart.
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch strings.TrimSuffix(r.URL.Path, "/") {
		case "/api/cart":
			middleware.RequireUser(cartHandler.Get)(w, r)
		case "/api/cart/add":
			middleware.RequireUser(cartHandler.Add)(w, r)
		case "/api/cart/update":
			middleware.RequireUser(cartHandler.Update)(w, r)
		case "/api/cart/remove":
			middleware.RequireUser(cartHandler.Remove)(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/cart", cartRouteHandler)
	mux.HandleFunc("/api/cart/", cartRouteHandler)

	// Order routes. Fixed segments are matched before the {id} routes so
	// that /api/orders/my is never parsed as an order ID.
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		switch {
		case path == "/api/orders/place":
			middleware.RequireUser(orderHandler.Place)(w, r)
		case path == "/api/orders/my":
			middleware.RequireUser(orderHandler.ListMine)(w, r)
		case path == "/api/orders/all":
			middleware.RequireAdmin(orderHandler.ListAll)(w, r)
		case strings.HasSuffix(path, "/status"):
			middleware.RequireAdmin(orderHandler.UpdateStatus)(w, r)
		case strings.HasSuffix(path, "/cancel"):
			middleware.RequireUser(orderHandler.Cancel)(w, r)
		case r.Method == http.MethodDelete && strings.HasPrefix(path, "/api/orders/"):
			middleware.RequireUser(orderHandler.Delete)(w, r)
		case r.Method == http.MethodGet && strings.HasPrefix(path, "/api/orders/") && path != "/api/orders":
			middleware.RequireUser(orderHandler.GetByID)(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Auth routes
	authRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch strings.TrimSuffix(r.URL.Path, "/") {
		case "/api/auth/register":
			authHandler.Register(w, r)
		case "/api/auth/login":
			authHandler.Login(w, r)
		case "/api/auth/admin/login":
			authHandler.AdminLogin(w, r)
		case "/api/auth/profile":
			middleware.RequireUser(authHandler.UpdateProfile)(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/auth/", authRouteHandler)

	// Payment routes
	paymentRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch strings.TrimSuffix(r.URL.Path, "/") {
		case "/api/payment/order":
			middleware.RequireUser(paymentHandler.CreateOrder)(w, r)
		case "/api/payment/verify":
			middleware.RequireUser(paymentHandler.Verify)(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/payment/", paymentRouteHandler)

	// Admin user management routes
	userRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		switch {
		case path == "/api/admin/users":
			middleware.RequireAdmin(userHandler.List)(w, r)
		case strings.HasPrefix(path, "/api/admin/users/"):
			switch r.Method {
			case http.MethodPut:
				middleware.RequireAdmin(userHandler.Update)(w, r)
			case http.MethodDelete:
				middleware.RequireAdmin(userHandler.Delete)(w, r)
			default:
				http.Error(w, "not found", http.StatusNotFound)
			}
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/admin/users", userRouteHandler)
	mux.HandleFunc("/api/admin/users/", userRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth -> Identity
	var h http.Handler = mux
	h = middleware.Identity(userService, logger)(h)
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
