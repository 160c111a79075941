package rest

import (
	"net/http"

	"ecommerce-backend/application/services"
	"ecommerce-backend/interfaces/http/rest/handlers"
	"ecommerce-backend/interfaces/http/rest/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	orders   *services.OrderService
	products *services.ProductService
	logger   *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	orders *services.OrderService,
	products *services.ProductService,
	logger *zap.Logger,
) *Router {
	return &Router{
		orders:   orders,
		products: products,
		logger:   logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// Order endpoints
	router.Route("/orders", func(r chi.Router) {
		orderHandler := handlers.NewOrderHandler(rt.orders, rt.logger)
		r.Get("/", orderHandler.ListOrders)
		r.Post("/", orderHandler.CreateOrder)
		r.Get("/{orderID}", orderHandler.GetOrder)
		r.Put("/{orderID}", orderHandler.UpdateOrder)
		r.Delete("/{orderID}", orderHandler.DeleteOrder)
	})

	// Product endpoints
	router.Route("/products", func(r chi.Router) {
		productHandler := handlers.NewProductHandler(rt.products, rt.logger)
		r.Get("/", productHandler.ListProducts)
		r.Post("/", productHandler.CreateProduct)
		r.Get("/{productID}", productHandler.GetProduct)
		r.Put("/{productID}", productHandler.UpdateProduct)
		r.Delete("/{productID}", productHandler.DeleteProduct)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
