package routes

import (
	"log/slog"
	"net/http"

	cataloguehandler "labshop/internal/handlers/catalogue"
	"labshop/internal/handlers/health"
	mwLogger "labshop/internal/http-server/middleware/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// CartHandler is implemented by both cart variants.
type CartHandler interface {
	ViewCart(w http.ResponseWriter, r *http.Request)
	AddToCart(w http.ResponseWriter, r *http.Request)
}

type Routes struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Routes {
	return &Routes{
		log: log,
	}
}

// Catalogue builds the router of the catalogue service.
func (r *Routes) Catalogue(h *cataloguehandler.Handler) http.Handler {
	router := r.base()

	// GET /products
	router.Get("/products", h.Products)

	return router
}

// Cart builds the router of the cart service.
func (r *Routes) Cart(h CartHandler) http.Handler {
	router := r.base()

	// GET /cart
	router.Get("/cart", h.ViewCart)
	// POST /cart
	router.Post("/cart", h.AddToCart)

	return router
}

func (r *Routes) base() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwLogger.New(r.log))
	router.Use(middleware.Recoverer)
	// any origin, any route
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	router.Get("/health", health.Handler(r.log))

	return router
}
