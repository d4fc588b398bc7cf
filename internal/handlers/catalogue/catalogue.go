package cataloguehandler

import (
	"context"
	"log/slog"
	"net/http"

	"labshop/internal/handlers/respond"
	"labshop/internal/models"
)

type ProductService interface {
	Products(ctx context.Context) ([]models.Product, error)
}

type Handler struct {
	log     *slog.Logger
	service ProductService
}

func New(log *slog.Logger, service ProductService) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// GET /products
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalogue.Products"
	log := h.log.With("op", op)

	products, err := h.service.Products(r.Context())
	if err != nil {
		respond.ServiceError(w, log, err, "Failed to list products")
		return
	}

	respond.JSON(w, log, http.StatusOK, products)
}
