package carthandler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"labshop/internal/handlers/respond"
	"labshop/internal/models"
	"labshop/pkg/lib/logger/sl"
)

type CartItemService interface {
	ViewCart(ctx context.Context) ([]models.CartItem, error)
	AddToCart(ctx context.Context, item models.CartItem) ([]models.CartItem, error)
}

// Handler serves the in-memory cart. Items are opaque JSON values.
type Handler struct {
	log     *slog.Logger
	service CartItemService
}

func New(log *slog.Logger, service CartItemService) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// GET /cart
func (h *Handler) ViewCart(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.ViewCart"
	log := h.log.With("op", op)

	items, err := h.service.ViewCart(r.Context())
	if err != nil {
		respond.ServiceError(w, log, err, "Failed to get cart")
		return
	}

	respond.JSON(w, log, http.StatusOK, items)
}

// POST /cart
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.AddToCart"
	log := h.log.With("op", op)

	requestBody, err := io.ReadAll(http.MaxBytesReader(w, r.Body, respond.MaxBodyBytes))
	if err != nil {
		log.Error("Cannot read request body", sl.Err(err))
		http.Error(w, "Cannot read request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var item bytes.Buffer
	if err := json.Compact(&item, requestBody); err != nil {
		log.Error("Cannot decode request body", sl.Err(err))
		http.Error(w, "Cannot decode request body", http.StatusBadRequest)
		return
	}

	items, err := h.service.AddToCart(r.Context(), models.CartItem(item.Bytes()))
	if err != nil {
		respond.ServiceError(w, log, err, "Failed to add item to cart")
		return
	}

	respond.JSON(w, log, http.StatusOK, items)
}
