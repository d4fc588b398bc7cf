package cartrowshandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"labshop/internal/handlers/respond"
	"labshop/internal/models"
	serviceerrors "labshop/internal/service"
	"labshop/pkg/lib/logger/sl"

	"github.com/go-playground/validator/v10"
)

// MissingProductIDMessage is returned, wrapped in a one element array, when
// an insert has no product id. Clients match on this exact shape.
const MissingProductIDMessage = "Missing required product ID"

type CartRowService interface {
	ViewCart(ctx context.Context) ([]models.CartRow, error)
	AddToCart(ctx context.Context, row models.NewCartRow) ([]models.CartRow, error)
}

type Handler struct {
	log      *slog.Logger
	service  CartRowService
	validate *validator.Validate
}

func New(log *slog.Logger, service CartRowService) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// GET /cart
func (h *Handler) ViewCart(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cartrows.ViewCart"
	log := h.log.With("op", op)

	rows, err := h.service.ViewCart(r.Context())
	if err != nil {
		respond.ServiceError(w, log, err, "Failed to get cart")
		return
	}

	respond.JSON(w, log, http.StatusOK, rows)
}

// POST /cart
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cartrows.AddToCart"
	log := h.log.With("op", op)

	defer r.Body.Close()

	var req models.AddCartRowRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, respond.MaxBodyBytes)).Decode(&req); err != nil {
		log.Error("Cannot decode request body", sl.Err(err))
		http.Error(w, "Cannot decode request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Warn("Failed to validate", sl.Err(err))
		missingProductID(w, log)
		return
	}

	rows, err := h.service.AddToCart(r.Context(), req.ToRow())
	if err != nil {
		if errors.Is(err, serviceerrors.ErrMissingProductID) {
			missingProductID(w, log)
			return
		}
		respond.ServiceError(w, log, err, "Failed to add item to cart")
		return
	}

	respond.JSON(w, log, http.StatusCreated, rows)
}

func missingProductID(w http.ResponseWriter, log *slog.Logger) {
	respond.JSON(w, log, http.StatusBadRequest, []models.ErrorBody{
		{Error: MissingProductIDMessage},
	})
}
