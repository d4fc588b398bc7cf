package cartservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	databaseerrors "labshop/internal/database"
	"labshop/internal/models"
	serviceerrors "labshop/internal/service"
	"labshop/pkg/lib/logger/sl"
)

type ItemStorage interface {
	ViewCart(ctx context.Context) ([]models.CartItem, error)
	AddToCart(ctx context.Context, item models.CartItem) ([]models.CartItem, error)
}

type RowStorage interface {
	ViewCart(ctx context.Context) ([]models.CartRow, error)
	AddToCart(ctx context.Context, row models.NewCartRow) ([]models.CartRow, error)
}

// ItemService serves the in-memory cart of raw JSON items.
type ItemService struct {
	log     *slog.Logger
	storage ItemStorage
}

func NewItemService(log *slog.Logger, storage ItemStorage) *ItemService {
	return &ItemService{
		log:     log,
		storage: storage,
	}
}

func (c *ItemService) ViewCart(ctx context.Context) ([]models.CartItem, error) {
	const op = "service.cart.ItemService.ViewCart"
	log := c.log.With("op", op)

	if err := checkContext(ctx, log); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := c.storage.ViewCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(log, "Failed to get items from cart", err))
	}

	return items, nil
}

func (c *ItemService) AddToCart(ctx context.Context, item models.CartItem) ([]models.CartItem, error) {
	const op = "service.cart.ItemService.AddToCart"
	log := c.log.With("op", op)

	if err := checkContext(ctx, log); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := c.storage.AddToCart(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(log, "Failed to add item to cart", err))
	}

	return items, nil
}

// RowService serves the database backed cart.
type RowService struct {
	log     *slog.Logger
	storage RowStorage
}

func NewRowService(log *slog.Logger, storage RowStorage) *RowService {
	return &RowService{
		log:     log,
		storage: storage,
	}
}

func (c *RowService) ViewCart(ctx context.Context) ([]models.CartRow, error) {
	const op = "service.cart.RowService.ViewCart"
	log := c.log.With("op", op)

	if err := checkContext(ctx, log); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := c.storage.ViewCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(log, "Failed to get rows from cart", err))
	}

	return rows, nil
}

// AddToCart rejects rows without a product id before touching storage.
func (c *RowService) AddToCart(ctx context.Context, row models.NewCartRow) ([]models.CartRow, error) {
	const op = "service.cart.RowService.AddToCart"
	log := c.log.With("op", op)

	if row.ProductId == 0 {
		log.Warn("product id is missing", sl.Err(serviceerrors.ErrMissingProductID))
		return nil, fmt.Errorf("%s: %w", op, serviceerrors.ErrMissingProductID)
	}

	if err := checkContext(ctx, log); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := c.storage.AddToCart(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(log, "Failed to add row to cart", err))
	}

	return rows, nil
}

func checkContext(ctx context.Context, log *slog.Logger) error {
	select {
	case <-ctx.Done():
		err := ctx.Err()
		if mapped := serviceerrors.FromContext(err); mapped != nil {
			log.Warn(mapped.Error(), sl.Err(err))
			return mapped
		}
		log.Error("unexpected error", sl.Err(err))
		return err
	default:
		return nil
	}
}

// classify logs a storage error and converts it into the error the
// handlers switch on.
func classify(log *slog.Logger, msg string, err error) error {
	if mapped := serviceerrors.FromContext(err); mapped != nil {
		log.Warn(mapped.Error(), sl.Err(err))
		return mapped
	}

	if errors.Is(err, databaseerrors.ErrConnection) {
		log.Error("Storage unavailable", sl.Err(err))
		return fmt.Errorf("%w: %w", serviceerrors.ErrStorageUnavailable, err)
	}

	log.Error(msg, sl.Err(err))
	return err
}
