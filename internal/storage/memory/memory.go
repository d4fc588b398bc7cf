package memory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"labshop/internal/models"
	"labshop/pkg/lib/logger/sl"
)

// Storage keeps cart items in insertion order for the lifetime of the process.
type Storage struct {
	log *slog.Logger

	mu    sync.RWMutex
	items []models.CartItem
}

func New(log *slog.Logger) *Storage {
	return &Storage{
		log:   log,
		items: make([]models.CartItem, 0, 16),
	}
}

func (s *Storage) ViewCart(ctx context.Context) ([]models.CartItem, error) {
	const op = "storage.memory.ViewCart"

	if err := ctx.Err(); err != nil {
		s.log.With("op", op).Error("Context is over", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot(), nil
}

// AddToCart appends item and returns the cart as it is right after the
// append. Both happen under the same lock.
func (s *Storage) AddToCart(ctx context.Context, item models.CartItem) ([]models.CartItem, error) {
	const op = "storage.memory.AddToCart"

	if err := ctx.Err(); err != nil {
		s.log.With("op", op).Error("Context is over", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, slices.Clone(item))

	return s.snapshot(), nil
}

// snapshot must be called with mu held.
func (s *Storage) snapshot() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}
