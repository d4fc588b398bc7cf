package catalogueservice

import (
	"context"
	"fmt"
	"log/slog"

	"labshop/internal/models"
	serviceerrors "labshop/internal/service"
	"labshop/pkg/lib/logger/sl"

	"github.com/shopspring/decimal"
)

var products = []models.Product{
	{Id: 1, Name: "Product 1", Price: decimal.RequireFromString("10.99")},
	{Id: 2, Name: "Product 2", Price: decimal.RequireFromString("12.99")},
}

// Service exposes the fixed product list.
type Service struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Service {
	return &Service{
		log: log,
	}
}

func (s *Service) Products(ctx context.Context) ([]models.Product, error) {
	const op = "service.catalogue.Products"

	if err := ctx.Err(); err != nil {
		mapped := serviceerrors.FromContext(err)
		s.log.With("op", op).Warn(mapped.Error(), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, mapped)
	}

	out := make([]models.Product, len(products))
	copy(out, products)

	return out, nil
}
