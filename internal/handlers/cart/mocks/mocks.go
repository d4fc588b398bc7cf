package mocks

import (
	"labshop/internal/models"

	"context"

	"github.com/stretchr/testify/mock"
)

type Service struct {
	mock.Mock
}

func (m *Service) ViewCart(ctx context.Context) ([]models.CartItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]models.CartItem)
	return items, args.Error(1)
}
func (m *Service) AddToCart(ctx context.Context, item models.CartItem) ([]models.CartItem, error) {
	args := m.Called(ctx, item)
	items, _ := args.Get(0).([]models.CartItem)
	return items, args.Error(1)
}
