package mocks

import (
	"labshop/internal/models"

	"context"

	"github.com/stretchr/testify/mock"
)

type ItemStorage struct {
	mock.Mock
}

func (m *ItemStorage) ViewCart(ctx context.Context) ([]models.CartItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]models.CartItem)
	return items, args.Error(1)
}
func (m *ItemStorage) AddToCart(ctx context.Context, item models.CartItem) ([]models.CartItem, error) {
	args := m.Called(ctx, item)
	items, _ := args.Get(0).([]models.CartItem)
	return items, args.Error(1)
}

type RowStorage struct {
	mock.Mock
}

func (m *RowStorage) ViewCart(ctx context.Context) ([]models.CartRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.CartRow)
	return rows, args.Error(1)
}
func (m *RowStorage) AddToCart(ctx context.Context, row models.NewCartRow) ([]models.CartRow, error) {
	args := m.Called(ctx, row)
	rows, _ := args.Get(0).([]models.CartRow)
	return rows, args.Error(1)
}
