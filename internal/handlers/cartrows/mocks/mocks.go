package mocks

import (
	"labshop/internal/models"

	"context"

	"github.com/stretchr/testify/mock"
)

type Service struct {
	mock.Mock
}

func (m *Service) ViewCart(ctx context.Context) ([]models.CartRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.CartRow)
	return rows, args.Error(1)
}
func (m *Service) AddToCart(ctx context.Context, row models.NewCartRow) ([]models.CartRow, error) {
	args := m.Called(ctx, row)
	rows, _ := args.Get(0).([]models.CartRow)
	return rows, args.Error(1)
}
