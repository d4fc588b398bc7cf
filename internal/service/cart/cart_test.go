package cartservice_test

import (
	databaseerrors "labshop/internal/database"
	"labshop/internal/models"
	serviceerrors "labshop/internal/service"
	cartservice "labshop/internal/service/cart"
	"labshop/internal/service/cart/mocks"
	"labshop/pkg/lib/logger/slogdiscard"

	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newItemService(storage *mocks.ItemStorage) *cartservice.ItemService {
	return cartservice.NewItemService(slogdiscard.NewDiscardLogger(), storage)
}

func newRowService(storage *mocks.RowStorage) *cartservice.RowService {
	return cartservice.NewRowService(slogdiscard.NewDiscardLogger(), storage)
}

func canceledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func expiredContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*10)
	t.Cleanup(cancel)
	time.Sleep(time.Millisecond * 15)
	return ctx
}

func TestContextCanceled(t *testing.T) {
	t.Run("ItemService.ViewCart context canceled before call", func(t *testing.T) {
		mockStorage := new(mocks.ItemStorage)
		svc := newItemService(mockStorage)

		_, err := svc.ViewCart(canceledContext())
		assert.ErrorIs(t, err, serviceerrors.ErrContextCanceled)

		mockStorage.AssertExpectations(t)
	})

	t.Run("ItemService.AddToCart context canceled before call", func(t *testing.T) {
		mockStorage := new(mocks.ItemStorage)
		svc := newItemService(mockStorage)

		_, err := svc.AddToCart(canceledContext(), models.CartItem(`{}`))
		assert.ErrorIs(t, err, serviceerrors.ErrContextCanceled)

		mockStorage.AssertExpectations(t)
	})

	t.Run("RowService.ViewCart context canceled before call", func(t *testing.T) {
		mockStorage := new(mocks.RowStorage)
		svc := newRowService(mockStorage)

		_, err := svc.ViewCart(canceledContext())
		assert.ErrorIs(t, err, serviceerrors.ErrContextCanceled)

		mockStorage.AssertExpectations(t)
	})

	t.Run("RowService.AddToCart context canceled before call", func(t *testing.T) {
		mockStorage := new(mocks.RowStorage)
		svc := newRowService(mockStorage)

		_, err := svc.AddToCart(canceledContext(), models.NewCartRow{ProductId: 1})
		assert.ErrorIs(t, err, serviceerrors.ErrContextCanceled)

		mockStorage.AssertExpectations(t)
	})
}

func TestDeadlineExceeded(t *testing.T) {
	t.Run("ItemService.ViewCart context deadline exceeded", func(t *testing.T) {
		mockStorage := new(mocks.ItemStorage)
		svc := newItemService(mockStorage)

		_, err := svc.ViewCart(expiredContext(t))
		assert.ErrorIs(t, err, serviceerrors.ErrDeadlineExceeded)

		mockStorage.AssertExpectations(t)
	})

	t.Run("RowService.AddToCart context deadline exceeded", func(t *testing.T) {
		mockStorage := new(mocks.RowStorage)
		svc := newRowService(mockStorage)

		_, err := svc.AddToCart(expiredContext(t), models.NewCartRow{ProductId: 1})
		assert.ErrorIs(t, err, serviceerrors.ErrDeadlineExceeded)

		mockStorage.AssertExpectations(t)
	})
}

func TestItemService(t *testing.T) {
	item := models.CartItem(`{"id":1,"qty":2}`)

	tests := []struct {
		name      string
		setupMock func(s *mocks.ItemStorage)
		call      func(svc *cartservice.ItemService) ([]models.CartItem, error)
		wantItems []models.CartItem
		wantErr   error
	}{
		{
			name: "ViewCart success",
			setupMock: func(s *mocks.ItemStorage) {
				s.On("ViewCart", mock.Anything).Return([]models.CartItem{item}, nil)
			},
			call: func(svc *cartservice.ItemService) ([]models.CartItem, error) {
				return svc.ViewCart(context.Background())
			},
			wantItems: []models.CartItem{item},
		},
		{
			name: "AddToCart success",
			setupMock: func(s *mocks.ItemStorage) {
				s.On("AddToCart", mock.Anything, item).Return([]models.CartItem{item}, nil)
			},
			call: func(svc *cartservice.ItemService) ([]models.CartItem, error) {
				return svc.AddToCart(context.Background(), item)
			},
			wantItems: []models.CartItem{item},
		},
		{
			name: "AddToCart storage saw canceled context",
			setupMock: func(s *mocks.ItemStorage) {
				s.On("AddToCart", mock.Anything, item).
					Return(nil, fmt.Errorf("storage.memory.AddToCart: %w", context.Canceled))
			},
			call: func(svc *cartservice.ItemService) ([]models.CartItem, error) {
				return svc.AddToCart(context.Background(), item)
			},
			wantErr: serviceerrors.ErrContextCanceled,
		},
		{
			name: "ViewCart storage saw deadline",
			setupMock: func(s *mocks.ItemStorage) {
				s.On("ViewCart", mock.Anything).Return(nil, context.DeadlineExceeded)
			},
			call: func(svc *cartservice.ItemService) ([]models.CartItem, error) {
				return svc.ViewCart(context.Background())
			},
			wantErr: serviceerrors.ErrDeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorage := new(mocks.ItemStorage)
			tt.setupMock(mockStorage)
			svc := newItemService(mockStorage)

			items, err := tt.call(svc)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, items)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantItems, items)
			}

			mockStorage.AssertExpectations(t)
		})
	}
}

func TestRowService_AddToCart(t *testing.T) {
	quantity := decimal.NewFromInt(3)
	row := models.NewCartRow{ProductId: 7, Quantity: decimal.NewNullDecimal(quantity)}
	stored := []models.CartRow{
		{Name: 7, Price: decimal.NewNullDecimal(quantity)},
	}

	tests := []struct {
		name      string
		row       models.NewCartRow
		setupMock func(s *mocks.RowStorage)
		wantRows  []models.CartRow
		wantErr   error
	}{
		{
			name: "Success",
			row:  row,
			setupMock: func(s *mocks.RowStorage) {
				s.On("AddToCart", mock.Anything, row).Return(stored, nil)
			},
			wantRows: stored,
		},
		{
			name:      "Missing product id",
			row:       models.NewCartRow{Quantity: decimal.NewNullDecimal(quantity)},
			setupMock: func(s *mocks.RowStorage) {},
			wantErr:   serviceerrors.ErrMissingProductID,
		},
		{
			name: "Connection failure",
			row:  row,
			setupMock: func(s *mocks.RowStorage) {
				s.On("AddToCart", mock.Anything, row).
					Return(nil, fmt.Errorf("database.psql.AddToCart: %w: %w", databaseerrors.ErrConnection, errors.New("dial tcp: refused")))
			},
			wantErr: serviceerrors.ErrStorageUnavailable,
		},
		{
			name: "Storage failure",
			row:  row,
			setupMock: func(s *mocks.RowStorage) {
				s.On("AddToCart", mock.Anything, row).Return(nil, errors.New("insert failed"))
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorage := new(mocks.RowStorage)
			tt.setupMock(mockStorage)
			svc := newRowService(mockStorage)

			rows, err := svc.AddToCart(context.Background(), tt.row)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, rows)
			case tt.wantRows != nil:
				require.NoError(t, err)
				assert.Equal(t, tt.wantRows, rows)
			default:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, serviceerrors.ErrStorageUnavailable)
			}

			mockStorage.AssertExpectations(t)
		})
	}
}

func TestRowService_ViewCart(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.RowStorage)
		rows := []models.CartRow{{Name: 1, Price: decimal.NewNullDecimal(models.DefaultQuantity)}}
		mockStorage.On("ViewCart", mock.Anything).Return(rows, nil)

		got, err := newRowService(mockStorage).ViewCart(context.Background())
		require.NoError(t, err)
		assert.Equal(t, rows, got)

		mockStorage.AssertExpectations(t)
	})

	t.Run("Connection canceled while dialing", func(t *testing.T) {
		mockStorage := new(mocks.RowStorage)
		mockStorage.On("ViewCart", mock.Anything).
			Return(nil, fmt.Errorf("database.psql.ViewCart: %w: %w", databaseerrors.ErrConnection, context.Canceled))

		_, err := newRowService(mockStorage).ViewCart(context.Background())
		assert.ErrorIs(t, err, serviceerrors.ErrContextCanceled)
		assert.NotErrorIs(t, err, serviceerrors.ErrStorageUnavailable)

		mockStorage.AssertExpectations(t)
	})
}
