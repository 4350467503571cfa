package tests

import (
	"context"
	"testing"

	"golden-fork/catalog-svc/internal/domain"
	"golden-fork/catalog-svc/internal/mocks"
	"golden-fork/catalog-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductService_Create(t *testing.T) {
	tests := []struct {
		name      string
		input     *domain.Product
		mockError error
		wantErr   error
		skipRepo  bool
	}{
		{
			name:  "valid product",
			input: &domain.Product{Name: "Classic Burger", Price: 9.99},
		},
		{
			name:      "database error",
			input:     &domain.Product{Name: "Classic Burger", Price: 9.99},
			mockError: assert.AnError,
			wantErr:   assert.AnError,
		},
		{
			name:     "missing name is rejected before the repository",
			input:    &domain.Product{Name: "", Price: 9.99},
			wantErr:  service.ErrInvalidProduct,
			skipRepo: true,
		},
		{
			name:     "negative price is rejected",
			input:    &domain.Product{Name: "Classic Burger", Price: -1},
			wantErr:  service.ErrInvalidProduct,
			skipRepo: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.ProductRepository)
			mockCache := new(mocks.ProductListCache)
			svc := service.NewProductService(mockRepo, mockCache)

			if !testCase.skipRepo {
				mockRepo.On("CreateProduct", testCase.input).Return(testCase.mockError).Once()
				if testCase.mockError == nil {
					mockCache.On("Invalidate", mock.Anything).Return(nil).Once()
				}
			}

			err := svc.Create(context.Background(), testCase.input)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
			mockCache.AssertExpectations(t)
		})
	}
}

func TestProductService_List(t *testing.T) {
	products := []domain.Product{
		{ID: "P-1", Name: "Classic Burger", Price: 9.99},
		{ID: "P-2", Name: "Garlic Fries", Price: 4.50},
	}

	t.Run("cache hit skips the repository", func(t *testing.T) {
		mockRepo := new(mocks.ProductRepository)
		mockCache := new(mocks.ProductListCache)
		svc := service.NewProductService(mockRepo, mockCache)

		mockCache.On("GetList", mock.Anything).Return(products, true).Once()

		got, err := svc.List(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, products, got)
		mockRepo.AssertNotCalled(t, "ListProducts")
	})

	t.Run("cache miss reads the repository and repopulates", func(t *testing.T) {
		mockRepo := new(mocks.ProductRepository)
		mockCache := new(mocks.ProductListCache)
		svc := service.NewProductService(mockRepo, mockCache)

		mockCache.On("GetList", mock.Anything).Return(nil, false).Once()
		mockRepo.On("ListProducts").Return(products, nil).Once()
		mockCache.On("SetList", mock.Anything, products).Return(nil).Once()

		got, err := svc.List(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, products, got)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		mockRepo := new(mocks.ProductRepository)
		mockCache := new(mocks.ProductListCache)
		svc := service.NewProductService(mockRepo, mockCache)

		mockCache.On("GetList", mock.Anything).Return(nil, false).Once()
		mockRepo.On("ListProducts").Return(nil, assert.AnError).Once()

		_, err := svc.List(context.Background())

		assert.Error(t, err)
	})

	t.Run("nil cache falls back to repository", func(t *testing.T) {
		mockRepo := new(mocks.ProductRepository)
		svc := service.NewProductService(mockRepo, nil)

		mockRepo.On("ListProducts").Return(products, nil).Once()

		got, err := svc.List(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, products, got)
	})
}

func TestProductService_Delete(t *testing.T) {
	tests := []struct {
		name           string
		mockRows       int64
		mockError      error
		wantRows       int64
		wantErr        bool
		wantInvalidate bool
	}{
		{
			name:           "deleted row invalidates cache",
			mockRows:       1,
			wantRows:       1,
			wantInvalidate: true,
		},
		{
			name:     "missing id leaves cache alone",
			mockRows: 0,
			wantRows: 0,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantErr:   true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.ProductRepository)
			mockCache := new(mocks.ProductListCache)
			svc := service.NewProductService(mockRepo, mockCache)

			mockRepo.On("DeleteProduct", "P-1").Return(testCase.mockRows, testCase.mockError).Once()
			if testCase.wantInvalidate {
				mockCache.On("Invalidate", mock.Anything).Return(nil).Once()
			}

			rows, err := svc.Delete(context.Background(), "P-1")

			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCase.wantRows, rows)
			}
			mockCache.AssertExpectations(t)
		})
	}
}

func TestProductService_Update(t *testing.T) {
	mockRepo := new(mocks.ProductRepository)
	mockCache := new(mocks.ProductListCache)
	svc := service.NewProductService(mockRepo, mockCache)

	product := &domain.Product{ID: "P-1", Name: "Classic Burger", Price: 10.99}
	mockRepo.On("UpdateProduct", product).Return(nil).Once()
	mockCache.On("Invalidate", mock.Anything).Return(nil).Once()

	err := svc.Update(context.Background(), product)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}
