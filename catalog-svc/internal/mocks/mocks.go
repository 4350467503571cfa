package mocks

import (
	"context"

	"golden-fork/catalog-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) CreateProduct(product *domain.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *ProductRepository) ListProducts() ([]domain.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *ProductRepository) GetProduct(id string) (*domain.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *ProductRepository) UpdateProduct(product *domain.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *ProductRepository) DeleteProduct(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type ProductListCache struct {
	mock.Mock
}

func (m *ProductListCache) GetList(ctx context.Context) ([]domain.Product, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]domain.Product), args.Bool(1)
}

func (m *ProductListCache) SetList(ctx context.Context, products []domain.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *ProductListCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
