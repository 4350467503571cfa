package service

import (
	"context"

	"golden-fork/catalog-svc/internal/domain"
)

type ProductServiceInterface interface {
	Create(ctx context.Context, product *domain.Product) error
	List(ctx context.Context) ([]domain.Product, error)
	Get(id string) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) (int64, error)
}

type ProductRepository interface {
	CreateProduct(product *domain.Product) error
	ListProducts() ([]domain.Product, error)
	GetProduct(id string) (*domain.Product, error)
	UpdateProduct(product *domain.Product) error
	DeleteProduct(id string) (int64, error)
}

type ProductListCache interface {
	GetList(ctx context.Context) ([]domain.Product, bool)
	SetList(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

var _ ProductServiceInterface = (*ProductService)(nil)
