package service

import (
	"context"
	"errors"
	"log"

	"golden-fork/catalog-svc/internal/domain"
)

var ErrInvalidProduct = errors.New("product name and a non-negative price are required")

// ProductService fronts the repository with a list cache. The cache is
// best-effort: any cache failure falls through to Postgres.
type ProductService struct {
	repo  ProductRepository
	cache ProductListCache
}

func NewProductService(repo ProductRepository, cache ProductListCache) *ProductService {
	return &ProductService{repo: repo, cache: cache}
}

func (s *ProductService) Create(ctx context.Context, product *domain.Product) error {
	if product.Name == "" || product.Price < 0 {
		return ErrInvalidProduct
	}
	if err := s.repo.CreateProduct(product); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.GetList(ctx); ok {
			return products, nil
		}
	}

	products, err := s.repo.ListProducts()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, products); err != nil {
			log.Printf("Warning: failed to cache product list: %v", err)
		}
	}
	return products, nil
}

func (s *ProductService) Get(id string) (*domain.Product, error) {
	return s.repo.GetProduct(id)
}

func (s *ProductService) Update(ctx context.Context, product *domain.Product) error {
	if product.Name == "" || product.Price < 0 {
		return ErrInvalidProduct
	}
	if err := s.repo.UpdateProduct(product); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id string) (int64, error) {
	rows, err := s.repo.DeleteProduct(id)
	if err != nil {
		return 0, err
	}
	if rows > 0 {
		s.invalidate(ctx)
	}
	return rows, nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("Warning: failed to invalidate product cache: %v", err)
	}
}
