package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"golden-fork/catalog-svc/internal/domain"

	"github.com/google/uuid"
)

type ProductStore struct {
	db *sql.DB
}

func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// newProductID mints the opaque id the storefront keys carts on.
func newProductID() string {
	return "P-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

func (s *ProductStore) CreateProduct(product *domain.Product) error {
	product.ID = newProductID()
	return s.db.QueryRow(`
		INSERT INTO products (id, name, price, description, category, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, product.ID, product.Name, product.Price, product.Description, product.Category, product.Image).
		Scan(&product.CreatedAt)
}

func (s *ProductStore) ListProducts() ([]domain.Product, error) {
	rows, err := s.db.Query(`
		SELECT id, name, price, description, category, image, created_at
		FROM products
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Category, &p.Image, &p.CreatedAt); err != nil {
			continue
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *ProductStore) GetProduct(id string) (*domain.Product, error) {
	var p domain.Product
	err := s.db.QueryRow(`
		SELECT id, name, price, description, category, image, created_at
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Category, &p.Image, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProductStore) UpdateProduct(product *domain.Product) error {
	return s.db.QueryRow(`
		UPDATE products
		SET name = $1, price = $2, description = $3, category = $4, image = $5
		WHERE id = $6
		RETURNING created_at
	`, product.Name, product.Price, product.Description, product.Category, product.Image, product.ID).
		Scan(&product.CreatedAt)
}

func (s *ProductStore) DeleteProduct(id string) (int64, error) {
	result, err := s.db.Exec("DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
