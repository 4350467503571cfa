package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"golden-fork/storefront/internal/domain"
)

// record mirrors the wire shape served by catalog-svc. Category and image
// are optional and filled in by Normalize.
type record struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// Normalize maps a raw catalog record to a uniform menu item.
func Normalize(id, name string, price float64, description, category, image string) domain.MenuItem {
	if category == "" {
		category = domain.DefaultCategory
	}
	if image == "" {
		image = domain.PlaceholderURL(name)
	}
	return domain.MenuItem{
		ID:          id,
		Name:        name,
		Price:       price,
		Description: description,
		Category:    category,
		ImageURL:    image,
	}
}

// Catalog holds the current authoritative item list. Refresh replaces it
// wholesale; a failed refresh leaves the previous list intact.
type Catalog struct {
	mu       sync.RWMutex
	baseURL  string
	client   *http.Client
	items    []domain.MenuItem
	index    map[string]domain.MenuItem
	onUpdate func()
}

func New(baseURL string, client *http.Client, onUpdate func()) *Catalog {
	if client == nil {
		client = http.DefaultClient
	}
	return &Catalog{
		baseURL:  baseURL,
		client:   client,
		index:    map[string]domain.MenuItem{},
		onUpdate: onUpdate,
	}
}

// Refresh fetches the remote product list and swaps the catalog atomically.
// In-flight refreshes are not cancelled; the last response to finish wins.
func (c *Catalog) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		log.Printf("Failed to load menu: %v", err)
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("Failed to load menu: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("catalog responded with status %d", resp.StatusCode)
		log.Printf("Failed to load menu: %v", err)
		return err
	}

	var records []record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		log.Printf("Failed to load menu: %v", err)
		return err
	}

	items := make([]domain.MenuItem, 0, len(records))
	index := make(map[string]domain.MenuItem, len(records))
	for _, r := range records {
		item := Normalize(r.ID, r.Name, r.Price, r.Description, r.Category, r.Image)
		items = append(items, item)
		index[item.ID] = item
	}

	c.mu.Lock()
	c.items = items
	c.index = index
	c.mu.Unlock()

	if c.onUpdate != nil {
		c.onUpdate()
	}
	return nil
}

func (c *Catalog) Items() []domain.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]domain.MenuItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Catalog) Item(id string) (domain.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.index[id]
	return item, ok
}
