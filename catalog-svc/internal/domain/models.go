package domain

import "time"

// Product is a storefront menu item. IDs are opaque backend-assigned
// strings, so the storefront never needs to know how they are minted.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
