package domain

import "time"

// OrderMessage mirrors the payload the storefront publishes on the orders
// topic.
type OrderMessage struct {
	Type       string      `json:"type"`
	OrderID    string      `json:"order_id"`
	Items      []OrderLine `json:"items"`
	GrandTotal string      `json:"grand_total"`
	Timestamp  time.Time   `json:"timestamp"`
}

type OrderLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Total    string `json:"total"`
}

type Summary struct {
	OrderCount int64   `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

type TopItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}
