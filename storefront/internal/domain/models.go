package domain

import (
	"net/url"
	"time"
)

// DefaultCategory is substituted when a catalog record carries no category.
const DefaultCategory = "GENERAL"

const placeholderBase = "https://placehold.co/300x200/404040/CC8000?text="

// PlaceholderURL synthesizes a fallback image URL keyed by the item name.
func PlaceholderURL(name string) string {
	return placeholderBase + url.QueryEscape(name)
}

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

// CartLine holds a snapshot of the menu item taken at add time. Later
// catalog updates never reach lines already in the cart.
type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type OrderLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Total    string `json:"total"`
}

type Order struct {
	OrderID    string      `json:"order_id"`
	Customer   Customer    `json:"customer"`
	Items      []OrderLine `json:"items"`
	GrandTotal string      `json:"grand_total"`
	Timestamp  time.Time   `json:"timestamp"`
}

// OrderMessage is the payload emitted to Kafka when an order completes.
type OrderMessage struct {
	Type       string      `json:"type"`
	OrderID    string      `json:"order_id"`
	Items      []OrderLine `json:"items"`
	GrandTotal string      `json:"grand_total"`
	Timestamp  time.Time   `json:"timestamp"`
}

type Offer struct {
	Title  string `json:"title"`
	Action string `json:"action"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
}

// Screen identifies one of the mutually exclusive storefront views.
type Screen string

const (
	ScreenMenu    Screen = "menu-screen"
	ScreenCart    Screen = "cart-screen"
	ScreenBooking Screen = "booking-screen"
	ScreenProfile Screen = "profile-screen"
	ScreenSuccess Screen = "success-screen"
)

func (s Screen) Valid() bool {
	switch s {
	case ScreenMenu, ScreenCart, ScreenBooking, ScreenProfile, ScreenSuccess:
		return true
	}
	return false
}
