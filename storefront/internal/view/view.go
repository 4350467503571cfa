package view

import (
	"fmt"

	"golden-fork/storefront/internal/domain"
)

// ResolveImage picks the image a card should bind. The fallback is used
// only after the client genuinely failed to load the primary URL.
func ResolveImage(primary, name string, loadFailed bool) string {
	if loadFailed || primary == "" {
		return domain.PlaceholderURL(name)
	}
	return primary
}

// navMap links each screen to its bottom-nav button. The success screen has
// no nav entry because the nav is hidden there.
var navMap = map[domain.Screen]string{
	domain.ScreenMenu:    "nav-home",
	domain.ScreenCart:    "nav-order",
	domain.ScreenBooking: "nav-booking",
	domain.ScreenProfile: "nav-profile",
}

type Nav struct {
	Visible bool   `json:"visible"`
	Active  string `json:"active,omitempty"`
}

func NavFor(s domain.Screen) Nav {
	return Nav{
		Visible: s != domain.ScreenSuccess,
		Active:  navMap[s],
	}
}

type MenuCard struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	FallbackURL string `json:"fallback_url"`
}

func BuildMenu(items []domain.MenuItem) []MenuCard {
	cards := make([]MenuCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, MenuCard{
			ID:          item.ID,
			Category:    item.Category,
			Name:        item.Name,
			Price:       fmt.Sprintf("$%.2f", item.Price),
			Description: item.Description,
			ImageURL:    item.ImageURL,
			FallbackURL: domain.PlaceholderURL(item.Name),
		})
	}
	return cards
}

type CartLine struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type Cart struct {
	Lines           []CartLine `json:"lines"`
	Empty           bool       `json:"empty"`
	Subtotal        string     `json:"subtotal"`
	ItemCount       int        `json:"item_count"`
	CheckoutEnabled bool       `json:"checkout_enabled"`
}

// BuildCart renders the cart list, the displayed subtotal and the header
// badge count from the current lines.
func BuildCart(lines []domain.CartLine) Cart {
	var subtotal float64
	count := 0
	views := make([]CartLine, 0, len(lines))
	for _, line := range lines {
		lineTotal := line.Item.Price * float64(line.Quantity)
		subtotal += lineTotal
		count += line.Quantity
		views = append(views, CartLine{
			ID:        line.Item.ID,
			Name:      line.Item.Name,
			UnitPrice: fmt.Sprintf("$%.2f", line.Item.Price),
			Quantity:  line.Quantity,
			LineTotal: fmt.Sprintf("$%.2f", lineTotal),
		})
	}
	return Cart{
		Lines:           views,
		Empty:           len(views) == 0,
		Subtotal:        fmt.Sprintf("$%.2f", subtotal),
		ItemCount:       count,
		CheckoutEnabled: len(views) > 0,
	}
}

type OrderSummaryLine struct {
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
	Total    string `json:"total"`
}

type OrderSummary struct {
	OrderID    string             `json:"order_id"`
	Customer   string             `json:"customer"`
	DeliveryTo string             `json:"delivery_to"`
	Lines      []OrderSummaryLine `json:"lines"`
	GrandTotal string             `json:"grand_total"`
	Timestamp  string             `json:"timestamp"`
}

func BuildOrderSummary(order domain.Order) OrderSummary {
	lines := make([]OrderSummaryLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, OrderSummaryLine{
			Quantity: item.Quantity,
			Name:     item.Name,
			Total:    "$" + item.Total,
		})
	}
	return OrderSummary{
		OrderID:    order.OrderID,
		Customer:   order.Customer.Name,
		DeliveryTo: order.Customer.Address,
		Lines:      lines,
		GrandTotal: order.GrandTotal,
		Timestamp:  order.Timestamp.Format("1/2/2006, 3:04:05 PM"),
	}
}
