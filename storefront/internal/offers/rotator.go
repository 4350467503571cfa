package offers

import (
	"context"
	"sync"
	"time"

	"golden-fork/storefront/internal/domain"
)

// DefaultInterval is how long each offer stays on screen.
const DefaultInterval = 5 * time.Second

// SpecialOffers is the fixed promotional rotation.
var SpecialOffers = []domain.Offer{
	{Title: "20% OFF ALL PIZZAS!", Action: "Use Code: PIZZA20", Icon: "fas fa-pizza-slice", Color: "text-accent-gold"},
	{Title: "Free Garlic Fries with any Burger!", Action: "Add 'F003' to your order!", Icon: "fas fa-utensils", Color: "text-secondary-accent"},
	{Title: "VIP Week: 15% Off Your Entire Order.", Action: "No code needed. Today Only!", Icon: "fas fa-gift", Color: "text-green-400"},
}

// Rotator cycles through the offer list on a fixed interval. It is purely
// presentational and holds no core state.
type Rotator struct {
	mu       sync.Mutex
	offers   []domain.Offer
	index    int
	interval time.Duration
	onRotate func(domain.Offer)
}

func NewRotator(offers []domain.Offer, interval time.Duration, onRotate func(domain.Offer)) *Rotator {
	if len(offers) == 0 {
		offers = SpecialOffers
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Rotator{offers: offers, interval: interval, onRotate: onRotate}
}

func (r *Rotator) Current() domain.Offer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.offers[r.index]
}

// Advance moves to the next offer, wrapping around, and renders it.
func (r *Rotator) Advance() domain.Offer {
	r.mu.Lock()
	r.index = (r.index + 1) % len(r.offers)
	offer := r.offers[r.index]
	r.mu.Unlock()

	if r.onRotate != nil {
		r.onRotate(offer)
	}
	return offer
}

// Start renders the first offer immediately and rotates until the context
// is cancelled.
func (r *Rotator) Start(ctx context.Context) {
	if r.onRotate != nil {
		r.onRotate(r.Current())
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Advance()
		}
	}
}
