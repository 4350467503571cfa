package view

import (
	"sync"

	"golden-fork/storefront/internal/domain"
)

// Snapshot is the full render state a browser shell polls for.
type Snapshot struct {
	Screen        string        `json:"screen"`
	ScreenExiting bool          `json:"screen_exiting"`
	Nav           Nav           `json:"nav"`
	Menu          []MenuCard    `json:"menu"`
	Cart          Cart          `json:"cart"`
	Offer         *domain.Offer `json:"offer,omitempty"`
	OrderSummary  *OrderSummary `json:"order_summary,omitempty"`
}

// State is the render sink the session components write into. It stands in
// for the DOM: every mutation hook ends with an update here.
type State struct {
	mu   sync.RWMutex
	snap Snapshot
}

func NewState() *State {
	return &State{
		snap: Snapshot{
			Screen: string(domain.ScreenMenu),
			Nav:    NavFor(domain.ScreenMenu),
			Cart:   BuildCart(nil),
		},
	}
}

func (s *State) SetMenu(cards []MenuCard) {
	s.mu.Lock()
	s.snap.Menu = cards
	s.mu.Unlock()
}

func (s *State) SetCart(cart Cart) {
	s.mu.Lock()
	s.snap.Cart = cart
	s.mu.Unlock()
}

func (s *State) SetOffer(offer domain.Offer) {
	s.mu.Lock()
	s.snap.Offer = &offer
	s.mu.Unlock()
}

func (s *State) SetOrderSummary(summary *OrderSummary) {
	s.mu.Lock()
	s.snap.OrderSummary = summary
	s.mu.Unlock()
}

// BeginScreenExit marks the active screen as animating out.
func (s *State) BeginScreenExit() {
	s.mu.Lock()
	s.snap.ScreenExiting = true
	s.mu.Unlock()
}

// ActivateScreen finalizes a transition: new active screen, nav highlight,
// nav visibility.
func (s *State) ActivateScreen(active domain.Screen) {
	s.mu.Lock()
	s.snap.Screen = string(active)
	s.snap.ScreenExiting = false
	s.snap.Nav = NavFor(active)
	s.mu.Unlock()
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.snap
	snap.Menu = append([]MenuCard(nil), s.snap.Menu...)
	snap.Cart.Lines = append([]CartLine(nil), s.snap.Cart.Lines...)
	return snap
}
