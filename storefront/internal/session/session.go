package session

import (
	"context"
	"net/http"
	"time"

	"golden-fork/storefront/internal/cart"
	"golden-fork/storefront/internal/catalog"
	"golden-fork/storefront/internal/checkout"
	"golden-fork/storefront/internal/domain"
	"golden-fork/storefront/internal/offers"
	"golden-fork/storefront/internal/screen"
	"golden-fork/storefront/internal/view"
)

type Config struct {
	CatalogURL      string
	HTTPClient      *http.Client
	Publisher       checkout.OrderPublisher
	QR              checkout.QRGenerator
	TransitionDelay time.Duration
	OfferInterval   time.Duration
}

// Session owns all per-tab state: catalog, cart, active screen, last order
// and the render sink. Independent sessions can coexist; nothing here is
// package-level.
type Session struct {
	state    *view.State
	catalog  *catalog.Catalog
	cart     *cart.Store
	screens  *screen.Controller
	checkout *checkout.Flow
	rotator  *offers.Rotator
}

func New(cfg Config) *Session {
	s := &Session{state: view.NewState()}

	s.catalog = catalog.New(cfg.CatalogURL, cfg.HTTPClient, s.renderMenu)
	s.cart = cart.New(s.catalog, s.renderCart)
	s.screens = screen.NewController(cfg.TransitionDelay, s)
	s.checkout = checkout.NewFlow(s.cart, s.screens, cfg.Publisher, cfg.QR, s.renderOrderSummary)
	s.rotator = offers.NewRotator(nil, cfg.OfferInterval, s.state.SetOffer)

	return s
}

// render hooks, fired synchronously after each mutation.

func (s *Session) renderMenu() {
	s.state.SetMenu(view.BuildMenu(s.catalog.Items()))
}

func (s *Session) renderCart() {
	s.state.SetCart(view.BuildCart(s.cart.Lines()))
}

func (s *Session) renderOrderSummary(order domain.Order) {
	summary := view.BuildOrderSummary(order)
	s.state.SetOrderSummary(&summary)
}

// screen.Listener implementation.

func (s *Session) TransitionStarted(from, to domain.Screen) {
	s.state.BeginScreenExit()
}

func (s *Session) ScreenChanged(active domain.Screen, navVisible bool) {
	s.state.ActivateScreen(active)
}

// RefreshMenu reloads the catalog. On failure the previous catalog stays
// in place and the error is reported to the caller.
func (s *Session) RefreshMenu(ctx context.Context) error {
	return s.catalog.Refresh(ctx)
}

func (s *Session) AddToCart(itemID string) {
	s.cart.Add(itemID)
}

func (s *Session) UpdateQuantity(itemID string, delta int) {
	s.cart.AdjustQuantity(itemID, delta)
}

func (s *Session) Show(target domain.Screen) {
	s.screens.Show(target)
}

func (s *Session) Checkout(ctx context.Context, customer domain.Customer) (*domain.Order, error) {
	return s.checkout.Submit(ctx, customer)
}

func (s *Session) LastOrder() (domain.Order, bool) {
	return s.checkout.LastOrder()
}

func (s *Session) LastOrderQRCode() []byte {
	return s.checkout.LastQRCode()
}

// Reset clears the cart and the last order and returns to the menu screen.
func (s *Session) Reset() {
	s.cart.Clear()
	s.checkout.Reset()
	s.state.SetOrderSummary(nil)
	s.screens.Show(domain.ScreenMenu)
}

// StartOffers runs the offer rotation until ctx is cancelled.
func (s *Session) StartOffers(ctx context.Context) {
	s.rotator.Start(ctx)
}

func (s *Session) CurrentScreen() domain.Screen {
	return s.screens.Current()
}

func (s *Session) Cart() *cart.Store {
	return s.cart
}

func (s *Session) State() view.Snapshot {
	return s.state.Snapshot()
}
