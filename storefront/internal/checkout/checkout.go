package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"golden-fork/storefront/internal/domain"

	"github.com/google/uuid"
)

// ErrEmptyCart is returned when checkout is attempted with no lines.
var ErrEmptyCart = errors.New("cart is empty, cannot place order")

type Cart interface {
	Lines() []domain.CartLine
	Subtotal() float64
	Clear()
}

type Screens interface {
	Show(domain.Screen)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, msg domain.OrderMessage) error
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// Flow validates and snapshots the cart into an immutable order, then hands
// off to the screen controller. Publisher and QR generator are optional.
type Flow struct {
	cart      Cart
	screens   Screens
	publisher OrderPublisher
	qr        QRGenerator
	onOrder   func(domain.Order)
	newToken  func() string

	mu        sync.Mutex
	lastOrder *domain.Order
	lastQR    []byte
}

func NewFlow(cart Cart, screens Screens, publisher OrderPublisher, qr QRGenerator, onOrder func(domain.Order)) *Flow {
	return &Flow{
		cart:      cart,
		screens:   screens,
		publisher: publisher,
		qr:        qr,
		onOrder:   onOrder,
		newToken:  NewOrderID,
	}
}

// NewOrderID generates an opaque order token. Randomness is the only
// uniqueness guarantee, which is enough for a single non-persisted session.
func NewOrderID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(raw[:7])
}

// Submit creates an order from the current cart, stores it as the last
// completed order, clears the cart and transitions to the success screen.
func (f *Flow) Submit(ctx context.Context, customer domain.Customer) (*domain.Order, error) {
	lines := f.cart.Lines()
	if len(lines) == 0 {
		log.Println("Cart is empty! Cannot place order.")
		return nil, ErrEmptyCart
	}

	items := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderLine{
			Name:     line.Item.Name,
			Quantity: line.Quantity,
			Total:    fmt.Sprintf("%.2f", line.Item.Price*float64(line.Quantity)),
		})
	}

	order := domain.Order{
		OrderID:    f.newToken(),
		Customer:   customer,
		Items:      items,
		GrandTotal: fmt.Sprintf("$%.2f", f.cart.Subtotal()),
		Timestamp:  time.Now(),
	}

	var qr []byte
	if f.qr != nil {
		var err error
		if qr, err = f.qr.Generate(order.OrderID); err != nil {
			log.Printf("Failed to generate QR code for order %s: %v", order.OrderID, err)
			qr = nil
		}
	}

	f.mu.Lock()
	f.lastOrder = &order
	f.lastQR = qr
	f.mu.Unlock()

	if f.publisher != nil {
		msg := domain.OrderMessage{
			Type:       "order_placed",
			OrderID:    order.OrderID,
			Items:      items,
			GrandTotal: order.GrandTotal,
			Timestamp:  order.Timestamp,
		}
		if err := f.publisher.PublishOrder(ctx, msg); err != nil {
			log.Printf("Failed to publish order %s: %v", order.OrderID, err)
		}
	}

	f.cart.Clear()

	if f.onOrder != nil {
		f.onOrder(order)
	}
	f.screens.Show(domain.ScreenSuccess)

	log.Printf("Order %s placed, total %s", order.OrderID, order.GrandTotal)
	return &order, nil
}

// LastOrder returns the most recently completed order, if any.
func (f *Flow) LastOrder() (domain.Order, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lastOrder == nil {
		return domain.Order{}, false
	}
	return *f.lastOrder, true
}

func (f *Flow) LastQRCode() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastQR
}

// Reset drops the last completed order.
func (f *Flow) Reset() {
	f.mu.Lock()
	f.lastOrder = nil
	f.lastQR = nil
	f.mu.Unlock()
}
