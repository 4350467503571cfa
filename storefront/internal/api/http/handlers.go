package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"golden-fork/storefront/internal/checkout"
	"golden-fork/storefront/internal/domain"
	"golden-fork/storefront/internal/session"

	"github.com/gorilla/mux"
)

// Handler exposes the session state machine to a browser shell. UI events
// arrive as HTTP calls; the shell polls /api/state for the render state.
type Handler struct {
	Session *session.Session
}

func NewHandler(s *session.Session) *Handler {
	return &Handler{Session: s}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/state", h.getState).Methods("GET")
	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/refresh", h.refreshMenu).Methods("POST")
	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/items/{itemId}", h.addToCart).Methods("POST")
	r.HandleFunc("/api/cart/items/{itemId}/quantity", h.updateQuantity).Methods("POST")
	r.HandleFunc("/api/checkout", h.submitCheckout).Methods("POST")
	r.HandleFunc("/api/reset", h.resetSession).Methods("POST")
	r.HandleFunc("/api/screens/{screenId}", h.showScreen).Methods("POST")
	r.HandleFunc("/api/orders/last/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Session.State())
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Session.State().Menu)
}

func (h *Handler) refreshMenu(w http.ResponseWriter, r *http.Request) {
	if err := h.Session.RefreshMenu(r.Context()); err != nil {
		http.Error(w, "Failed to load menu: "+err.Error(), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Session.State().Menu)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Session.State().Cart)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	h.Session.AddToCart(mux.Vars(r)["itemId"])
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Session.State().Cart)
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.Session.UpdateQuantity(mux.Vars(r)["itemId"], payload.Delta)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Session.State().Cart)
}

func (h *Handler) submitCheckout(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Session.Checkout(r.Context(), customer)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) resetSession(w http.ResponseWriter, r *http.Request) {
	h.Session.Reset()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Session.State())
}

func (h *Handler) showScreen(w http.ResponseWriter, r *http.Request) {
	target := domain.Screen(mux.Vars(r)["screenId"])
	if !target.Valid() {
		http.Error(w, "Unknown screen", http.StatusNotFound)
		return
	}
	h.Session.Show(target)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Session.State())
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qr := h.Session.LastOrderQRCode()
	if len(qr) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}
