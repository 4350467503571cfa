package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golden-fork/storefront/internal/session"
	"golden-fork/storefront/internal/view"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func newTestHandler(t *testing.T) (*Handler, *mux.Router) {
	t.Helper()
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"F1","name":"Classic Burger","price":9.99,"category":"BURGERS"}]`))
	}))
	t.Cleanup(backend.Close)

	sess := session.New(session.Config{CatalogURL: backend.URL, HTTPClient: backend.Client()})
	handler := NewHandler(sess)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	req := httptest.NewRequest("POST", "/api/menu/refresh", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	return handler, r
}

func TestAddToCartHandler(t *testing.T) {
	tests := []struct {
		name      string
		itemID    string
		wantCount int
	}{
		{
			name:      "known item lands in cart",
			itemID:    "F1",
			wantCount: 1,
		},
		{
			name:      "unknown item is a silent no-op",
			itemID:    "missing",
			wantCount: 0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, r := newTestHandler(t)

			req := httptest.NewRequest("POST", "/api/cart/items/"+testCase.itemID, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var cart view.Cart
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
			assert.Equal(t, testCase.wantCount, cart.ItemCount)
		})
	}
}

func TestUpdateQuantityHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantRows int
	}{
		{
			name:     "positive delta",
			body:     `{"delta": 2}`,
			wantCode: http.StatusOK,
			wantRows: 1,
		},
		{
			name:     "delta removing the line",
			body:     `{"delta": -1}`,
			wantCode: http.StatusOK,
			wantRows: 0,
		},
		{
			name:     "invalid JSON",
			body:     `{delta}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, r := newTestHandler(t)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest("POST", "/api/cart/items/F1", nil))
			assert.Equal(t, http.StatusOK, w.Code)

			req := httptest.NewRequest("POST", "/api/cart/items/F1/quantity", bytes.NewBufferString(testCase.body))
			w = httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode != http.StatusOK {
				return
			}

			var cart view.Cart
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
			assert.Len(t, cart.Lines, testCase.wantRows)
		})
	}
}

func TestCheckoutHandler(t *testing.T) {
	tests := []struct {
		name     string
		fillCart bool
		body     string
		wantCode int
	}{
		{
			name:     "empty cart is rejected with a message",
			body:     `{"name":"Ada","phone":"555-0101","address":"1 Loop Rd"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "valid checkout",
			fillCart: true,
			body:     `{"name":"Ada","phone":"555-0101","address":"1 Loop Rd"}`,
			wantCode: http.StatusCreated,
		},
		{
			name:     "malformed payload",
			fillCart: true,
			body:     `{name}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, r := newTestHandler(t)

			if testCase.fillCart {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest("POST", "/api/cart/items/F1", nil))
				assert.Equal(t, http.StatusOK, w.Code)
			}

			req := httptest.NewRequest("POST", "/api/checkout", bytes.NewBufferString(testCase.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusBadRequest && !testCase.fillCart {
				assert.Contains(t, w.Body.String(), "cart is empty")
			}
		})
	}
}

func TestShowScreenHandler(t *testing.T) {
	tests := []struct {
		name       string
		screenID   string
		wantCode   int
		wantScreen string
	}{
		{
			name:       "valid screen",
			screenID:   "cart-screen",
			wantCode:   http.StatusOK,
			wantScreen: "cart-screen",
		},
		{
			name:     "unknown screen",
			screenID: "garbage-screen",
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, r := newTestHandler(t)

			req := httptest.NewRequest("POST", "/api/screens/"+testCase.screenID, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode != http.StatusOK {
				return
			}

			var state view.Snapshot
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
			assert.Equal(t, testCase.wantScreen, state.Screen)
		})
	}
}

func TestResetHandler(t *testing.T) {
	_, r := newTestHandler(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/cart/items/F1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/reset", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var state view.Snapshot
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.True(t, state.Cart.Empty)
	assert.Equal(t, "menu-screen", state.Screen)
}

func TestOrderQRCodeHandler(t *testing.T) {
	_, r := newTestHandler(t)

	// No completed order yet.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/orders/last/qrcode", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStateHandler(t *testing.T) {
	_, r := newTestHandler(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/state", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var state view.Snapshot
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "menu-screen", state.Screen)
	assert.Len(t, state.Menu, 1)
	assert.True(t, state.Cart.Empty)
}
