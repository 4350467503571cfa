package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"golden-fork/catalog-svc/internal/domain"
	"golden-fork/catalog-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Products service.ProductServiceInterface
}

func NewHandler(productSvc service.ProductServiceInterface) *Handler {
	return &Handler{Products: productSvc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/products", h.createProduct).Methods("POST")
	r.HandleFunc("/api/products", h.getProducts).Methods("GET")
	r.HandleFunc("/api/products/{id}", h.getProduct).Methods("GET")
	r.HandleFunc("/api/products/{id}", h.updateProduct).Methods("PUT")
	r.HandleFunc("/api/products/{id}", h.deleteProduct).Methods("DELETE")

	// Aliases kept for the admin form, which still posts to /api/menu/add.
	r.HandleFunc("/api/menu", h.getProducts).Methods("GET")
	r.HandleFunc("/api/menu/add", h.createProduct).Methods("POST")

	r.HandleFunc("/api/users", h.userStub).Methods("GET")
	r.HandleFunc("/api/orders", h.orderStub).Methods("GET")
}

// writeMessage emits the {"message": ...} envelope the admin form expects.
func writeMessage(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "catalog-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		ImageURL    string  `json:"imageUrl"`
		Image       string  `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	image := payload.Image
	if image == "" {
		image = payload.ImageURL
	}
	product := domain.Product{
		Name:        payload.Name,
		Price:       payload.Price,
		Description: payload.Description,
		Category:    payload.Category,
		Image:       image,
	}

	if err := h.Products.Create(r.Context(), &product); err != nil {
		if errors.Is(err, service.ErrInvalidProduct) {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Menu item added successfully",
		"product": product,
	})
}

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.Products.Get(mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Menu item not found")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	product.ID = mux.Vars(r)["id"]

	if err := h.Products.Update(r.Context(), &product); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			writeMessage(w, http.StatusNotFound, "Menu item not found")
		case errors.Is(err, service.ErrInvalidProduct):
			writeMessage(w, http.StatusBadRequest, err.Error())
		default:
			writeMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Products.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if rows == 0 {
		writeMessage(w, http.StatusNotFound, "Menu item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) userStub(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "User routes are working")
}

func (h *Handler) orderStub(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Order routes are working")
}
