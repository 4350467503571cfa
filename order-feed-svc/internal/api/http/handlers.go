package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"golden-fork/order-feed-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Store service.StoreInterface
}

func NewHandler(store service.StoreInterface) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/analytics/summary", h.getSummary).Methods("GET")
	r.HandleFunc("/api/analytics/top-items", h.getTopItems).Methods("GET")
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Store.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

func (h *Handler) getTopItems(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := h.Store.TopItems(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}
