package main

import (
	"log"
	"time"

	httpapi "golden-fork/catalog-svc/internal/api/http"
	"golden-fork/catalog-svc/internal/service"
	"golden-fork/catalog-svc/internal/storage"
	"golden-fork/config"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	store := storage.NewProductStore(db)
	if err := store.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewProductCache(rdb, 5*time.Minute)
	productSvc := service.NewProductService(store, cache)

	handler := httpapi.NewHandler(productSvc)
	addr := ":" + config.Getenv("PORT", "8080")
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}
