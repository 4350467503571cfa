package main

import (
	"log"
	"net/http"

	"golden-fork/api-gateway/internal/gateway"
	"golden-fork/config"

	"github.com/rs/cors"
)

func main() {
	gwConfig := gateway.Config{
		CatalogSvcURL:   config.Getenv("CATALOG_SVC_URL", "http://localhost:8080"),
		StorefrontURL:   config.Getenv("STOREFRONT_URL", "http://localhost:8081"),
		OrderFeedSvcURL: config.Getenv("ORDER_FEED_SVC_URL", "http://localhost:8083"),
	}

	gw := gateway.NewGateway(gwConfig, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5000", "http://127.0.0.1:5000", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	addr := ":" + config.Getenv("PORT", "5000")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
