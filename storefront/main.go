package main

import (
	"context"
	"log"
	"time"

	"golden-fork/config"
	httpapi "golden-fork/storefront/internal/api/http"
	"golden-fork/storefront/internal/checkout"
	"golden-fork/storefront/internal/offers"
	"golden-fork/storefront/internal/screen"
	"golden-fork/storefront/internal/session"
	"golden-fork/storefront/internal/storage"
)

func main() {
	catalogURL := config.Getenv("CATALOG_URL", "http://localhost:8080")
	publicURL := config.Getenv("PUBLIC_URL", "http://localhost:8081")
	addr := ":" + config.Getenv("PORT", "8081")

	var publisher checkout.OrderPublisher
	if writer := config.NewKafkaWriter("orders"); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Println("KAFKA_BROKER not set, order publishing disabled")
	}

	sess := session.New(session.Config{
		CatalogURL:      catalogURL,
		Publisher:       publisher,
		QR:              checkout.OrderQRGenerator{BaseURL: publicURL},
		TransitionDelay: screen.DefaultTransitionDelay,
		OfferInterval:   offers.DefaultInterval,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sess.StartOffers(ctx)

	// Initial catalog load, delayed a beat like the browser shell does while
	// skeleton cards are on screen. A failure keeps the empty catalog and is
	// retried via POST /api/menu/refresh.
	go func() {
		time.Sleep(800 * time.Millisecond)
		if err := sess.RefreshMenu(ctx); err != nil {
			log.Printf("Initial menu load failed: %v", err)
		}
	}()

	handler := httpapi.NewHandler(sess)
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}
