package main

import (
	"context"

	"golden-fork/config"
	httpapi "golden-fork/order-feed-svc/internal/api/http"
	"golden-fork/order-feed-svc/internal/service"
	"golden-fork/order-feed-svc/internal/storage"
)

func main() {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("orders", "order-feed")
	defer reader.Close()

	store := storage.NewStore(rdb)
	consumer := service.NewConsumer(reader, store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go consumer.Start(ctx)

	handler := httpapi.NewHandler(store)
	addr := ":" + config.Getenv("PORT", "8083")
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}
