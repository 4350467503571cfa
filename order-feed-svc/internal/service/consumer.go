package service

import (
	"context"
	"encoding/json"
	"log"

	"golden-fork/order-feed-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting order feed consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.OrderMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessOrder(ctx, msg)
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, msg domain.OrderMessage) {
	if msg.Type != "order_placed" {
		return
	}
	log.Printf("Processing order %s, total %s", msg.OrderID, msg.GrandTotal)

	if err := c.Store.RecordOrder(ctx, msg); err != nil {
		log.Printf("Error recording order %s: %v", msg.OrderID, err)
		return
	}

	log.Printf("Successfully recorded order %s", msg.OrderID)
}
