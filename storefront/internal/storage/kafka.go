package storage

import (
	"context"
	"encoding/json"

	"golden-fork/storefront/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrder(ctx context.Context, msg domain.OrderMessage) error {
	payload, _ := json.Marshal(msg)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.OrderID),
		Value: payload,
	})
}
