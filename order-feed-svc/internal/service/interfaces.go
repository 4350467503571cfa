package service

import (
	"context"

	"golden-fork/order-feed-svc/internal/domain"
)

type StoreInterface interface {
	RecordOrder(ctx context.Context, msg domain.OrderMessage) error
	Summary(ctx context.Context) (domain.Summary, error)
	TopItems(ctx context.Context, limit int) ([]domain.TopItem, error)
}
