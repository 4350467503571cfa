package storage

import (
	"context"
	"strconv"
	"strings"

	"golden-fork/order-feed-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	orderCountKey = "orders:count"
	revenueKey    = "orders:revenue"
	topItemsKey   = "orders:top-items"
)

// Store keeps running order aggregates in Redis.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) RecordOrder(ctx context.Context, msg domain.OrderMessage) error {
	if err := s.rdb.Incr(ctx, orderCountKey).Err(); err != nil {
		return err
	}

	// Grand totals arrive as display strings, e.g. "$24.48".
	raw := strings.TrimPrefix(msg.GrandTotal, "$")
	if revenue, err := strconv.ParseFloat(raw, 64); err == nil {
		if err := s.rdb.IncrByFloat(ctx, revenueKey, revenue).Err(); err != nil {
			return err
		}
	}

	for _, item := range msg.Items {
		if err := s.rdb.ZIncrBy(ctx, topItemsKey, float64(item.Quantity), item.Name).Err(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Summary(ctx context.Context) (domain.Summary, error) {
	var summary domain.Summary

	count, err := s.rdb.Get(ctx, orderCountKey).Int64()
	if err != nil && err != redis.Nil {
		return summary, err
	}
	summary.OrderCount = count

	revenue, err := s.rdb.Get(ctx, revenueKey).Float64()
	if err != nil && err != redis.Nil {
		return summary, err
	}
	summary.Revenue = revenue

	return summary, nil
}

func (s *Store) TopItems(ctx context.Context, limit int) ([]domain.TopItem, error) {
	if limit <= 0 {
		limit = 10
	}

	members, err := s.rdb.ZRevRangeWithScores(ctx, topItemsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.TopItem, 0, len(members))
	for _, member := range members {
		name, _ := member.Member.(string)
		items = append(items, domain.TopItem{Name: name, Quantity: member.Score})
	}
	return items, nil
}
