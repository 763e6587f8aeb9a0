package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient สร้าง client จาก REDIS_URI (host:port หรือ redis:// URL) และ ping ก่อนใช้
func NewRedisClient(ctx context.Context, uri string) (*redis.Client, error) {
	if uri == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(uri)
	if err != nil {
		// รองรับรูปแบบ host:port แบบเดิม
		opt = &redis.Options{Addr: uri, DB: 0}
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect Redis: %w", err)
	}
	return client, nil
}
