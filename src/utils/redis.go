package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist เก็บ jti ของ token ที่ logout แล้ว
// ถ้าไม่มี Redis (dev mode) ทุก method จะไม่ทำอะไรและถือว่า token ใช้ได้
type TokenBlacklist struct {
	client *redis.Client
}

func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

func blacklistKey(jti string) string {
	return fmt.Sprintf("blacklist:%s", jti)
}

// Add เพิ่ม token เข้า blacklist จนกว่าจะหมดอายุ
func (b *TokenBlacklist) Add(ctx context.Context, jti string, expiresIn time.Duration) error {
	if b == nil || b.client == nil || jti == "" {
		return nil
	}
	if expiresIn <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, blacklistKey(jti), "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// Contains ตรวจสอบว่า token อยู่ใน blacklist หรือไม่
func (b *TokenBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	if b == nil || b.client == nil || jti == "" {
		return false, nil
	}
	_, err := b.client.Get(ctx, blacklistKey(jti)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}
