package database

import (
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// AsynqRedisOpt แปลง options ของ go-redis ให้ asynq ใช้ redis ตัวเดียวกัน
func AsynqRedisOpt(rdb *redis.Client) asynq.RedisClientOpt {
	opt := rdb.Options()
	return asynq.RedisClientOpt{
		Addr:     opt.Addr,
		Username: opt.Username,
		Password: opt.Password,
		DB:       opt.DB,
	}
}

// NewAsynqClient คืน nil ถ้าไม่มี Redis
func NewAsynqClient(rdb *redis.Client) *asynq.Client {
	if rdb == nil {
		return nil
	}
	return asynq.NewClient(AsynqRedisOpt(rdb))
}
