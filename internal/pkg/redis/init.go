package redis

import (
	"context"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"

	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

// InitRedis connects the client used for the token denylist.
func InitRedis(cfg config.RedisConfig) error {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return err
	}

	Rdb = rdb
	return nil
}
