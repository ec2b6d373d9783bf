package store

import (
	"context"
	"fmt"
	"io"

	goredis "github.com/redis/go-redis/v9"

	"github.com/davidbz/unitecon/internal/store/redis"
	"github.com/davidbz/unitecon/internal/store/sqlite"
)

// Backend is a KV that owns resources.
type Backend interface {
	KV
	io.Closer
}

// Open connects the backend selected by config.Driver.
func Open(ctx context.Context, config *Config) (Backend, error) {
	switch config.Driver {
	case DriverSQLite, "":
		kv, err := sqlite.New(config.SQLitePath)
		if err != nil {
			return nil, err
		}
		return kv, nil
	case DriverRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		kv, err := redis.New(ctx, client)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		return kv, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", config.Driver)
	}
}
