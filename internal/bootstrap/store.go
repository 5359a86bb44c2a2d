package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type StoreOptions struct {
	URL    string
	PingTO time.Duration
}

// OpenStore connects to Redis from a URL and verifies the connection.
func OpenStore(ctx context.Context, opt StoreOptions) (*redis.Client, error) {
	if opt.URL == "" {
		return nil, fmt.Errorf("REDIS_URL is not set")
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	redisOpts, err := redis.ParseURL(opt.URL)
	if err != nil {
		return nil, fmt.Errorf("store connect: %w", err)
	}
	client := redis.NewClient(redisOpts)

	pctx, cancel := context.WithTimeout(ctx, opt.PingTO)
	defer cancel()

	if err := client.Ping(pctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("store ping: %w", err)
	}

	return client, nil
}
