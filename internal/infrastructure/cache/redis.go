package cache

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a Redis client when REDIS_ADDR is set and reachable,
// nil otherwise. Redis is optional: it fans status updates out across
// replicas, and a single-instance deployment works without it.
func ConnectRedis(ctx context.Context) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Printf("[cache][redis] REDIS_ADDR not set, cross-instance status fan-out disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("[cache][redis] connection failed addr=%s err=%v", addr, err)
		return nil
	}

	log.Printf("[cache][redis] connected addr=%s", addr)
	return rdb
}
