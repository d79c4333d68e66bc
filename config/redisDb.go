package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// DefaultCacheLifespan bounds how stale a cached user snapshot may get.
const DefaultCacheLifespan = 30 * time.Minute

func init() {
	// Load env from .env
	godotenv.Load()
	// IMPORTANT (Cloud Run):
	// Do NOT block startup in init() waiting for Redis.
	// Cloud Run requires the container to start listening on $PORT quickly.
}

// CacheLifespan returns the snapshot TTL, overridable via
// CACHE_LIFESPAN_SECONDS (default 1800).
func CacheLifespan() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("CACHE_LIFESPAN_SECONDS"))
	if err != nil || seconds <= 0 {
		return DefaultCacheLifespan
	}
	return time.Duration(seconds) * time.Second
}

// ConnectRedisWithRetry connects and returns the Redis client. Blocks until
// Redis answers a ping, backing off between attempts.
func ConnectRedisWithRetry() *redis.Client {
	redisAddr := os.Getenv("REDIS_ADDRESS")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
		log.Printf("REDIS_ADDRESS not set; defaulting to %s", redisAddr)
	}

	ctx := context.Background()
	var attempt int
	for {
		attempt++
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: "",
			DB:       0, // use default DB
			PoolSize: 100,
		})
		if err := rdb.Ping(ctx).Err(); err == nil {
			log.Printf("connected to redis (attempt=%d addr=%s)", attempt, redisAddr)
			return rdb
		} else {
			sleep := time.Second * time.Duration(1<<min(attempt, 5))
			if sleep > 30*time.Second {
				sleep = 30 * time.Second
			}
			log.Printf("failed to connect redis (attempt=%d addr=%s): %v; retrying in %s", attempt, redisAddr, err, sleep)
			time.Sleep(sleep)
		}
	}
}
