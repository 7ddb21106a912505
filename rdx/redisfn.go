package rdx

import (
	"log"
	"time"

	"vastra/globals"

	"github.com/redis/go-redis/v9"
)

// Conn is the shared redis client. Nil when REDIS_URL is unset, in which
// case every helper degrades to a cache miss and the catalog handlers hit
// the commerce backend directly.
var Conn *redis.Client

// Init connects to redis when a URL is configured.
func Init(redisURL, password string) {
	if redisURL == "" {
		log.Println("REDIS_URL not set; catalog cache disabled")
		return
	}
	Conn = redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: password,
		DB:       0,
	})
	if err := Conn.Ping(globals.Ctx).Err(); err != nil {
		log.Printf("redis ping failed, catalog cache disabled: %v", err)
		Conn = nil
	}
}

func RdxGet(key string) (string, error) {
	if Conn == nil {
		return "", redis.Nil
	}
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxSetWithTTL(key, value string, ttl time.Duration) {
	if Conn == nil {
		return
	}
	if err := Conn.Set(globals.Ctx, key, value, ttl).Err(); err != nil {
		log.Println("redis set error:", err)
	}
}
