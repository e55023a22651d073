package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"       // Key formatting
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Cache keys for complaint reads
const (
	complaintItemPrefix = "complaints:item:"
	complaintListPrefix = "complaints:list:"
	complaintListGenKey = "complaints:list:gen" // Bumped on every complaint write
)

// GetCache retrieves a value from Redis and unmarshals it into dest.
// A nil client behaves like an empty cache.
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	if rdb == nil {
		return false, nil
	}
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetCache sets a value in Redis with a specified TTL, replacing any existing value
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	if rdb == nil {
		return nil
	}
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// AddCache stores value only when key is absent. Read-through fills use it
// so a slow reader never overwrites what a writer put there after it.
func AddCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) (bool, error) {
	if rdb == nil {
		return false, nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	return rdb.SetNX(ctx, key, b, ttl).Result()
}

// ComplaintKey is the cache key of a single complaint
func ComplaintKey(id uint) string {
	return complaintItemPrefix + strconv.FormatUint(uint64(id), 10)
}

// ComplaintListKey is the cache key of a complaint listing for the given
// filter within generation gen
func ComplaintListKey(gen int64, resolved *bool) string {
	prefix := complaintListPrefix + strconv.FormatInt(gen, 10) + ":"
	if resolved == nil {
		return prefix + "all"
	}
	return prefix + "resolved=" + strconv.FormatBool(*resolved)
}

// ListGeneration returns the current listing generation, 0 before the first write
func ListGeneration(ctx context.Context, rdb *redis.Client) (int64, error) {
	if rdb == nil {
		return 0, nil
	}
	gen, err := rdb.Get(ctx, complaintListGenKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return gen, err
}

// BumpListGeneration moves listings to a new generation. Entries filled under
// an older generation are never read again and expire with their TTL.
func BumpListGeneration(ctx context.Context, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}
	return rdb.Incr(ctx, complaintListGenKey).Err()
}
