package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces every key this service writes, so the ledger's
// idempotency and lock entries never collide with other tenants of the same
// Redis instance.
const DefaultKeyPrefix = "payledger"

// Options configures the shared client.
type Options struct {
	URL      string
	Password string
	// KeyPrefix overrides DefaultKeyPrefix when set.
	KeyPrefix string
}

var (
	client *redis.Client
	prefix = DefaultKeyPrefix
)

// Init connects the shared client and verifies the connection with a ping.
func Init(o Options) error {
	opts, err := redis.ParseURL(o.URL)
	if err != nil {
		return err
	}

	if o.Password != "" {
		opts.Password = o.Password
	}
	if o.KeyPrefix != "" {
		prefix = o.KeyPrefix
	}

	client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return client.Ping(ctx).Err()
}

// SetClient sets the Redis client (used for testing)
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the Redis client
func GetClient() *redis.Client {
	return client
}

func namespaced(key string) string {
	return prefix + ":" + key
}

// Set stores a key-value pair with expiration
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return client.Set(ctx, namespaced(key), value, expiration).Err()
}

// Get retrieves a value by key
func Get(ctx context.Context, key string) (string, error) {
	return client.Get(ctx, namespaced(key)).Result()
}

// Del removes a key
func Del(ctx context.Context, key string) error {
	return client.Del(ctx, namespaced(key)).Err()
}

// SetNX sets a key only if it does not exist
func SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return client.SetNX(ctx, namespaced(key), value, expiration).Result()
}
