// Package cache keeps hot postal-code lookups in Redis.
package cache

import (
	"chargemap/pkg/domain"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Options captures the settings for establishing a Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, opts Options) (*redis.Client, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return client, nil
}

// PostalCodes maps postal-code numbers onto their stored ids.
// Key format: postal_code:<number>
type PostalCodes struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPostalCodes wraps client. Entries expire after ttl; zero keeps them forever.
func NewPostalCodes(client *redis.Client, ttl time.Duration) *PostalCodes {
	return &PostalCodes{client: client, ttl: ttl}
}

// PostalCodeID returns the cached id of number and whether it was present.
func (c *PostalCodes) PostalCodeID(ctx context.Context, number int) (domain.PostalCodeID, bool, error) {
	id, err := c.client.Get(ctx, key(number)).Int64()
	switch {
	case errors.Is(err, redis.Nil):
		return 0, false, nil
	case err != nil:
		return 0, false, fmt.Errorf("could not get postal code %d from cache: %w", number, err)
	}

	return domain.PostalCodeID(id), true, nil
}

// RememberPostalCode caches the id of number.
func (c *PostalCodes) RememberPostalCode(ctx context.Context, number int, id domain.PostalCodeID) error {
	if err := c.client.Set(ctx, key(number), int64(id), c.ttl).Err(); err != nil {
		return fmt.Errorf("could not cache postal code %d: %w", number, err)
	}

	return nil
}

func key(number int) string {
	return "postal_code:" + strconv.Itoa(number)
}
