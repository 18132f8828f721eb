// Package cache holds read-through caches for entities that never change
// after they are inserted.
package cache

import (
	"context"
	"fmt"
	"time"
)

// EntityCache stores JSON-encodable values by key.
type EntityCache interface {
	// Get decodes the value stored under key into dst. The boolean is false
	// on a miss.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}

// ClientKey returns the cache key for a client id.
func ClientKey(id int) string {
	return fmt.Sprintf("client:%d", id)
}

// MedicationKey returns the cache key for a medication id.
func MedicationKey(id int) string {
	return fmt.Sprintf("medication:%d", id)
}
