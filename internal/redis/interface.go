package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so callers depend on an interface
// we control and tests can swap in miniredis-backed clients.
type Client interface {
	redis.UniversalClient
}
