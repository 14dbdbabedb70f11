package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories depend on an
// interface we own rather than the concrete go-redis type.
type Client interface {
	redis.UniversalClient
}
