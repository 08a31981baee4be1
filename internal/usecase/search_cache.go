package usecase

import (
	"context"
	"time"
)

// SearchCache stores JSON encoded search results. Keys carry a generation
// counter that every mutation bumps, so a result fetched before a mutation is
// never served after it.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error

	GetInt64(ctx context.Context, key string) (int64, error)
	Incr(ctx context.Context, key string) (int64, error)
}
