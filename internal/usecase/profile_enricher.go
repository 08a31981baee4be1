package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"jobboard/internal/domain/profile"
	"jobboard/internal/pkg/logging"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// OwnerEnricher resolves owner ids to display profiles. It never fails: an
// owner that cannot be resolved maps to profile.Unknown.
type OwnerEnricher interface {
	Enrich(ctx context.Context, ownerIDs []string) map[string]profile.Profile
}

// ProfileResolver looks up a single profile and reports why it could not.
type ProfileResolver interface {
	Resolve(ctx context.Context, id string) (profile.Profile, error)
}

// ProfileCache stores JSON encoded profiles.
type ProfileCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

const (
	defaultEnrichConcurrency = 8
	defaultLookupTimeout     = 5 * time.Second
)

type ProfileEnricher struct {
	dir           profile.Directory
	cache         ProfileCache
	ttl           time.Duration
	concurrency   int
	lookupTimeout time.Duration
	logger        *logging.Logger

	group singleflight.Group
}

type EnricherOption func(*ProfileEnricher)

// WithLookupTimeout bounds a single directory lookup.
func WithLookupTimeout(d time.Duration) EnricherOption {
	return func(e *ProfileEnricher) {
		if d > 0 {
			e.lookupTimeout = d
		}
	}
}

// NewProfileEnricher builds an enricher over dir. cache may be nil.
func NewProfileEnricher(dir profile.Directory, cache ProfileCache, ttl time.Duration, logger *logging.Logger, opts ...EnricherOption) *ProfileEnricher {
	e := &ProfileEnricher{
		dir:           dir,
		cache:         cache,
		ttl:           ttl,
		concurrency:   defaultEnrichConcurrency,
		lookupTimeout: defaultLookupTimeout,
		logger:        logger.With("component", "profile_enricher"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *ProfileEnricher) Enrich(ctx context.Context, ownerIDs []string) map[string]profile.Profile {
	out := make(map[string]profile.Profile, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return out
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	seen := make(map[string]struct{}, len(ownerIDs))
	for _, id := range ownerIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		id := id
		g.Go(func() error {
			p := e.lookup(gctx, id)
			mu.Lock()
			out[id] = p
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (e *ProfileEnricher) lookup(ctx context.Context, id string) profile.Profile {
	if e == nil || e.dir == nil || id == "" {
		return profile.Unknown(id)
	}

	p, err := e.Resolve(ctx, id)
	if err != nil {
		if ctx.Err() == nil {
			e.logger.Warn("owner lookup failed, using placeholder", "owner_id", id, "err", err)
		}
		return profile.Unknown(id)
	}
	return p
}

// Resolve returns the profile of id. Without a directory every id is
// profile.ErrNotFound. A caller that gives up gets its context error while
// the shared lookup carries on for the others.
func (e *ProfileEnricher) Resolve(ctx context.Context, id string) (profile.Profile, error) {
	if e == nil || e.dir == nil || id == "" {
		return profile.Profile{}, profile.ErrNotFound
	}

	if e.cache != nil {
		var cached profile.Profile
		hit, err := e.cache.GetJSON(ctx, profileCacheKey(id), &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	ch := e.group.DoChan(id, func() (any, error) {
		return e.fetch(context.WithoutCancel(ctx), id)
	})

	select {
	case <-ctx.Done():
		return profile.Profile{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return profile.Profile{}, res.Err
		}
		p, ok := res.Val.(profile.Profile)
		if !ok {
			return profile.Profile{}, errors.New("profile lookup returned no profile")
		}
		return p, nil
	}
}

// fetch runs once per id for all concurrent callers, so it is detached from
// any single caller's cancellation and bounded by lookupTimeout instead.
func (e *ProfileEnricher) fetch(ctx context.Context, id string) (profile.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, e.lookupTimeout)
	defer cancel()

	p, err := e.dir.Lookup(ctx, id)
	if err != nil {
		return profile.Profile{}, err
	}
	if p.ID == "" {
		p.ID = id
	}
	if p.DisplayName == "" {
		p.DisplayName = profile.UnknownDisplayName
	}
	if e.cache != nil {
		if err := e.cache.SetJSON(ctx, profileCacheKey(id), p, e.ttl); err != nil {
			e.logger.Debug("profile cache set failed", "owner_id", id, "err", err)
		}
	}
	return p, nil
}

func profileCacheKey(id string) string {
	return "profile:" + id
}
