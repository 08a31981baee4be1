package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/profile"
	"jobboard/internal/repository"
	"jobboard/internal/search"

	"github.com/google/uuid"
)

type fakeCache struct {
	mu       sync.Mutex
	data     map[string][]byte
	counters map[string]int64
	sets     int
	deletes  int
	getErr   error
	incrErr  error
	purgeErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte), counters: make(map[string]int64)}
}

func (c *fakeCache) GetInt64(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return 0, c.getErr
	}
	return c.counters[key], nil
}

func (c *fakeCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.incrErr != nil {
		return 0, c.incrErr
	}
	c.counters[key]++
	return c.counters[key], nil
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	c.sets++
	return nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes++
	if c.purgeErr != nil {
		return c.purgeErr
	}
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

func (c *fakeCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// fakeEnricher names every owner "name:<id>" except those in missing, which
// are left out of the result.
type fakeEnricher struct {
	missing map[string]bool
}

func (e fakeEnricher) Enrich(_ context.Context, ids []string) map[string]profile.Profile {
	out := make(map[string]profile.Profile, len(ids))
	for _, id := range ids {
		if e.missing[id] {
			continue
		}
		out[id] = profile.Profile{ID: id, DisplayName: "name:" + id}
	}
	return out
}

// fakeDirectory answers from profiles. With gate set, a lookup waits for the
// gate to close or for its context to end.
type fakeDirectory struct {
	profiles map[string]profile.Profile
	err      error
	delay    time.Duration
	gate     chan struct{}
	calls    atomic.Int32
}

func (d *fakeDirectory) Lookup(ctx context.Context, id string) (profile.Profile, error) {
	d.calls.Add(1)
	if d.delay > 0 {
		time.Sleep(d.delay)
	}
	if d.gate != nil {
		select {
		case <-d.gate:
		case <-ctx.Done():
			return profile.Profile{}, ctx.Err()
		}
	}
	if d.err != nil {
		return profile.Profile{}, d.err
	}
	p, ok := d.profiles[id]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

// flakyRepo fails the set updates with err.
type flakyRepo struct {
	*repository.MemoryJobRepository
	err error
}

func (r flakyRepo) UpdateLikes(ctx context.Context, id uuid.UUID, likes job.ActorSet, at time.Time) error {
	if r.err != nil {
		return r.err
	}
	return r.MemoryJobRepository.UpdateLikes(ctx, id, likes, at)
}

func (r flakyRepo) UpdateApplicants(ctx context.Context, id uuid.UUID, applicants job.ActorSet, at time.Time) error {
	if r.err != nil {
		return r.err
	}
	return r.MemoryJobRepository.UpdateApplicants(ctx, id, applicants, at)
}

// gatedSearchRepo holds the first Search after it has read the repository
// until release is closed.
type gatedSearchRepo struct {
	*repository.MemoryJobRepository
	fetched chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedSearchRepo() *gatedSearchRepo {
	return &gatedSearchRepo{
		MemoryJobRepository: repository.NewMemoryJobRepository(),
		fetched:             make(chan struct{}),
		release:             make(chan struct{}),
	}
}

func (r *gatedSearchRepo) Search(ctx context.Context, c search.Criteria) ([]job.Job, error) {
	jobs, err := r.MemoryJobRepository.Search(ctx, c)
	r.once.Do(func() { close(r.fetched) })
	<-r.release
	return jobs, err
}
