package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/search"

	"github.com/google/uuid"
)

// MemoryJobRepository keeps jobs in process. It evaluates search criteria with
// the same predicate the Postgres filter encodes and is used for local runs
// and tests.
type MemoryJobRepository struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]job.Job
}

func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{jobs: make(map[uuid.UUID]job.Job)}
}

func (r *MemoryJobRepository) Create(_ context.Context, j job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.jobs[j.ID] = j.Clone()
	return nil
}

func (r *MemoryJobRepository) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j.Clone(), nil
}

func (r *MemoryJobRepository) List(_ context.Context) ([]job.Job, error) {
	return r.filter(func(job.Job) bool { return true }), nil
}

func (r *MemoryJobRepository) ListByOwner(_ context.Context, owner job.ActorID) ([]job.Job, error) {
	return r.filter(func(j job.Job) bool { return j.CreatedBy == owner }), nil
}

func (r *MemoryJobRepository) Search(_ context.Context, c search.Criteria) ([]job.Job, error) {
	return r.filter(func(j job.Job) bool { return c.Matches(j.Document()) }), nil
}

func (r *MemoryJobRepository) UpdateLikes(_ context.Context, id uuid.UUID, likes job.ActorSet, at time.Time) error {
	return r.update(id, func(j *job.Job) {
		j.Likes = likes.Clone()
		j.UpdatedAt = at
	})
}

func (r *MemoryJobRepository) UpdateApplicants(_ context.Context, id uuid.UUID, applicants job.ActorSet, at time.Time) error {
	return r.update(id, func(j *job.Job) {
		j.Applicants = applicants.Clone()
		j.UpdatedAt = at
	})
}

func (r *MemoryJobRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return job.ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *MemoryJobRepository) update(id uuid.UUID, fn func(j *job.Job)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.jobs[id]
	if !ok {
		return job.ErrNotFound
	}
	fn(&j)
	r.jobs[id] = j
	return nil
}

func (r *MemoryJobRepository) filter(keep func(job.Job) bool) []job.Job {
	r.mu.RLock()
	out := make([]job.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		if keep(j) {
			out = append(out, j.Clone())
		}
	}
	r.mu.RUnlock()

	sortNewestFirst(out)
	return out
}

func sortNewestFirst(jobs []job.Job) {
	sort.Slice(jobs, func(a, b int) bool {
		if !jobs[a].CreatedAt.Equal(jobs[b].CreatedAt) {
			return jobs[a].CreatedAt.After(jobs[b].CreatedAt)
		}
		return jobs[a].ID.String() > jobs[b].ID.String()
	})
}
