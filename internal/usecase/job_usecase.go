package usecase

import (
	"context"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/profile"
	"jobboard/internal/pkg/logging"
	"jobboard/internal/search"

	"github.com/google/uuid"
)

// JobView is a job decorated with its owner's display profile.
type JobView struct {
	Job   job.Job
	Owner profile.Profile
}

type JobUsecase interface {
	Create(ctx context.Context, actor job.ActorID, f job.Fields) (job.Job, error)
	List(ctx context.Context) ([]JobView, error)
	ListByOwner(ctx context.Context, owner job.ActorID) ([]JobView, error)
	Search(ctx context.Context, c search.Criteria) ([]JobView, error)
	GetByID(ctx context.Context, id uuid.UUID) (JobView, error)
	Like(ctx context.Context, actor job.ActorID, id uuid.UUID) (job.Job, error)
	Apply(ctx context.Context, actor job.ActorID, id uuid.UUID) (job.Job, error)
	Delete(ctx context.Context, actor job.ActorID, id uuid.UUID) error
}

// Jobs orchestrates the job lifecycle. It holds no mutable state of its own:
// concurrent like/apply calls on one job race in the repository and the last
// write of the set wins.
type Jobs struct {
	repo     job.Repository
	enricher OwnerEnricher
	cache    SearchCache
	cacheTTL time.Duration
	logger   *logging.Logger
	now      func() time.Time
}

type JobsOption func(*Jobs)

// WithSearchCache caches filtered search results for ttl.
func WithSearchCache(c SearchCache, ttl time.Duration) JobsOption {
	return func(u *Jobs) {
		u.cache = c
		u.cacheTTL = ttl
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) JobsOption {
	return func(u *Jobs) {
		u.now = now
	}
}

func NewJobUsecase(repo job.Repository, enricher OwnerEnricher, logger *logging.Logger, opts ...JobsOption) *Jobs {
	u := &Jobs{
		repo:     repo,
		enricher: enricher,
		logger:   logger.With("component", "jobs"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Jobs) Create(ctx context.Context, actor job.ActorID, f job.Fields) (job.Job, error) {
	if err := job.Authorize(actor, job.Job{}, job.OpCreate); err != nil {
		return job.Job{}, err
	}

	j, err := job.New(actor, f, u.now())
	if err != nil {
		return job.Job{}, err
	}

	if err := u.repo.Create(ctx, j); err != nil {
		u.logger.Error("create job failed", "job_id", j.ID, "err", err)
		return job.Job{}, err
	}

	u.invalidateSearch(ctx)
	u.logger.Info("job created", "job_id", j.ID, "owner", actor)
	return j, nil
}

func (u *Jobs) List(ctx context.Context) ([]JobView, error) {
	jobs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return u.decorate(ctx, jobs), nil
}

func (u *Jobs) ListByOwner(ctx context.Context, owner job.ActorID) ([]JobView, error) {
	if owner.IsZero() {
		return []JobView{}, nil
	}
	jobs, err := u.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	return u.decorate(ctx, jobs), nil
}

// Search returns the jobs matching c, newest first. Empty criteria list
// everything.
func (u *Jobs) Search(ctx context.Context, c search.Criteria) ([]JobView, error) {
	if c.IsEmpty() {
		return u.List(ctx)
	}

	key, cacheable := u.searchCacheKey(ctx, c)
	if cacheable {
		var cached []job.Job
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			u.logger.Debug("search cache hit", "key", key)
			return u.decorate(ctx, cached), nil
		}
		u.logger.Debug("search cache miss", "key", key)
	}

	jobs, err := u.repo.Search(ctx, c)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := u.cache.SetJSON(ctx, key, jobs, u.cacheTTL); err != nil {
			u.logger.Warn("search cache set failed", "key", key, "err", err)
		}
	}
	return u.decorate(ctx, jobs), nil
}

func (u *Jobs) GetByID(ctx context.Context, id uuid.UUID) (JobView, error) {
	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return JobView{}, err
	}
	return u.decorate(ctx, []job.Job{j})[0], nil
}

// Like flips the actor's like on the job.
func (u *Jobs) Like(ctx context.Context, actor job.ActorID, id uuid.UUID) (job.Job, error) {
	j, err := u.load(ctx, actor, id, job.OpLike)
	if err != nil {
		return job.Job{}, err
	}

	liked := j.ToggleLike(actor)
	j.UpdatedAt = u.now().UTC()
	if err := u.repo.UpdateLikes(ctx, j.ID, j.Likes, j.UpdatedAt); err != nil {
		return job.Job{}, err
	}

	u.invalidateSearch(ctx)
	u.logger.Info("job like toggled", "job_id", j.ID, "actor", actor, "liked", liked)
	return j, nil
}

// Apply adds the actor to the job's applicants. It fails with
// job.ErrAlreadyApplied on a repeated application.
func (u *Jobs) Apply(ctx context.Context, actor job.ActorID, id uuid.UUID) (job.Job, error) {
	j, err := u.load(ctx, actor, id, job.OpApply)
	if err != nil {
		return job.Job{}, err
	}

	if err := j.Apply(actor); err != nil {
		return job.Job{}, err
	}
	j.UpdatedAt = u.now().UTC()
	if err := u.repo.UpdateApplicants(ctx, j.ID, j.Applicants, j.UpdatedAt); err != nil {
		return job.Job{}, err
	}

	u.invalidateSearch(ctx)
	u.logger.Info("job application added", "job_id", j.ID, "actor", actor)
	return j, nil
}

// Delete removes the job permanently. Only the owner may delete.
func (u *Jobs) Delete(ctx context.Context, actor job.ActorID, id uuid.UUID) error {
	j, err := u.load(ctx, actor, id, job.OpDelete)
	if err != nil {
		return err
	}

	if err := u.repo.Delete(ctx, j.ID); err != nil {
		return err
	}

	u.invalidateSearch(ctx)
	u.logger.Info("job deleted", "job_id", j.ID, "actor", actor)
	return nil
}

// load resolves the job and runs the authorization guard. Nothing is written
// before it succeeds.
func (u *Jobs) load(ctx context.Context, actor job.ActorID, id uuid.UUID, op job.Operation) (job.Job, error) {
	if actor.IsZero() {
		return job.Job{}, job.ErrUnauthenticated
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return job.Job{}, err
	}

	if err := job.Authorize(actor, j, op); err != nil {
		u.logger.Warn("job mutation rejected", "job_id", id, "actor", actor, "op", op, "err", err)
		return job.Job{}, err
	}
	return j, nil
}

func (u *Jobs) decorate(ctx context.Context, jobs []job.Job) []JobView {
	owners := make([]string, 0, len(jobs))
	for _, j := range jobs {
		owners = append(owners, j.CreatedBy.String())
	}

	var profiles map[string]profile.Profile
	if u.enricher != nil {
		profiles = u.enricher.Enrich(ctx, owners)
	}

	out := make([]JobView, 0, len(jobs))
	for _, j := range jobs {
		owner, ok := profiles[j.CreatedBy.String()]
		if !ok {
			owner = profile.Unknown(j.CreatedBy.String())
		}
		out = append(out, JobView{Job: j, Owner: owner})
	}
	return out
}

// searchCacheKey keys c under the current generation. It reports false when
// the generation cannot be read; the search then bypasses the cache.
func (u *Jobs) searchCacheKey(ctx context.Context, c search.Criteria) (string, bool) {
	if u.cache == nil {
		return "", false
	}
	gen, err := u.cache.GetInt64(ctx, JobsSearchGenerationKey)
	if err != nil {
		u.logger.Warn("search generation read failed, bypassing cache", "err", err)
		return "", false
	}
	return JobsSearchCacheKey(gen, c), true
}

// invalidateSearch bumps the generation first: a search that fetched before
// the mutation writes under the old generation, which is never read again.
// Deleting the old keys only reclaims memory.
func (u *Jobs) invalidateSearch(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if _, err := u.cache.Incr(ctx, JobsSearchGenerationKey); err != nil {
		u.logger.Warn("search generation bump failed", "err", err)
	}
	if err := u.cache.DeleteByPattern(ctx, JobsSearchPattern); err != nil {
		u.logger.Warn("search cache invalidation failed", "err", err)
	}
}
