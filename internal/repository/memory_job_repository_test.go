package repository

import (
	"context"
	"testing"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/search"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedJob(t *testing.T, repo *MemoryJobRepository, owner job.ActorID, title string, created time.Time, tags ...string) job.Job {
	t.Helper()
	j := job.Job{
		ID:         uuid.New(),
		Title:      title,
		Location:   job.TextLocation("Remote"),
		Tags:       tags,
		CreatedBy:  owner,
		Likes:      job.NewActorSet(),
		Applicants: job.NewActorSet(),
		CreatedAt:  created,
		UpdatedAt:  created,
	}
	require.NoError(t, repo.Create(context.Background(), j))
	return j
}

func titles(jobs []job.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Title)
	}
	return out
}

func TestMemoryJobRepository_ListNewestFirst(t *testing.T) {
	repo := NewMemoryJobRepository()
	base := time.Now()
	seedJob(t, repo, "a", "old", base.Add(-time.Hour))
	seedJob(t, repo, "a", "new", base)
	seedJob(t, repo, "b", "mid", base.Add(-time.Minute))

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "mid", "old"}, titles(all))

	mine, err := repo.ListByOwner(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old"}, titles(mine))
}

func TestMemoryJobRepository_Search(t *testing.T) {
	repo := NewMemoryJobRepository()
	now := time.Now()
	seedJob(t, repo, "a", "Go Engineer", now, "go")
	seedJob(t, repo, "a", "Manager", now.Add(-time.Second), "engineer")
	seedJob(t, repo, "a", "Rust Engineer", now.Add(-2*time.Second), "rust")

	got, err := repo.Search(context.Background(), search.Criteria{Title: "engineer"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go Engineer", "Rust Engineer"}, titles(got))

	got, err = repo.Search(context.Background(), search.ParseCriteria("", "", "go,rust"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Go Engineer", "Rust Engineer"}, titles(got))
}

func TestMemoryJobRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryJobRepository()
	j := seedJob(t, repo, "a", "Engineer", time.Now(), "go")

	got, err := repo.GetByID(context.Background(), j.ID)
	require.NoError(t, err)
	got.ToggleLike("x")
	got.Tags[0] = "changed"

	again, err := repo.GetByID(context.Background(), j.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Likes.Len())
	assert.Equal(t, "go", again.Tags[0])
}

func TestMemoryJobRepository_UpdateAndDelete(t *testing.T) {
	repo := NewMemoryJobRepository()
	ctx := context.Background()
	j := seedJob(t, repo, "a", "Engineer", time.Now())
	at := j.CreatedAt.Add(time.Hour)

	require.NoError(t, repo.UpdateLikes(ctx, j.ID, job.NewActorSet("u1"), at))
	require.NoError(t, repo.UpdateApplicants(ctx, j.ID, job.NewActorSet("u2"), at))

	got, err := repo.GetByID(ctx, j.ID)
	require.NoError(t, err)
	assert.True(t, got.Likes.Contains("u1"))
	assert.True(t, got.Applicants.Contains("u2"))
	assert.Equal(t, at, got.UpdatedAt)

	require.NoError(t, repo.Delete(ctx, j.ID))
	_, err = repo.GetByID(ctx, j.ID)
	assert.ErrorIs(t, err, job.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, j.ID), job.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateLikes(ctx, j.ID, job.NewActorSet(), at), job.ErrNotFound)
}
