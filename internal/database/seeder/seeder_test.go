package seeder

import (
	"context"
	"testing"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/repository"
	"jobboard/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoJobsSeeder_SeedsOnce(t *testing.T) {
	repo := repository.NewMemoryJobRepository()
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	r := Runner{Seeders: []Seeder{DemoJobsSeeder{Now: func() time.Time { return now }}}}

	require.NoError(t, r.Run(ctx, repo))
	first, err := repo.ListByOwner(ctx, DemoOwner)
	require.NoError(t, err)
	assert.Len(t, first, len(demoJobs()))
	assert.Equal(t, "Backend Engineer (Go)", first[0].Title)

	require.NoError(t, r.Run(ctx, repo))
	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, again, len(first))
}

func TestDemoJobsSeeder_Searchable(t *testing.T) {
	repo := repository.NewMemoryJobRepository()
	require.NoError(t, Runner{Seeders: Defaults()}.Run(context.Background(), repo))

	got, err := repo.Search(context.Background(), search.ParseCriteria("", "jakarta", ""))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, job.TypeFullTime, got[0].JobType)
}

func TestRunner_NilRepository(t *testing.T) {
	assert.Error(t, Runner{Seeders: Defaults()}.Run(context.Background(), nil))
}
