package seeder

import (
	"context"

	"jobboard/internal/domain/job"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, repo job.Repository) error
}
