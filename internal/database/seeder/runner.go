package seeder

import (
	"context"
	"fmt"

	"jobboard/internal/domain/job"
)

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, repo job.Repository) error {
	if repo == nil {
		return fmt.Errorf("nil job repository")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, repo); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}
