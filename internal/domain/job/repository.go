package job

import (
	"context"
	"time"

	"jobboard/internal/search"

	"github.com/google/uuid"
)

// Repository persists jobs. Implementations return ErrNotFound for unknown ids
// and wrap transport failures with ErrStorage. Lists are ordered newest first.
type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	List(ctx context.Context) ([]Job, error)
	ListByOwner(ctx context.Context, owner ActorID) ([]Job, error)
	Search(ctx context.Context, c search.Criteria) ([]Job, error)

	// UpdateLikes and UpdateApplicants overwrite the whole set column and
	// stamp updated_at with at.
	UpdateLikes(ctx context.Context, id uuid.UUID, likes ActorSet, at time.Time) error
	UpdateApplicants(ctx context.Context, id uuid.UUID, applicants ActorSet, at time.Time) error

	Delete(ctx context.Context, id uuid.UUID) error
}
