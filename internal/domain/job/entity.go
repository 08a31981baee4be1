package job

import (
	"time"

	"jobboard/internal/search"

	"github.com/google/uuid"
)

// ActorID is the opaque identity of an authenticated caller. Ids are compared
// as plain strings.
type ActorID string

func (a ActorID) IsZero() bool {
	return a == ""
}

func (a ActorID) String() string {
	return string(a)
}

type Job struct {
	ID          uuid.UUID
	Title       string
	Description string
	Location    Location
	Salary      Salary
	JobType     Type
	Tags        []string
	Skills      []string
	CreatedBy   ActorID
	Likes       ActorSet
	Applicants  ActorSet
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Salary struct {
	Amount     float64
	Period     SalaryPeriod
	Negotiable bool
}

// Fields is the caller supplied part of a job. Everything else is assigned by
// the service. Enumerations arrive as raw strings and are parsed by Validate.
type Fields struct {
	Title       string
	Description string
	Location    Location
	Salary      SalaryInput
	JobType     string
	Tags        []string
	Skills      []string
}

// SalaryInput keeps Amount optional so a missing amount can be told apart
// from zero.
type SalaryInput struct {
	Amount     *float64
	Period     string
	Negotiable bool
}

// New builds a job owned by actor from fields. It either returns a fully valid
// job or a *ValidationError.
func New(actor ActorID, f Fields, now time.Time) (Job, error) {
	if actor.IsZero() {
		return Job{}, ErrUnauthenticated
	}

	norm, err := Validate(f)
	if err != nil {
		return Job{}, err
	}

	now = now.UTC()
	return Job{
		ID:          uuid.New(),
		Title:       norm.Title,
		Description: norm.Description,
		Location:    norm.Location,
		Salary:      norm.Salary,
		JobType:     norm.JobType,
		Tags:        norm.Tags,
		Skills:      norm.Skills,
		CreatedBy:   actor,
		Likes:       NewActorSet(),
		Applicants:  NewActorSet(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ToggleLike flips actor's membership in the likes set and reports whether the
// actor likes the job afterwards.
func (j *Job) ToggleLike(actor ActorID) bool {
	if j.Likes == nil {
		j.Likes = NewActorSet()
	}
	if j.Likes.Contains(actor) {
		j.Likes.Remove(actor)
		return false
	}
	j.Likes.Add(actor)
	return true
}

// Apply adds actor to the applicants. A second application by the same actor
// is rejected with ErrAlreadyApplied and leaves the job untouched.
func (j *Job) Apply(actor ActorID) error {
	if j.Applicants == nil {
		j.Applicants = NewActorSet()
	}
	if j.Applicants.Contains(actor) {
		return ErrAlreadyApplied
	}
	j.Applicants.Add(actor)
	return nil
}

// Clone returns a deep copy so callers can mutate without aliasing stored state.
func (j Job) Clone() Job {
	out := j
	out.Tags = append([]string(nil), j.Tags...)
	out.Skills = append([]string(nil), j.Skills...)
	out.Likes = j.Likes.Clone()
	out.Applicants = j.Applicants.Clone()
	return out
}

// Document projects the job onto the fields the search engine matches.
func (j Job) Document() search.Document {
	return search.Document{
		Title:    j.Title,
		Location: j.Location.String(),
		Tags:     j.Tags,
	}
}
