package dto

import (
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/profile"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Location        job.Location   `json:"location"`
	Salary          SalaryResponse `json:"salary"`
	JobType         job.Type       `json:"jobType"`
	Tags            []string       `json:"tags"`
	Skills          []string       `json:"skills"`
	CreatedBy       OwnerResponse  `json:"createdBy"`
	Likes           []string       `json:"likes"`
	LikesCount      int            `json:"likesCount"`
	Applicants      []string       `json:"applicants"`
	ApplicantsCount int            `json:"applicantsCount"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

type SalaryResponse struct {
	Amount     float64          `json:"amount"`
	Period     job.SalaryPeriod `json:"period"`
	Negotiable bool             `json:"negotiable"`
}

// OwnerResponse carries the display fields only on enriched reads.
type OwnerResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		Salary: SalaryResponse{
			Amount:     j.Salary.Amount,
			Period:     j.Salary.Period,
			Negotiable: j.Salary.Negotiable,
		},
		JobType:         j.JobType,
		Tags:            nonNil(j.Tags),
		Skills:          nonNil(j.Skills),
		CreatedBy:       OwnerResponse{ID: j.CreatedBy.String()},
		Likes:           j.Likes.Strings(),
		LikesCount:      j.Likes.Len(),
		Applicants:      j.Applicants.Strings(),
		ApplicantsCount: j.Applicants.Len(),
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}

func NewEnrichedJobResponse(j job.Job, owner profile.Profile) JobResponse {
	res := NewJobResponse(j)
	res.CreatedBy.Name = owner.DisplayName
	res.CreatedBy.ProfileImage = owner.AvatarURL
	return res
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
