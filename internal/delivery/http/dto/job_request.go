package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"jobboard/internal/domain/job"
)

// CreateJobRequest accepts salary either as an object or, as older clients
// send it, as a bare number with salaryType and negotiable alongside.
type CreateJobRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    job.Location    `json:"location"`
	Salary      json.RawMessage `json:"salary"`
	SalaryType  string          `json:"salaryType"`
	Negotiable  *bool           `json:"negotiable"`
	JobType     string          `json:"jobType"`
	Tags        []string        `json:"tags"`
	Skills      []string        `json:"skills"`
}

type SalaryRequest struct {
	Amount     *float64 `json:"amount"`
	Period     string   `json:"period"`
	Negotiable *bool    `json:"negotiable"`
}

func (r CreateJobRequest) Fields() (job.Fields, error) {
	salary, err := r.salary()
	if err != nil {
		return job.Fields{}, err
	}
	return job.Fields{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Salary:      salary,
		JobType:     r.JobType,
		Tags:        r.Tags,
		Skills:      r.Skills,
	}, nil
}

func (r CreateJobRequest) salary() (job.SalaryInput, error) {
	in := job.SalaryInput{Period: r.SalaryType}
	if r.Negotiable != nil {
		in.Negotiable = *r.Negotiable
	}

	raw := bytes.TrimSpace(r.Salary)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return in, nil
	}

	if raw[0] == '{' {
		var s SalaryRequest
		if err := json.Unmarshal(raw, &s); err != nil {
			return job.SalaryInput{}, fmt.Errorf("salary: %w", err)
		}
		in.Amount = s.Amount
		if s.Period != "" {
			in.Period = s.Period
		}
		if s.Negotiable != nil {
			in.Negotiable = *s.Negotiable
		}
		return in, nil
	}

	var amount float64
	if err := json.Unmarshal(raw, &amount); err != nil {
		return job.SalaryInput{}, fmt.Errorf("salary: %w", err)
	}
	in.Amount = &amount
	return in, nil
}
