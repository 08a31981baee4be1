package job

import (
	"math"
	"strings"
)

// Validated is the normalized form of Fields.
type Validated struct {
	Title       string
	Description string
	Location    Location
	Salary      Salary
	JobType     Type
	Tags        []string
	Skills      []string
}

// Validate checks every required field and reports all problems at once.
// Textual fields are trimmed, label sets are de-duplicated case-insensitively
// keeping the first spelling.
func Validate(f Fields) (Validated, error) {
	verr := &ValidationError{}
	out := Validated{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Location:    trimLocation(f.Location),
	}

	if out.Title == "" {
		verr.add("title", "is required")
	}
	if out.Description == "" {
		verr.add("description", "is required")
	}
	if out.Location.IsZero() {
		verr.add("location", "is required")
	}

	switch {
	case f.Salary.Amount == nil:
		verr.add("salary.amount", "is required")
	case math.IsNaN(*f.Salary.Amount) || math.IsInf(*f.Salary.Amount, 0):
		verr.add("salary.amount", "must be a finite number")
	case *f.Salary.Amount < 0:
		verr.add("salary.amount", "must be greater than or equal to 0")
	default:
		out.Salary.Amount = *f.Salary.Amount
	}
	out.Salary.Negotiable = f.Salary.Negotiable

	if strings.TrimSpace(f.Salary.Period) == "" {
		out.Salary.Period = SalaryPeriodYear
	} else if p, err := ParseSalaryPeriod(f.Salary.Period); err != nil {
		verr.add("salary.period", "must be one of Hour, Month, Year")
	} else {
		out.Salary.Period = p
	}

	if strings.TrimSpace(f.JobType) == "" {
		verr.add("jobType", "is required")
	} else if t, err := ParseType(f.JobType); err != nil {
		verr.add("jobType", "must be one of Full Time, Part Time, Internship, Contract")
	} else {
		out.JobType = t
	}

	out.Tags = normalizeLabels(f.Tags)
	if len(out.Tags) == 0 {
		verr.add("tags", "at least one tag is required")
	}
	out.Skills = normalizeLabels(f.Skills)
	if len(out.Skills) == 0 {
		verr.add("skills", "at least one skill is required")
	}

	if err := verr.orNil(); err != nil {
		return Validated{}, err
	}
	return out, nil
}

func trimLocation(l Location) Location {
	if l.IsStructured() {
		return StructuredLocation(
			strings.TrimSpace(l.Country),
			strings.TrimSpace(l.City),
			strings.TrimSpace(l.Address),
		)
	}
	return TextLocation(strings.TrimSpace(l.Text))
}

func normalizeLabels(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		k := strings.ToLower(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}
