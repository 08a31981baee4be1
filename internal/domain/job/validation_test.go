package job

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	out := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, f.Field)
	}
	return out
}

func TestValidate_ReportsEveryMissingField(t *testing.T) {
	_, err := Validate(Fields{})
	require.ErrorIs(t, err, ErrValidation)

	assert.ElementsMatch(t, []string{
		"title", "description", "location", "salary.amount", "jobType", "tags", "skills",
	}, fieldNames(t, err))
}

func TestValidate_NegativeSalary(t *testing.T) {
	f := validFields()
	f.Salary.Amount = amount(-5)

	_, err := Validate(f)
	assert.Equal(t, []string{"salary.amount"}, fieldNames(t, err))
}

func TestValidate_ZeroSalaryAllowed(t *testing.T) {
	f := validFields()
	f.Salary.Amount = amount(0)

	v, err := Validate(f)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v.Salary.Amount)
}

func TestValidate_NonFiniteSalary(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1)} {
		f := validFields()
		f.Salary.Amount = amount(v)
		_, err := Validate(f)
		assert.Equal(t, []string{"salary.amount"}, fieldNames(t, err))
	}
}

func TestValidate_UnknownEnumerations(t *testing.T) {
	f := validFields()
	f.JobType = "Freelance"
	f.Salary.Period = "fortnight"

	_, err := Validate(f)
	assert.ElementsMatch(t, []string{"jobType", "salary.period"}, fieldNames(t, err))
}

func TestValidate_NormalizesInput(t *testing.T) {
	f := validFields()
	f.Title = "  Backend Engineer  "
	f.JobType = "part_time"
	f.Salary.Period = "monthly"
	f.Salary.Negotiable = true
	f.Tags = []string{" Go ", "go", "", "Rust"}
	f.Skills = []string{"SQL", "sql "}

	v, err := Validate(f)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", v.Title)
	assert.Equal(t, TypePartTime, v.JobType)
	assert.Equal(t, SalaryPeriodMonth, v.Salary.Period)
	assert.True(t, v.Salary.Negotiable)
	assert.Equal(t, []string{"Go", "Rust"}, v.Tags)
	assert.Equal(t, []string{"SQL"}, v.Skills)
}

func TestValidate_BlankLabelsDoNotCount(t *testing.T) {
	f := validFields()
	f.Tags = []string{" ", ""}

	_, err := Validate(f)
	assert.Equal(t, []string{"tags"}, fieldNames(t, err))
}

func TestValidate_WhitespaceLocationIsMissing(t *testing.T) {
	f := validFields()
	f.Location = TextLocation("   ")

	_, err := Validate(f)
	assert.Equal(t, []string{"location"}, fieldNames(t, err))
}

func TestValidationError_Message(t *testing.T) {
	f := validFields()
	f.Title = ""
	_, err := Validate(f)
	assert.EqualError(t, err, "validation failed: title: is required")
}
