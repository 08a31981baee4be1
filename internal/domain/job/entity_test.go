package job

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(v float64) *float64 { return &v }

func validFields() Fields {
	return Fields{
		Title:       "Backend Engineer",
		Description: "Build services",
		Location:    TextLocation("Remote"),
		Salary:      SalaryInput{Amount: amount(1000)},
		JobType:     "Full Time",
		Tags:        []string{"engineering"},
		Skills:      []string{"Go"},
	}
}

func TestNew_AssignsOwnerAndEmptySets(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("X", 3600))

	j, err := New("user_1", validFields(), now)
	require.NoError(t, err)

	assert.NotEqual(t, [16]byte{}, [16]byte(j.ID))
	assert.Equal(t, ActorID("user_1"), j.CreatedBy)
	assert.Equal(t, 0, j.Likes.Len())
	assert.Equal(t, 0, j.Applicants.Len())
	assert.Equal(t, now.UTC(), j.CreatedAt)
	assert.Equal(t, j.CreatedAt, j.UpdatedAt)
	assert.Equal(t, TypeFullTime, j.JobType)
	assert.Equal(t, SalaryPeriodYear, j.Salary.Period)
}

func TestNew_RequiresActor(t *testing.T) {
	_, err := New("", validFields(), time.Now())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestNew_UniqueIDs(t *testing.T) {
	a, err := New("user_1", validFields(), time.Now())
	require.NoError(t, err)
	b, err := New("user_1", validFields(), time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestToggleLike_IsAnInvolution(t *testing.T) {
	j, err := New("owner", validFields(), time.Now())
	require.NoError(t, err)

	assert.True(t, j.ToggleLike("user_2"))
	assert.True(t, j.Likes.Contains("user_2"))
	assert.Equal(t, 1, j.Likes.Len())

	assert.False(t, j.ToggleLike("user_2"))
	assert.False(t, j.Likes.Contains("user_2"))
	assert.Equal(t, 0, j.Likes.Len())
}

func TestToggleLike_OwnerMayLikeOwnJob(t *testing.T) {
	j, err := New("owner", validFields(), time.Now())
	require.NoError(t, err)

	assert.True(t, j.ToggleLike("owner"))
}

func TestApply_RejectsSecondApplication(t *testing.T) {
	j, err := New("owner", validFields(), time.Now())
	require.NoError(t, err)

	require.NoError(t, j.Apply("user_3"))
	assert.ErrorIs(t, j.Apply("user_3"), ErrAlreadyApplied)
	assert.Equal(t, []string{"user_3"}, j.Applicants.Strings())
}

func TestApply_OnZeroValueJob(t *testing.T) {
	var j Job
	require.NoError(t, j.Apply("user_3"))
	assert.True(t, j.Applicants.Contains("user_3"))
}

func TestClone_DoesNotAlias(t *testing.T) {
	j, err := New("owner", validFields(), time.Now())
	require.NoError(t, err)

	c := j.Clone()
	c.ToggleLike("user_4")
	c.Tags[0] = "changed"

	assert.Equal(t, 0, j.Likes.Len())
	assert.Equal(t, "engineering", j.Tags[0])
}

func TestDocument_UsesLocationText(t *testing.T) {
	f := validFields()
	f.Location = StructuredLocation("Indonesia", "Jakarta", "Jl. Sudirman 1")
	j, err := New("owner", f, time.Now())
	require.NoError(t, err)

	d := j.Document()
	assert.Equal(t, "Backend Engineer", d.Title)
	assert.Equal(t, "Jl. Sudirman 1, Jakarta, Indonesia", d.Location)
	assert.Equal(t, []string{"engineering"}, d.Tags)
}
