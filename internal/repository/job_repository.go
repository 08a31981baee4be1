package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"
	"jobboard/internal/search"

	"github.com/google/uuid"
)

const jobColumns = `id, title, description, location, salary_amount, salary_period, salary_negotiable,
	job_type, tags, skills, created_by, likes, applicants, created_at, updated_at`

type PostgresJobRepository struct {
	db      database.DB
	timeout time.Duration
}

// NewPostgresJobRepository returns a repository whose calls are bounded by
// timeout. A non-positive timeout means 5s.
func NewPostgresJobRepository(db database.DB, timeout time.Duration) *PostgresJobRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &PostgresJobRepository{db: db, timeout: timeout}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	loc, err := json.Marshal(j.Location)
	if err != nil {
		return fmt.Errorf("encode location: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO jobs (`+jobColumns+`, location_text)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		j.ID,
		j.Title,
		j.Description,
		loc,
		j.Salary.Amount,
		string(j.Salary.Period),
		j.Salary.Negotiable,
		string(j.JobType),
		nonNil(j.Tags),
		nonNil(j.Skills),
		j.CreatedBy.String(),
		j.Likes.Strings(),
		j.Applicants.Strings(),
		j.CreatedAt,
		j.UpdatedAt,
		j.Location.String(),
	)
	if err != nil {
		return storageErr("create job", err)
	}
	return nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if database.IsNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, storageErr("get job", err)
	}
	return j, nil
}

func (r *PostgresJobRepository) List(ctx context.Context) ([]job.Job, error) {
	return r.query(ctx, "list jobs", `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC, id DESC`)
}

func (r *PostgresJobRepository) ListByOwner(ctx context.Context, owner job.ActorID) ([]job.Job, error) {
	return r.query(ctx, "list jobs by owner",
		`SELECT `+jobColumns+` FROM jobs WHERE created_by = $1 ORDER BY created_at DESC, id DESC`,
		owner.String(),
	)
}

func (r *PostgresJobRepository) Search(ctx context.Context, c search.Criteria) ([]job.Job, error) {
	where, args := buildSearchFilter(c)
	q := `SELECT ` + jobColumns + ` FROM jobs`
	if where != "" {
		q += ` WHERE ` + where
	}
	q += ` ORDER BY created_at DESC, id DESC`
	return r.query(ctx, "search jobs", q, args...)
}

func (r *PostgresJobRepository) UpdateLikes(ctx context.Context, id uuid.UUID, likes job.ActorSet, at time.Time) error {
	return r.updateSet(ctx, "likes", id, likes, at)
}

func (r *PostgresJobRepository) UpdateApplicants(ctx context.Context, id uuid.UUID, applicants job.ActorSet, at time.Time) error {
	return r.updateSet(ctx, "applicants", id, applicants, at)
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return storageErr("delete job", err)
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

// updateSet overwrites one set column. column is never user input.
func (r *PostgresJobRepository) updateSet(ctx context.Context, column string, id uuid.UUID, set job.ActorSet, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET `+column+` = $2, updated_at = $3 WHERE id = $1`,
		id, set.Strings(), at,
	)
	if err != nil {
		return storageErr("update "+column, err)
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) query(ctx context.Context, op, q string, args ...any) ([]job.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, storageErr(op, err)
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}
	return out, nil
}

// buildSearchFilter translates criteria into a WHERE clause and its
// positional arguments. Text criteria are literal substrings: LIKE wildcards
// in user input are escaped.
func buildSearchFilter(c search.Criteria) (string, []any) {
	var conds []string
	var args []any
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if c.Title != "" {
		conds = append(conds, `title ILIKE `+next(containsPattern(c.Title))+` ESCAPE '\'`)
	}
	if c.Location != "" {
		conds = append(conds, `location_text ILIKE `+next(containsPattern(c.Location))+` ESCAPE '\'`)
	}
	if len(c.Tags) > 0 {
		conds = append(conds, `EXISTS (SELECT 1 FROM unnest(tags) AS t(tag) WHERE lower(btrim(t.tag)) = ANY(`+next(c.LowerTags())+`))`)
	}

	return strings.Join(conds, " AND "), args
}

func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func scanJob(row database.Row) (job.Job, error) {
	var (
		j          job.Job
		loc        []byte
		period     string
		jobType    string
		createdBy  string
		likes      []string
		applicants []string
	)
	if err := row.Scan(
		&j.ID,
		&j.Title,
		&j.Description,
		&loc,
		&j.Salary.Amount,
		&period,
		&j.Salary.Negotiable,
		&jobType,
		&j.Tags,
		&j.Skills,
		&createdBy,
		&likes,
		&applicants,
		&j.CreatedAt,
		&j.UpdatedAt,
	); err != nil {
		return job.Job{}, err
	}

	if len(loc) > 0 {
		if err := json.Unmarshal(loc, &j.Location); err != nil {
			return job.Job{}, fmt.Errorf("decode location: %w", err)
		}
	}
	j.Salary.Period = job.SalaryPeriod(period)
	j.JobType = job.Type(jobType)
	j.CreatedBy = job.ActorID(createdBy)
	j.Likes = job.ActorSetFromStrings(likes)
	j.Applicants = job.ActorSetFromStrings(applicants)
	return j, nil
}

func storageErr(op string, err error) error {
	if errors.Is(err, job.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", job.ErrStorage, op, err)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
