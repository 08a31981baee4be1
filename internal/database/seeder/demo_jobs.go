package seeder

import (
	"context"
	"time"

	"jobboard/internal/domain/job"
)

// DemoOwner owns every seeded posting.
const DemoOwner job.ActorID = "seed_demo"

// DemoJobsSeeder inserts a handful of sample postings for local development.
// It does nothing once the demo owner has postings.
type DemoJobsSeeder struct {
	Now func() time.Time
}

func (DemoJobsSeeder) Name() string { return "demo_jobs" }

func (s DemoJobsSeeder) Run(ctx context.Context, repo job.Repository) error {
	existing, err := repo.ListByOwner(ctx, DemoOwner)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now()
	}

	for i, f := range demoJobs() {
		// Distinct timestamps keep the seeded order stable.
		j, err := job.New(DemoOwner, f, now.Add(-time.Duration(i)*time.Minute))
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, j); err != nil {
			return err
		}
	}
	return nil
}

func salary(v float64) *float64 { return &v }

func demoJobs() []job.Fields {
	return []job.Fields{
		{
			Title:       "Backend Engineer (Go)",
			Description: "Build and maintain Go services, REST APIs, and PostgreSQL-backed systems.",
			Location:    job.StructuredLocation("Indonesia", "Jakarta", ""),
			Salary:      job.SalaryInput{Amount: salary(24000), Period: "year"},
			JobType:     "Full Time",
			Tags:        []string{"engineering", "backend"},
			Skills:      []string{"Go", "PostgreSQL", "Redis"},
		},
		{
			Title:       "Fullstack Engineer (React + Go)",
			Description: "Develop web apps with React/TypeScript and backend services in Go.",
			Location:    job.StructuredLocation("Indonesia", "Bandung", ""),
			Salary:      job.SalaryInput{Amount: salary(2000), Period: "month", Negotiable: true},
			JobType:     "Full Time",
			Tags:        []string{"engineering", "frontend"},
			Skills:      []string{"Go", "React", "TypeScript"},
		},
		{
			Title:       "DevOps Engineer",
			Description: "Operate CI/CD, Docker, Kubernetes, and cloud infrastructure for production workloads.",
			Location:    job.TextLocation("Remote"),
			Salary:      job.SalaryInput{Amount: salary(35), Period: "hour"},
			JobType:     "Contract",
			Tags:        []string{"operations"},
			Skills:      []string{"Docker", "Kubernetes", "AWS"},
		},
		{
			Title:       "Data Engineering Intern",
			Description: "Help build data pipelines and tune PostgreSQL for analytics.",
			Location:    job.StructuredLocation("Indonesia", "Surabaya", ""),
			Salary:      job.SalaryInput{Amount: salary(500), Period: "month"},
			JobType:     "Internship",
			Tags:        []string{"data", "internship"},
			Skills:      []string{"SQL", "Python"},
		},
		{
			Title:       "QA Automation Engineer",
			Description: "Write automated tests for APIs and web apps, integrate tests into CI pipelines.",
			Location:    job.TextLocation("Remote"),
			Salary:      job.SalaryInput{Amount: salary(1500), Period: "month"},
			JobType:     "Part Time",
			Tags:        []string{"engineering", "quality"},
			Skills:      []string{"Testing", "CI"},
		},
	}
}
