package domain

import (
	"context"
	"time"
)

// Job status values. Expired is set by the sweeper once expires_at passes;
// visibility checks also treat a past expiry date as closed regardless.
const (
	JobStatusOpen    = "Open"
	JobStatusClosed  = "Closed"
	JobStatusExpired = "Expired"
)

type Job struct {
	ID          int64      `json:"job_id"`
	EmployerID  int64      `json:"employer_id"`
	Title       string     `json:"title" validate:"required,min=3,max=150"`
	Description string     `json:"description" validate:"required"`
	Location    string     `json:"location" validate:"max=150"`
	SalaryRange string     `json:"salary_range" validate:"max=100"`
	Status      string     `json:"status"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	// Joined data for list/detail responses
	CompanyName      string        `json:"company_name,omitempty"`
	ApplicationCount int64         `json:"application_count,omitempty"`
	RequiredSkills   []JobSkill    `json:"required_skills,omitempty"`
	Questions        []JobQuestion `json:"questions,omitempty"`
}

// JobSkill pairs a required skill with the minimum proficiency asked for.
type JobSkill struct {
	SkillID        int64  `json:"skill_id"`
	SkillName      string `json:"skill_name,omitempty"`
	MinProficiency string `json:"min_proficiency"`
}

type JobQuestion struct {
	ID           int64  `json:"question_id"`
	JobID        int64  `json:"job_id"`
	QuestionText string `json:"question_text"`
}

// PostJobInput is the employer payload for creating a job posting.
type PostJobInput struct {
	Title            string     `json:"title" validate:"required,min=3,max=150"`
	Description      string     `json:"description" validate:"required"`
	Location         string     `json:"location" validate:"max=150"`
	SalaryRange      string     `json:"salary_range" validate:"max=100"`
	ExpiresAt        *time.Time `json:"expires_at"`
	SkillIDs         []int64    `json:"skill_ids"`
	MinProficiencies []string   `json:"min_proficiencies"`
	Questions        []string   `json:"questions"`
}

// JobFilter holds the optional, conjunctive catalog criteria. Zero values
// are skipped; they never translate into an exclude-everything predicate.
type JobFilter struct {
	SkillIDs []int64 `json:"skill_ids"` // OR within, AND against the rest
	Location string  `json:"location"`  // case-insensitive substring
	Keyword  string  `json:"keyword"`   // matches title or description
}

type JobRepository interface {
	Create(ctx context.Context, employerID int64, in *PostJobInput) (*Job, error)
	GetByID(ctx context.Context, id int64) (*Job, error)
	// ListOpen returns the candidate-visible catalog: open, unexpired jobs
	// matching the filter, newest first.
	ListOpen(ctx context.Context, filter JobFilter) ([]Job, error)
	ListByEmployer(ctx context.Context, employerID int64) ([]Job, error)
	RequiredSkills(ctx context.Context, jobID int64) ([]JobSkill, error)
	Questions(ctx context.Context, jobID int64) ([]JobQuestion, error)
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}

type JobUsecase interface {
	PostJob(ctx context.Context, userID int64, in *PostJobInput) (*Job, error)
	GetJobDetails(ctx context.Context, jobID int64) (*Job, error)
	BrowseJobs(ctx context.Context, filter JobFilter) ([]Job, error)
	ListMyJobs(ctx context.Context, userID int64) ([]Job, error)
}
