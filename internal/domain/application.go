package domain

import (
	"context"
	"time"
)

// Application and enrollment share one status state machine shape:
// Applied -> {Shortlisted, Rejected}; Shortlisted -> {Hired|Completed,
// Rejected}. Rejected, Hired and Completed are terminal.
const (
	StatusApplied     = "Applied"
	StatusShortlisted = "Shortlisted"
	StatusHired       = "Hired"
	StatusCompleted   = "Completed"
	StatusRejected    = "Rejected"
)

// CanTransition reports whether moving from -> to is permitted.
// acceptedState is StatusHired for applications, StatusCompleted for
// enrollments.
func CanTransition(from, to, acceptedState string) bool {
	switch from {
	case StatusApplied:
		return to == StatusShortlisted || to == StatusRejected
	case StatusShortlisted:
		return to == acceptedState || to == StatusRejected
	}
	// Terminal states allow nothing out.
	return false
}

// Application links a candidate to a job. CVFile holds the uploaded PDF,
// buffered fully in memory and persisted as a binary column.
type Application struct {
	ID          int64     `json:"application_id"`
	JobID       int64     `json:"job_id"`
	CandidateID int64     `json:"candidate_id"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	CVFile      []byte    `json:"-"`

	// Joined data for employer-facing lists
	CandidateName   string              `json:"candidate_name,omitempty"`
	CandidateEmail  string              `json:"candidate_email,omitempty"`
	ExperienceYears int                 `json:"experience_years,omitempty"`
	JobTitle        string              `json:"job_title,omitempty"`
	Answers         []ApplicationAnswer `json:"answers,omitempty"`
}

type ApplicationAnswer struct {
	QuestionID   int64  `json:"question_id"`
	QuestionText string `json:"question_text,omitempty"`
	AnswerText   string `json:"answer_text"`
}

type ApplyInput struct {
	JobID   int64               `json:"job_id"`
	CVFile  []byte              `json:"-"`
	Answers []ApplicationAnswer `json:"answers"`
}

type ApplicationRepository interface {
	// Create relies on the storage-layer uniqueness constraint for the
	// (candidate, job) pair; a duplicate surfaces as a conflict.
	Create(ctx context.Context, app *Application, answers []ApplicationAnswer) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	GetCV(ctx context.Context, id int64) ([]byte, error)
	// JobOwner returns the employer id owning the application's job.
	JobOwner(ctx context.Context, applicationID int64) (int64, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, userID int64, in *ApplyInput) (*Application, error)
	MyApplications(ctx context.Context, userID int64) ([]Application, error)
	ListForJob(ctx context.Context, userID, jobID int64) ([]Application, error)
	// Transition moves an application to Shortlisted, Hired or Rejected,
	// guarded by job ownership and the state machine.
	Transition(ctx context.Context, userID, applicationID int64, to string) error
	DownloadCV(ctx context.Context, userID, applicationID int64) ([]byte, error)
}
