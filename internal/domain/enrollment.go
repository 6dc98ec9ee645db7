package domain

import (
	"context"
	"time"
)

// Enrollment links a candidate to a course. Same state machine shape as
// Application, with Completed as the accepted terminal state.
type Enrollment struct {
	ID          int64     `json:"enrollment_id"`
	CourseID    int64     `json:"course_id"`
	CandidateID int64     `json:"candidate_id"`
	Status      string    `json:"status"`
	EnrolledAt  time.Time `json:"enrolled_at"`

	// Joined data for trainer-facing lists
	CourseTitle    string `json:"course_title,omitempty"`
	CandidateName  string `json:"candidate_name,omitempty"`
	CandidateEmail string `json:"candidate_email,omitempty"`
	CandidatePhone string `json:"candidate_phone,omitempty"`
}

type EnrollmentRepository interface {
	// Create relies on the storage-layer uniqueness constraint for the
	// (candidate, course) pair; a duplicate surfaces as a conflict.
	Create(ctx context.Context, e *Enrollment) error
	GetByID(ctx context.Context, id int64) (*Enrollment, error)
	ListByTrainer(ctx context.Context, trainerID int64) ([]Enrollment, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]Enrollment, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	// CourseOwner returns the trainer id owning the enrollment's course.
	CourseOwner(ctx context.Context, enrollmentID int64) (int64, error)
}

type EnrollmentUsecase interface {
	Enroll(ctx context.Context, userID, courseID int64) (*Enrollment, error)
	MyEnrollments(ctx context.Context, userID int64) ([]Enrollment, error)
	ListForTrainer(ctx context.Context, userID int64) ([]Enrollment, error)
	// Transition moves an enrollment to Shortlisted, Completed or Rejected,
	// guarded by course ownership and the state machine.
	Transition(ctx context.Context, userID, enrollmentID int64, to string) error
}
