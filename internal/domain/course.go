package domain

import (
	"context"
	"time"
)

// Course delivery modes. ModeAll is a filter-only sentinel meaning
// "no constraint"; it is never stored on a course.
const (
	CourseModeAll     = "All"
	CourseModeOnline  = "Online"
	CourseModeOffline = "Offline"
	CourseModeHybrid  = "Hybrid"
)

type Course struct {
	ID           int64     `json:"course_id"`
	TrainerID    int64     `json:"trainer_id"`
	Title        string    `json:"title" validate:"required,min=3,max=150"`
	Description  string    `json:"description" validate:"max=2000"`
	DurationDays int       `json:"duration_days" validate:"gte=1,lte=3650"`
	Mode         string    `json:"mode" validate:"required,oneof=Online Offline Hybrid"`
	Fee          float64   `json:"fee" validate:"gte=0"`
	CreatedAt    time.Time `json:"created_at"`

	// Joined data for list/detail responses
	OrganizationName string   `json:"organization_name,omitempty"`
	SkillIDs         []int64  `json:"skill_ids,omitempty"`
	SkillNames       []string `json:"skill_names,omitempty"`
	EnrolledCount    int64    `json:"enrolled_count"`
}

// CourseFilter holds the optional, conjunctive catalog criteria.
// Mode "All" (or empty) means no mode constraint. Zero values are skipped.
type CourseFilter struct {
	SkillIDs     []int64  `json:"skill_ids"`    // OR within, AND against the rest
	Organization string   `json:"organization"` // case-insensitive substring
	MaxFee       *float64 `json:"max_fee"`      // fee <= ceiling
	Mode         string   `json:"mode"`         // exact, "All" sentinel skips
}

type CourseRepository interface {
	Create(ctx context.Context, c *Course) error
	GetByID(ctx context.Context, id int64) (*Course, error)
	Update(ctx context.Context, c *Course) error
	Delete(ctx context.Context, trainerID, id int64) error
	// ListVisible returns courses of verified trainers matching the filter,
	// newest first, with taught-skill ids and enrolled counts attached.
	ListVisible(ctx context.Context, filter CourseFilter) ([]Course, error)
	ListByTrainer(ctx context.Context, trainerID int64) ([]Course, error)
	PopularCourses(ctx context.Context, limit int) ([]Course, error)
}

type CourseUsecase interface {
	// CreateCourse is gated on trainer verification: an unverified trainer
	// is rejected before any row is written.
	CreateCourse(ctx context.Context, userID int64, c *Course) error
	UpdateCourse(ctx context.Context, userID int64, c *Course) error
	DeleteCourse(ctx context.Context, userID, courseID int64) error
	BrowseCourses(ctx context.Context, filter CourseFilter) ([]Course, error)
	ListMyCourses(ctx context.Context, userID int64) ([]Course, error)
}
