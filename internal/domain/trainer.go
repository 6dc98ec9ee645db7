package domain

import "context"

// TrainerProfile carries the admin-verification flag gating course creation.
type TrainerProfile struct {
	TrainerID        int64  `json:"trainer_id"`
	UserID           int64  `json:"user_id"`
	Username         string `json:"username,omitempty"`
	Email            string `json:"email,omitempty"`
	OrganizationName string `json:"organization_name" validate:"max=150"`
	Specialization   string `json:"specialization" validate:"max=150"`
	ContactNumber    string `json:"contact_number" validate:"max=30"`
	IsVerified       bool   `json:"is_verified"`
}

// PublicTrainerProfile embeds the trainer's course catalog for external
// viewing.
type PublicTrainerProfile struct {
	TrainerProfile
	Courses []Course `json:"courses"`
}

type TrainerRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*TrainerProfile, error)
	GetByID(ctx context.Context, trainerID int64) (*TrainerProfile, error)
	Update(ctx context.Context, p *TrainerProfile) error
}

type TrainerUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*TrainerProfile, error)
	UpdateProfile(ctx context.Context, userID int64, p *TrainerProfile) error
	GetPublicProfile(ctx context.Context, trainerID int64) (*PublicTrainerProfile, error)
}
