package domain

import "context"

type EmployerProfile struct {
	EmployerID    int64  `json:"employer_id"`
	UserID        int64  `json:"user_id"`
	Username      string `json:"username,omitempty"`
	Email         string `json:"email,omitempty"`
	CompanyName   string `json:"company_name" validate:"required,max=150"`
	Industry      string `json:"industry" validate:"max=100"`
	Location      string `json:"location" validate:"max=150"`
	ContactNumber string `json:"contact_number" validate:"max=30"`
	Website       string `json:"website" validate:"omitempty,url"`
	IsVerified    bool   `json:"is_verified"`
}

type EmployerRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*EmployerProfile, error)
	GetByID(ctx context.Context, employerID int64) (*EmployerProfile, error)
	Update(ctx context.Context, p *EmployerProfile) error
}

type EmployerUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*EmployerProfile, error)
	UpdateProfile(ctx context.Context, userID int64, p *EmployerProfile) error
	GetPublicProfile(ctx context.Context, employerID int64) (*EmployerProfile, error)
}
