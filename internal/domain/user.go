package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// User roles
const (
	RoleCandidate = "Candidate"
	RoleEmployer  = "Employer"
	RoleTrainer   = "Trainer"
	RoleAdmin     = "Admin"
)

type User struct {
	ID           int64      `json:"user_id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	DeletedAt    *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
}

// RegisterInput carries the role-specific registration payload. The role
// decides which optional fields are required; the usecase enforces that.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"user_role" validate:"required,oneof=Candidate Employer Trainer"`

	// Candidate
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	FullName        string `json:"full_name"`
	City            string `json:"city"`
	Division        string `json:"division"`
	Country         string `json:"country"`
	ExperienceYears *int   `json:"experience_years"`

	// Employer
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Website     string `json:"website"`

	// Trainer
	OrganizationName string `json:"organization_name"`
	Specialization   string `json:"specialization"`

	// Shared
	ContactNumber string `json:"contact_number"`
}

type AuthResult struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

type AuthUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	RegisterCandidate(ctx context.Context, in *RegisterInput, passwordHash string) error
	RegisterEmployer(ctx context.Context, in *RegisterInput, passwordHash string) error
	RegisterTrainer(ctx context.Context, in *RegisterInput, passwordHash string) error
	TouchLastLogin(ctx context.Context, id int64) error
	SoftDelete(ctx context.Context, id int64) error
}

type AuthUsecase interface {
	Register(ctx context.Context, in *RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
	DeleteAccount(ctx context.Context, id int64) error
}
