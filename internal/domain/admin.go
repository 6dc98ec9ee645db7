package domain

import (
	"context"
	"time"
)

type AuditLog struct {
	ID        int64     `json:"log_id"`
	UserID    *int64    `json:"user_id,omitempty"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  *int64    `json:"entity_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// PendingUser is a verification-queue row: a trainer or employer awaiting
// admin approval.
type PendingUser struct {
	ProfileID int64     `json:"profile_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Name      string    `json:"name"` // organization or company name
	CreatedAt time.Time `json:"created_at"`
}

type AdminRepository interface {
	ListAuditLogs(ctx context.Context, limit int) ([]AuditLog, error)
	RecordAudit(ctx context.Context, log *AuditLog) error

	ListPendingUsers(ctx context.Context) ([]PendingUser, error)
	VerifyProfile(ctx context.Context, role string, profileID int64) error
	VerifyAllPending(ctx context.Context) (int64, error)

	ListUsers(ctx context.Context) ([]User, error)
	SetUserActive(ctx context.Context, userID int64, active bool) error
	DeleteUser(ctx context.Context, userID int64) error
}

type AdminUsecase interface {
	AuditLogs(ctx context.Context, limit int) ([]AuditLog, error)
	PopularCourses(ctx context.Context, limit int) ([]Course, error)
	TopSkills(ctx context.Context, limit int) ([]TopSkill, error)
	// TopSkillsReport renders the demand ranking as an xlsx workbook.
	TopSkillsReport(ctx context.Context, limit int) ([]byte, error)

	PendingUsers(ctx context.Context) ([]PendingUser, error)
	VerifyUser(ctx context.Context, adminID int64, role string, profileID int64) error
	VerifyAllPending(ctx context.Context, adminID int64) (int64, error)

	ListUsers(ctx context.Context) ([]User, error)
	SetUserActive(ctx context.Context, adminID, userID int64, active bool) error
	// DeleteUser permanently removes an account. Destructive, so it
	// requires a valid TOTP step-up code in addition to the admin role.
	DeleteUser(ctx context.Context, adminID, userID int64, totpCode string) error
}
