package postgres

import (
	"context"

	"github.com/Iqura-Alam/HireUp/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepo struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) domain.AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	query := `
		SELECT log_id, user_id, action, entity, entity_id, COALESCE(detail, ''), created_at
		FROM audit_log
		ORDER BY created_at DESC, log_id DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.AuditLog
	for rows.Next() {
		var l domain.AuditLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.Entity, &l.EntityID, &l.Detail, &l.Timestamp); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *adminRepo) RecordAudit(ctx context.Context, log *domain.AuditLog) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO audit_log (user_id, action, entity, entity_id, detail)
		 VALUES ($1, $2, $3, $4, $5)`,
		log.UserID, log.Action, log.Entity, log.EntityID, nullIfEmpty(log.Detail))
	return err
}

// ListPendingUsers unions unverified trainers and employers into one
// verification queue, oldest first.
func (r *adminRepo) ListPendingUsers(ctx context.Context) ([]domain.PendingUser, error) {
	query := `
		SELECT tp.trainer_id, u.user_id, u.username, u.email, u.role,
			COALESCE(tp.organization_name, ''), u.created_at
		FROM trainer_profile tp
		JOIN users u ON u.user_id = tp.user_id
		WHERE tp.is_verified = FALSE AND u.deleted_at IS NULL
		UNION ALL
		SELECT ep.employer_id, u.user_id, u.username, u.email, u.role,
			ep.company_name, u.created_at
		FROM employer ep
		JOIN users u ON u.user_id = ep.user_id
		WHERE ep.is_verified = FALSE AND u.deleted_at IS NULL
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pending []domain.PendingUser
	for rows.Next() {
		var p domain.PendingUser
		if err := rows.Scan(&p.ProfileID, &p.UserID, &p.Username, &p.Email, &p.Role, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		pending = append(pending, p)
	}
	return pending, rows.Err()
}

func (r *adminRepo) VerifyProfile(ctx context.Context, role string, profileID int64) error {
	var query string
	switch role {
	case domain.RoleTrainer:
		query = `UPDATE trainer_profile SET is_verified = TRUE WHERE trainer_id = $1`
	case domain.RoleEmployer:
		query = `UPDATE employer SET is_verified = TRUE WHERE employer_id = $1`
	default:
		return domain.ErrNotFound
	}

	result, err := r.db.Exec(ctx, query, profileID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *adminRepo) VerifyAllPending(ctx context.Context) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	trainers, err := tx.Exec(ctx, `UPDATE trainer_profile SET is_verified = TRUE WHERE is_verified = FALSE`)
	if err != nil {
		return 0, err
	}
	employers, err := tx.Exec(ctx, `UPDATE employer SET is_verified = TRUE WHERE is_verified = FALSE`)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return trainers.RowsAffected() + employers.RowsAffected(), nil
}

func (r *adminRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC, user_id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
			&u.IsActive, &u.LastLoginAt, &u.DeletedAt, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.PasswordHash = ""
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *adminRepo) SetUserActive(ctx context.Context, userID int64, active bool) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET is_active = $2 WHERE user_id = $1 AND deleted_at IS NULL`,
		userID, active)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteUser removes the account row. Role profiles, applications and
// enrollments cascade through their foreign keys.
func (r *adminRepo) DeleteUser(ctx context.Context, userID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return translate(err, "")
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
