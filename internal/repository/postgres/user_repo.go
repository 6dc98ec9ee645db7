package postgres

import (
	"context"
	"errors"

	"github.com/Iqura-Alam/HireUp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `user_id, username, email, password_hash, role, is_active, last_login_at, deleted_at, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
		&u.IsActive, &u.LastLoginAt, &u.DeletedAt, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// RegisterCandidate creates the user row and the candidate profile in one
// transaction, mirroring what the registration routine must guarantee:
// either both rows exist or neither does.
func (r *userRepo) RegisterCandidate(ctx context.Context, in *domain.RegisterInput, passwordHash string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return translate(err, "")
	}
	defer tx.Rollback(ctx)

	var userID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING user_id`,
		in.Username, in.Email, passwordHash, domain.RoleCandidate,
	).Scan(&userID)
	if err != nil {
		return translate(err, "Username or Email already exists")
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO candidate_profile (candidate_id, first_name, last_name, full_name, city, division, country, experience_years)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, 0))`,
		userID, in.FirstName, in.LastName, in.FirstName+" "+in.LastName,
		nullIfEmpty(in.City), nullIfEmpty(in.Division), nullIfEmpty(in.Country), in.ExperienceYears,
	)
	if err != nil {
		return translate(err, "Candidate profile already exists")
	}

	return tx.Commit(ctx)
}

func (r *userRepo) RegisterEmployer(ctx context.Context, in *domain.RegisterInput, passwordHash string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return translate(err, "")
	}
	defer tx.Rollback(ctx)

	var userID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING user_id`,
		in.Username, in.Email, passwordHash, domain.RoleEmployer,
	).Scan(&userID)
	if err != nil {
		return translate(err, "Username or Email already exists")
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO employer (user_id, company_name, industry, location, contact_number, website)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		userID, in.CompanyName, nullIfEmpty(in.Industry), nullIfEmpty(in.Location),
		nullIfEmpty(in.ContactNumber), nullIfEmpty(in.Website),
	)
	if err != nil {
		return translate(err, "Employer profile already exists")
	}

	return tx.Commit(ctx)
}

func (r *userRepo) RegisterTrainer(ctx context.Context, in *domain.RegisterInput, passwordHash string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return translate(err, "")
	}
	defer tx.Rollback(ctx)

	var userID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING user_id`,
		in.Username, in.Email, passwordHash, domain.RoleTrainer,
	).Scan(&userID)
	if err != nil {
		return translate(err, "Username or Email already exists")
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO trainer_profile (user_id, organization_name, specialization, contact_number)
		 VALUES ($1, $2, $3, $4)`,
		userID, nullIfEmpty(in.OrganizationName), nullIfEmpty(in.Specialization), nullIfEmpty(in.ContactNumber),
	)
	if err != nil {
		return translate(err, "Trainer profile already exists")
	}

	return tx.Commit(ctx)
}

func (r *userRepo) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login_at = NOW() WHERE user_id = $1`, id)
	return err
}

func (r *userRepo) SoftDelete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET deleted_at = NOW(), is_active = FALSE WHERE user_id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
