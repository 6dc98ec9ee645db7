package postgres

import (
	"context"
	"errors"

	"github.com/Iqura-Alam/HireUp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

const employerSelect = `
	SELECT ep.employer_id, ep.user_id, u.username, u.email,
		ep.company_name, COALESCE(ep.industry, ''), COALESCE(ep.location, ''),
		COALESCE(ep.contact_number, ''), COALESCE(ep.website, ''), ep.is_verified
	FROM employer ep
	JOIN users u ON u.user_id = ep.user_id`

func (r *employerRepo) scanOne(row pgx.Row) (*domain.EmployerProfile, error) {
	var p domain.EmployerProfile
	err := row.Scan(&p.EmployerID, &p.UserID, &p.Username, &p.Email,
		&p.CompanyName, &p.Industry, &p.Location, &p.ContactNumber, &p.Website, &p.IsVerified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *employerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.EmployerProfile, error) {
	return r.scanOne(r.db.QueryRow(ctx, employerSelect+` WHERE ep.user_id = $1`, userID))
}

func (r *employerRepo) GetByID(ctx context.Context, employerID int64) (*domain.EmployerProfile, error) {
	return r.scanOne(r.db.QueryRow(ctx, employerSelect+` WHERE ep.employer_id = $1`, employerID))
}

func (r *employerRepo) Update(ctx context.Context, p *domain.EmployerProfile) error {
	result, err := r.db.Exec(ctx,
		`UPDATE employer
		 SET company_name = $2, industry = $3, location = $4, contact_number = $5, website = $6
		 WHERE user_id = $1`,
		p.UserID, p.CompanyName, nullIfEmpty(p.Industry), nullIfEmpty(p.Location),
		nullIfEmpty(p.ContactNumber), nullIfEmpty(p.Website))
	if err != nil {
		return translate(err, "")
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
