package postgres

import (
	"context"
	"errors"

	"github.com/Iqura-Alam/HireUp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type trainerRepo struct {
	db *pgxpool.Pool
}

func NewTrainerRepository(db *pgxpool.Pool) domain.TrainerRepository {
	return &trainerRepo{db: db}
}

const trainerSelect = `
	SELECT tp.trainer_id, tp.user_id, u.username, u.email,
		COALESCE(tp.organization_name, ''), COALESCE(tp.specialization, ''),
		COALESCE(tp.contact_number, ''), tp.is_verified
	FROM trainer_profile tp
	JOIN users u ON u.user_id = tp.user_id`

func (r *trainerRepo) scanOne(row pgx.Row) (*domain.TrainerProfile, error) {
	var p domain.TrainerProfile
	err := row.Scan(&p.TrainerID, &p.UserID, &p.Username, &p.Email,
		&p.OrganizationName, &p.Specialization, &p.ContactNumber, &p.IsVerified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *trainerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.TrainerProfile, error) {
	return r.scanOne(r.db.QueryRow(ctx, trainerSelect+` WHERE tp.user_id = $1`, userID))
}

func (r *trainerRepo) GetByID(ctx context.Context, trainerID int64) (*domain.TrainerProfile, error) {
	return r.scanOne(r.db.QueryRow(ctx, trainerSelect+` WHERE tp.trainer_id = $1`, trainerID))
}

func (r *trainerRepo) Update(ctx context.Context, p *domain.TrainerProfile) error {
	result, err := r.db.Exec(ctx,
		`UPDATE trainer_profile
		 SET organization_name = $2, specialization = $3, contact_number = $4
		 WHERE user_id = $1`,
		p.UserID, nullIfEmpty(p.OrganizationName), nullIfEmpty(p.Specialization), nullIfEmpty(p.ContactNumber))
	if err != nil {
		return translate(err, "")
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
