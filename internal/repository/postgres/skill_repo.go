package postgres

import (
	"context"
	"errors"

	"github.com/Iqura-Alam/HireUp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) GetByNameOrSlug(ctx context.Context, name, slug string) (*domain.Skill, error) {
	query := `SELECT skill_id, skill_name, skill_slug, COALESCE(type, ''), created_at
	          FROM skill WHERE LOWER(skill_name) = LOWER($1) OR skill_slug = $2`
	var s domain.Skill
	err := r.db.QueryRow(ctx, query, name, slug).Scan(&s.ID, &s.Name, &s.Slug, &s.Type, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *skillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	query := `INSERT INTO skill (skill_name, skill_slug, type) VALUES ($1, $2, $3)
	          RETURNING skill_id, created_at`
	err := r.db.QueryRow(ctx, query, skill.Name, skill.Slug, skill.Type).Scan(&skill.ID, &skill.CreatedAt)
	return translate(err, "Skill already exists")
}

func (r *skillRepo) List(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT skill_id, skill_name, skill_slug, COALESCE(type, ''), created_at
	          FROM skill ORDER BY skill_name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.Type, &s.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// TopSkills ranks skills by demand: candidate references plus job
// requirements, most referenced first.
func (r *skillRepo) TopSkills(ctx context.Context, limit int) ([]domain.TopSkill, error) {
	query := `
		SELECT s.skill_id, s.skill_name,
			(SELECT COUNT(*) FROM candidate_skill cs WHERE cs.skill_id = s.skill_id) AS candidate_count,
			(SELECT COUNT(*) FROM job_skill js WHERE js.skill_id = s.skill_id) AS job_count
		FROM skill s
		ORDER BY candidate_count + job_count DESC, s.skill_name ASC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []domain.TopSkill
	for rows.Next() {
		var t domain.TopSkill
		if err := rows.Scan(&t.SkillID, &t.SkillName, &t.CandidateCount, &t.JobCount); err != nil {
			return nil, err
		}
		top = append(top, t)
	}
	return top, rows.Err()
}
