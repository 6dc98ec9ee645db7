package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Iqura-Alam/HireUp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

// Create writes the job, its required skills and screening questions in one
// transaction.
func (r *jobRepo) Create(ctx context.Context, employerID int64, in *domain.PostJobInput) (*domain.Job, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, translate(err, "")
	}
	defer tx.Rollback(ctx)

	job := &domain.Job{
		EmployerID:  employerID,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		SalaryRange: in.SalaryRange,
		Status:      domain.JobStatusOpen,
		ExpiresAt:   in.ExpiresAt,
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO job (employer_id, title, description, location, salary_range, status, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING job_id, created_at`,
		employerID, in.Title, in.Description, in.Location, in.SalaryRange, domain.JobStatusOpen, in.ExpiresAt,
	).Scan(&job.ID, &job.CreatedAt)
	if err != nil {
		return nil, translate(err, "")
	}

	for i, skillID := range in.SkillIDs {
		minProf := domain.ProficiencyBeginner
		if i < len(in.MinProficiencies) && in.MinProficiencies[i] != "" {
			minProf = in.MinProficiencies[i]
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO job_skill (job_id, skill_id, min_proficiency) VALUES ($1, $2, $3)`,
			job.ID, skillID, minProf)
		if err != nil {
			return nil, translate(err, "Duplicate required skill")
		}
		job.RequiredSkills = append(job.RequiredSkills, domain.JobSkill{SkillID: skillID, MinProficiency: minProf})
	}

	for _, q := range in.Questions {
		var question domain.JobQuestion
		question.JobID = job.ID
		question.QuestionText = q
		err = tx.QueryRow(ctx,
			`INSERT INTO job_question (job_id, question_text) VALUES ($1, $2) RETURNING question_id`,
			job.ID, q).Scan(&question.ID)
		if err != nil {
			return nil, translate(err, "")
		}
		job.Questions = append(job.Questions, question)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, translate(err, "")
	}
	return job, nil
}

const jobColumns = `j.job_id, j.employer_id, j.title, j.description, COALESCE(j.location, ''),
	COALESCE(j.salary_range, ''), j.status, j.expires_at, j.created_at`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	err := row.Scan(&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Location,
		&j.SalaryRange, &j.Status, &j.ExpiresAt, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + `, e.company_name
	          FROM job j JOIN employer e ON e.employer_id = j.employer_id
	          WHERE j.job_id = $1`
	var j domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Location,
		&j.SalaryRange, &j.Status, &j.ExpiresAt, &j.CreatedAt, &j.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

// ListOpen builds the conjunctive WHERE clause from the optional criteria.
// Zero-valued criteria contribute no predicate at all.
func (r *jobRepo) ListOpen(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	conditions := []string{
		"j.status = 'Open'",
		"(j.expires_at IS NULL OR j.expires_at > NOW())",
	}
	args := []interface{}{}
	argIndex := 1

	if len(filter.SkillIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"j.job_id IN (SELECT js.job_id FROM job_skill js WHERE js.skill_id = ANY($%d))", argIndex))
		args = append(args, pq.Array(filter.SkillIDs))
		argIndex++
	}

	if filter.Location != "" {
		conditions = append(conditions, fmt.Sprintf("j.location ILIKE $%d", argIndex))
		args = append(args, "%"+filter.Location+"%")
		argIndex++
	}

	if filter.Keyword != "" {
		conditions = append(conditions, fmt.Sprintf("(j.title ILIKE $%d OR j.description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filter.Keyword+"%")
		argIndex++
	}

	query := `SELECT ` + jobColumns + `, e.company_name
		FROM job j
		JOIN employer e ON e.employer_id = j.employer_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY j.created_at DESC, j.job_id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Location,
			&j.SalaryRange, &j.Status, &j.ExpiresAt, &j.CreatedAt, &j.CompanyName); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) ListByEmployer(ctx context.Context, employerID int64) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + `,
			(SELECT COUNT(*) FROM application a WHERE a.job_id = j.job_id) AS application_count
		FROM job j
		WHERE j.employer_id = $1
		ORDER BY j.created_at DESC, j.job_id DESC`

	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Location,
			&j.SalaryRange, &j.Status, &j.ExpiresAt, &j.CreatedAt, &j.ApplicationCount); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) RequiredSkills(ctx context.Context, jobID int64) ([]domain.JobSkill, error) {
	query := `SELECT js.skill_id, s.skill_name, js.min_proficiency
	          FROM job_skill js JOIN skill s ON s.skill_id = js.skill_id
	          WHERE js.job_id = $1 ORDER BY s.skill_name`
	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.JobSkill
	for rows.Next() {
		var s domain.JobSkill
		if err := rows.Scan(&s.SkillID, &s.SkillName, &s.MinProficiency); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *jobRepo) Questions(ctx context.Context, jobID int64) ([]domain.JobQuestion, error) {
	query := `SELECT question_id, job_id, question_text FROM job_question WHERE job_id = $1 ORDER BY question_id`
	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []domain.JobQuestion
	for rows.Next() {
		var q domain.JobQuestion
		if err := rows.Scan(&q.ID, &q.JobID, &q.QuestionText); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// ExpireDue flips open jobs past their expiry date to Expired. Called by the
// sweeper; the conditional update makes concurrent sweeps harmless.
func (r *jobRepo) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE job SET status = $1 WHERE status = $2 AND expires_at IS NOT NULL AND expires_at <= $3`,
		domain.JobStatusExpired, domain.JobStatusOpen, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
