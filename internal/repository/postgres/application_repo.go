package postgres

import (
	"context"
	"errors"

	"github.com/Iqura-Alam/HireUp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts the application and its question answers in one
// transaction. The (candidate_id, job_id) unique constraint is the backstop
// against concurrent duplicate submissions; the violation surfaces as a
// conflict with user-facing wording.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application, answers []domain.ApplicationAnswer) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return translate(err, "")
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO application (job_id, candidate_id, status, cv_file)
		 VALUES ($1, $2, $3, $4) RETURNING application_id, applied_at`,
		app.JobID, app.CandidateID, domain.StatusApplied, app.CVFile,
	).Scan(&app.ID, &app.AppliedAt)
	if err != nil {
		return translate(err, "You have already applied to this job")
	}
	app.Status = domain.StatusApplied

	for _, a := range answers {
		if _, err := tx.Exec(ctx,
			`INSERT INTO application_answer (application_id, question_id, answer_text) VALUES ($1, $2, $3)`,
			app.ID, a.QuestionID, a.AnswerText); err != nil {
			return translate(err, "Duplicate answer")
		}
	}

	return tx.Commit(ctx)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT a.application_id, a.job_id, a.candidate_id, a.status, a.applied_at, j.title
	          FROM application a JOIN job j ON j.job_id = a.job_id
	          WHERE a.application_id = $1`
	var a domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.JobID, &a.CandidateID, &a.Status, &a.AppliedAt, &a.JobTitle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT a.application_id, a.job_id, a.candidate_id, a.status, a.applied_at,
			COALESCE(cp.full_name, u.username), u.email, COALESCE(cp.experience_years, 0)
		FROM application a
		JOIN candidate_profile cp ON cp.candidate_id = a.candidate_id
		JOIN users u ON u.user_id = a.candidate_id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.Status, &a.AppliedAt,
			&a.CandidateName, &a.CandidateEmail, &a.ExperienceYears); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range apps {
		answers, err := r.listAnswers(ctx, apps[i].ID)
		if err != nil {
			return nil, err
		}
		apps[i].Answers = answers
	}
	return apps, nil
}

func (r *applicationRepo) listAnswers(ctx context.Context, applicationID int64) ([]domain.ApplicationAnswer, error) {
	query := `
		SELECT aa.question_id, jq.question_text, aa.answer_text
		FROM application_answer aa
		JOIN job_question jq ON jq.question_id = aa.question_id
		WHERE aa.application_id = $1
		ORDER BY aa.question_id`

	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []domain.ApplicationAnswer
	for rows.Next() {
		var a domain.ApplicationAnswer
		if err := rows.Scan(&a.QuestionID, &a.QuestionText, &a.AnswerText); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func (r *applicationRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	query := `
		SELECT a.application_id, a.job_id, a.candidate_id, a.status, a.applied_at, j.title
		FROM application a
		JOIN job j ON j.job_id = a.job_id
		WHERE a.candidate_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.Status, &a.AppliedAt, &a.JobTitle); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE application SET status = $2 WHERE application_id = $1`, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) GetCV(ctx context.Context, id int64) ([]byte, error) {
	var cv []byte
	err := r.db.QueryRow(ctx,
		`SELECT cv_file FROM application WHERE application_id = $1`, id).Scan(&cv)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if len(cv) == 0 {
		return nil, domain.ErrNotFound
	}
	return cv, nil
}

func (r *applicationRepo) JobOwner(ctx context.Context, applicationID int64) (int64, error) {
	var employerID int64
	err := r.db.QueryRow(ctx,
		`SELECT j.employer_id FROM application a JOIN job j ON j.job_id = a.job_id
		 WHERE a.application_id = $1`, applicationID).Scan(&employerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return employerID, nil
}
