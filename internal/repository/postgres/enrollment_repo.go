package postgres

import (
	"context"
	"errors"

	"github.com/Iqura-Alam/HireUp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type enrollmentRepo struct {
	db *pgxpool.Pool
}

func NewEnrollmentRepository(db *pgxpool.Pool) domain.EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) Create(ctx context.Context, e *domain.Enrollment) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO enrollment (course_id, candidate_id, status)
		 VALUES ($1, $2, $3) RETURNING enrollment_id, enrolled_at`,
		e.CourseID, e.CandidateID, domain.StatusApplied,
	).Scan(&e.ID, &e.EnrolledAt)
	if err != nil {
		return translate(err, "You are already enrolled in this course")
	}
	e.Status = domain.StatusApplied
	return nil
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id int64) (*domain.Enrollment, error) {
	query := `SELECT e.enrollment_id, e.course_id, e.candidate_id, e.status, e.enrolled_at, c.title
	          FROM enrollment e JOIN course c ON c.course_id = e.course_id
	          WHERE e.enrollment_id = $1`
	var e domain.Enrollment
	err := r.db.QueryRow(ctx, query, id).Scan(&e.ID, &e.CourseID, &e.CandidateID, &e.Status, &e.EnrolledAt, &e.CourseTitle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepo) ListByTrainer(ctx context.Context, trainerID int64) ([]domain.Enrollment, error) {
	query := `
		SELECT e.enrollment_id, e.course_id, e.candidate_id, e.status, e.enrolled_at,
			c.title, COALESCE(cp.full_name, u.username), u.email, COALESCE(cp.contact_number, '')
		FROM enrollment e
		JOIN course c ON c.course_id = e.course_id
		JOIN candidate_profile cp ON cp.candidate_id = e.candidate_id
		JOIN users u ON u.user_id = e.candidate_id
		WHERE c.trainer_id = $1
		ORDER BY e.enrolled_at DESC`

	rows, err := r.db.Query(ctx, query, trainerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.Enrollment
	for rows.Next() {
		var e domain.Enrollment
		if err := rows.Scan(&e.ID, &e.CourseID, &e.CandidateID, &e.Status, &e.EnrolledAt,
			&e.CourseTitle, &e.CandidateName, &e.CandidateEmail, &e.CandidatePhone); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *enrollmentRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Enrollment, error) {
	query := `
		SELECT e.enrollment_id, e.course_id, e.candidate_id, e.status, e.enrolled_at, c.title
		FROM enrollment e
		JOIN course c ON c.course_id = e.course_id
		WHERE e.candidate_id = $1
		ORDER BY e.enrolled_at DESC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.Enrollment
	for rows.Next() {
		var e domain.Enrollment
		if err := rows.Scan(&e.ID, &e.CourseID, &e.CandidateID, &e.Status, &e.EnrolledAt, &e.CourseTitle); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *enrollmentRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE enrollment SET status = $2 WHERE enrollment_id = $1`, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *enrollmentRepo) CourseOwner(ctx context.Context, enrollmentID int64) (int64, error) {
	var trainerID int64
	err := r.db.QueryRow(ctx,
		`SELECT c.trainer_id FROM enrollment e JOIN course c ON c.course_id = e.course_id
		 WHERE e.enrollment_id = $1`, enrollmentID).Scan(&trainerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return trainerID, nil
}
