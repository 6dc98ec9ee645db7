package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Iqura-Alam/HireUp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type courseRepo struct {
	db *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) domain.CourseRepository {
	return &courseRepo{db: db}
}

const courseSelect = `
	SELECT c.course_id, c.trainer_id, c.title, COALESCE(c.description, ''),
		c.duration_days, c.mode, c.fee, c.created_at,
		tp.organization_name,
		COALESCE(ARRAY(SELECT csk.skill_id FROM course_skill csk WHERE csk.course_id = c.course_id ORDER BY csk.skill_id), '{}'),
		COALESCE(ARRAY(
			SELECT s.skill_name FROM course_skill csk
			JOIN skill s ON s.skill_id = csk.skill_id
			WHERE csk.course_id = c.course_id ORDER BY csk.skill_id
		), '{}'),
		(SELECT COUNT(*) FROM enrollment e WHERE e.course_id = c.course_id) AS enrolled_count
	FROM course c
	JOIN trainer_profile tp ON tp.trainer_id = c.trainer_id`

func scanCourse(row pgx.Row) (*domain.Course, error) {
	var c domain.Course
	var org *string
	err := row.Scan(&c.ID, &c.TrainerID, &c.Title, &c.Description,
		&c.DurationDays, &c.Mode, &c.Fee, &c.CreatedAt,
		&org, &c.SkillIDs, &c.SkillNames, &c.EnrolledCount)
	if err != nil {
		return nil, err
	}
	if org != nil {
		c.OrganizationName = *org
	}
	return &c, nil
}

// Create writes the course and its taught-skill set in one transaction.
func (r *courseRepo) Create(ctx context.Context, c *domain.Course) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return translate(err, "")
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO course (trainer_id, title, description, duration_days, mode, fee)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING course_id, created_at`,
		c.TrainerID, c.Title, c.Description, c.DurationDays, c.Mode, c.Fee,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return translate(err, "")
	}

	for _, skillID := range c.SkillIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO course_skill (course_id, skill_id) VALUES ($1, $2)`,
			c.ID, skillID); err != nil {
			return translate(err, "Duplicate course skill")
		}
	}

	return tx.Commit(ctx)
}

func (r *courseRepo) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	query := courseSelect + ` WHERE c.course_id = $1`
	c, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// Update replaces the course fields and its skill set, ownership-scoped.
func (r *courseRepo) Update(ctx context.Context, c *domain.Course) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return translate(err, "")
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE course SET title = $3, description = $4, duration_days = $5, mode = $6, fee = $7
		 WHERE course_id = $1 AND trainer_id = $2`,
		c.ID, c.TrainerID, c.Title, c.Description, c.DurationDays, c.Mode, c.Fee)
	if err != nil {
		return translate(err, "")
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM course_skill WHERE course_id = $1`, c.ID); err != nil {
		return translate(err, "")
	}
	for _, skillID := range c.SkillIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO course_skill (course_id, skill_id) VALUES ($1, $2)`,
			c.ID, skillID); err != nil {
			return translate(err, "Duplicate course skill")
		}
	}

	return tx.Commit(ctx)
}

func (r *courseRepo) Delete(ctx context.Context, trainerID, id int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM course WHERE course_id = $1 AND trainer_id = $2`, id, trainerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListVisible applies the conjunctive catalog filter. Absent criteria are
// skipped; mode "All" means no mode constraint. Only courses of verified
// trainers are visible.
func (r *courseRepo) ListVisible(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, error) {
	conditions := []string{"tp.is_verified = TRUE"}
	args := []interface{}{}
	argIndex := 1

	if len(filter.SkillIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"c.course_id IN (SELECT csk.course_id FROM course_skill csk WHERE csk.skill_id = ANY($%d))", argIndex))
		args = append(args, pq.Array(filter.SkillIDs))
		argIndex++
	}

	if filter.Organization != "" {
		conditions = append(conditions, fmt.Sprintf("tp.organization_name ILIKE $%d", argIndex))
		args = append(args, "%"+filter.Organization+"%")
		argIndex++
	}

	if filter.MaxFee != nil {
		conditions = append(conditions, fmt.Sprintf("c.fee <= $%d", argIndex))
		args = append(args, *filter.MaxFee)
		argIndex++
	}

	if filter.Mode != "" && filter.Mode != domain.CourseModeAll {
		conditions = append(conditions, fmt.Sprintf("c.mode = $%d", argIndex))
		args = append(args, filter.Mode)
		argIndex++
	}

	query := courseSelect + `
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY c.created_at DESC, c.course_id DESC`

	return r.queryCourses(ctx, query, args...)
}

func (r *courseRepo) ListByTrainer(ctx context.Context, trainerID int64) ([]domain.Course, error) {
	query := courseSelect + ` WHERE c.trainer_id = $1 ORDER BY c.created_at DESC, c.course_id DESC`
	return r.queryCourses(ctx, query, trainerID)
}

func (r *courseRepo) PopularCourses(ctx context.Context, limit int) ([]domain.Course, error) {
	query := courseSelect + ` ORDER BY enrolled_count DESC, c.created_at DESC LIMIT $1`
	return r.queryCourses(ctx, query, limit)
}

func (r *courseRepo) queryCourses(ctx context.Context, query string, args ...interface{}) ([]domain.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var c domain.Course
		var org *string
		if err := rows.Scan(&c.ID, &c.TrainerID, &c.Title, &c.Description,
			&c.DurationDays, &c.Mode, &c.Fee, &c.CreatedAt,
			&org, &c.SkillIDs, &c.SkillNames, &c.EnrolledCount); err != nil {
			return nil, err
		}
		if org != nil {
			c.OrganizationName = *org
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
