package postgres

import (
	"context"
	"errors"

	"github.com/Iqura-Alam/HireUp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) GetProfile(ctx context.Context, candidateID int64) (*domain.CandidateProfile, error) {
	query := `
		SELECT cp.candidate_id, u.username, u.email,
			COALESCE(cp.first_name, ''), COALESCE(cp.last_name, ''), COALESCE(cp.full_name, ''),
			COALESCE(cp.headline, ''), COALESCE(cp.summary, ''),
			COALESCE(cp.city, ''), COALESCE(cp.division, ''), COALESCE(cp.country, ''),
			COALESCE(cp.contact_number, ''), COALESCE(cp.experience_years, 0),
			COALESCE(cp.linkedin_url, ''), COALESCE(cp.github_url, ''), COALESCE(cp.portfolio_url, ''),
			COALESCE(cp.desired_job_title, ''), COALESCE(cp.employment_type, ''),
			COALESCE(cp.work_mode_preference, ''),
			cp.salary_min, cp.salary_max, cp.notice_period_days,
			COALESCE(cp.willing_to_relocate, FALSE),
			COALESCE(cp.completion_percentage, 0), cp.updated_at
		FROM candidate_profile cp
		JOIN users u ON u.user_id = cp.candidate_id
		WHERE cp.candidate_id = $1`

	var p domain.CandidateProfile
	err := r.db.QueryRow(ctx, query, candidateID).Scan(
		&p.CandidateID, &p.Username, &p.Email,
		&p.FirstName, &p.LastName, &p.FullName,
		&p.Headline, &p.Summary,
		&p.City, &p.Division, &p.Country,
		&p.ContactNumber, &p.ExperienceYears,
		&p.LinkedinURL, &p.GithubURL, &p.PortfolioURL,
		&p.DesiredJobTitle, &p.EmploymentType,
		&p.WorkModePreference,
		&p.SalaryMin, &p.SalaryMax, &p.NoticePeriodDays,
		&p.WillingToRelocate,
		&p.CompletionPercentage, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// UpdateGeneralDetails touches only the general-details field set; job
// preference columns are never part of this statement.
func (r *candidateRepo) UpdateGeneralDetails(ctx context.Context, candidateID int64, in *domain.GeneralDetailsInput) error {
	query := `
		UPDATE candidate_profile SET
			headline = $2, summary = $3, city = $4, division = $5, country = $6,
			contact_number = $7, experience_years = $8,
			linkedin_url = $9, github_url = $10, portfolio_url = $11,
			updated_at = NOW()
		WHERE candidate_id = $1`
	result, err := r.db.Exec(ctx, query, candidateID,
		in.Headline, in.Summary, in.City, in.Division, in.Country,
		in.ContactNumber, in.ExperienceYears,
		in.LinkedinURL, in.GithubURL, in.PortfolioURL,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateJobPreferences touches only the preference field set, disjoint from
// UpdateGeneralDetails.
func (r *candidateRepo) UpdateJobPreferences(ctx context.Context, candidateID int64, in *domain.JobPreferencesInput) error {
	query := `
		UPDATE candidate_profile SET
			desired_job_title = $2, employment_type = $3, work_mode_preference = $4,
			salary_min = $5, salary_max = $6, notice_period_days = $7,
			willing_to_relocate = $8, updated_at = NOW()
		WHERE candidate_id = $1`
	result, err := r.db.Exec(ctx, query, candidateID,
		in.DesiredJobTitle, in.EmploymentType, in.WorkModePreference,
		in.SalaryMin, in.SalaryMax, in.NoticePeriodDays, in.WillingToRelocate,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) SetCompletionPercentage(ctx context.Context, candidateID int64, pct int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE candidate_profile SET completion_percentage = $2 WHERE candidate_id = $1`,
		candidateID, pct)
	return err
}

// ── Experience ───────────────────────────────────────

func (r *candidateRepo) ListExperience(ctx context.Context, candidateID int64) ([]domain.Experience, error) {
	query := `SELECT experience_id, candidate_id, company_name, job_title, start_date, end_date, COALESCE(description, '')
	          FROM experience WHERE candidate_id = $1 ORDER BY start_date DESC, experience_id DESC`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.CompanyName, &e.JobTitle, &e.StartDate, &e.EndDate, &e.Description); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *candidateRepo) CreateExperience(ctx context.Context, e *domain.Experience) error {
	query := `INSERT INTO experience (candidate_id, company_name, job_title, start_date, end_date, description)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING experience_id`
	return r.db.QueryRow(ctx, query, e.CandidateID, e.CompanyName, e.JobTitle, e.StartDate, e.EndDate, e.Description).Scan(&e.ID)
}

func (r *candidateRepo) UpdateExperience(ctx context.Context, e *domain.Experience) error {
	query := `UPDATE experience SET company_name = $3, job_title = $4, start_date = $5, end_date = $6, description = $7
	          WHERE experience_id = $1 AND candidate_id = $2`
	result, err := r.db.Exec(ctx, query, e.ID, e.CandidateID, e.CompanyName, e.JobTitle, e.StartDate, e.EndDate, e.Description)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) DeleteExperience(ctx context.Context, candidateID, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM experience WHERE experience_id = $1 AND candidate_id = $2`, id, candidateID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Education ────────────────────────────────────────

func (r *candidateRepo) ListEducation(ctx context.Context, candidateID int64) ([]domain.Education, error) {
	query := `SELECT education_id, candidate_id, institution, degree, COALESCE(field_of_study, ''), start_date, end_date, COALESCE(result, '')
	          FROM education WHERE candidate_id = $1 ORDER BY start_date DESC, education_id DESC`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Education
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.StartDate, &e.EndDate, &e.Result); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *candidateRepo) CreateEducation(ctx context.Context, e *domain.Education) error {
	query := `INSERT INTO education (candidate_id, institution, degree, field_of_study, start_date, end_date, result)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING education_id`
	return r.db.QueryRow(ctx, query, e.CandidateID, e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate, e.Result).Scan(&e.ID)
}

func (r *candidateRepo) UpdateEducation(ctx context.Context, e *domain.Education) error {
	query := `UPDATE education SET institution = $3, degree = $4, field_of_study = $5, start_date = $6, end_date = $7, result = $8
	          WHERE education_id = $1 AND candidate_id = $2`
	result, err := r.db.Exec(ctx, query, e.ID, e.CandidateID, e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate, e.Result)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) DeleteEducation(ctx context.Context, candidateID, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM education WHERE education_id = $1 AND candidate_id = $2`, id, candidateID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Projects ─────────────────────────────────────────

func (r *candidateRepo) ListProjects(ctx context.Context, candidateID int64) ([]domain.Project, error) {
	query := `SELECT project_id, candidate_id, title, COALESCE(description, ''), COALESCE(project_url, ''), start_date, end_date
	          FROM project WHERE candidate_id = $1 ORDER BY start_date DESC, project_id DESC`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.CandidateID, &p.Title, &p.Description, &p.ProjectURL, &p.StartDate, &p.EndDate); err != nil {
			return nil, err
		}
		entries = append(entries, p)
	}
	return entries, rows.Err()
}

func (r *candidateRepo) CreateProject(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO project (candidate_id, title, description, project_url, start_date, end_date)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING project_id`
	return r.db.QueryRow(ctx, query, p.CandidateID, p.Title, p.Description, p.ProjectURL, p.StartDate, p.EndDate).Scan(&p.ID)
}

func (r *candidateRepo) UpdateProject(ctx context.Context, p *domain.Project) error {
	query := `UPDATE project SET title = $3, description = $4, project_url = $5, start_date = $6, end_date = $7
	          WHERE project_id = $1 AND candidate_id = $2`
	result, err := r.db.Exec(ctx, query, p.ID, p.CandidateID, p.Title, p.Description, p.ProjectURL, p.StartDate, p.EndDate)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) DeleteProject(ctx context.Context, candidateID, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM project WHERE project_id = $1 AND candidate_id = $2`, id, candidateID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Skills ───────────────────────────────────────────

func (r *candidateRepo) ListSkills(ctx context.Context, candidateID int64) ([]domain.CandidateSkill, error) {
	query := `
		SELECT cs.candidate_id, cs.skill_id, COALESCE(cs.custom_name, ''),
			COALESCE(s.skill_name, cs.custom_name, ''), cs.proficiency, cs.years_experience
		FROM candidate_skill cs
		LEFT JOIN skill s ON s.skill_id = cs.skill_id
		WHERE cs.candidate_id = $1
		ORDER BY COALESCE(s.skill_name, cs.custom_name) ASC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.CandidateSkill
	for rows.Next() {
		var s domain.CandidateSkill
		if err := rows.Scan(&s.CandidateID, &s.SkillID, &s.CustomName, &s.SkillName, &s.Proficiency, &s.YearsExperience); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// UpsertSkill keeps one record per (candidate, skill): a repeat add replaces
// the proficiency and years claim. Callers resolve custom labels to a
// registry id first, so SkillID is always set.
func (r *candidateRepo) UpsertSkill(ctx context.Context, s *domain.CandidateSkill) error {
	query := `
		INSERT INTO candidate_skill (candidate_id, skill_id, proficiency, years_experience)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (candidate_id, skill_id) DO UPDATE SET
			proficiency = EXCLUDED.proficiency,
			years_experience = EXCLUDED.years_experience`
	_, err := r.db.Exec(ctx, query, s.CandidateID, *s.SkillID, s.Proficiency, s.YearsExperience)
	return translate(err, "Skill already added")
}

func (r *candidateRepo) ListEnrollmentSummaries(ctx context.Context, candidateID int64) ([]domain.EnrollmentSummary, error) {
	query := `
		SELECT e.enrollment_id, c.title, e.status,
			COALESCE(ARRAY(
				SELECT s.skill_name FROM course_skill csk
				JOIN skill s ON s.skill_id = csk.skill_id
				WHERE csk.course_id = c.course_id
				ORDER BY s.skill_name
			), '{}')
		FROM enrollment e
		JOIN course c ON c.course_id = e.course_id
		WHERE e.candidate_id = $1
		ORDER BY e.enrolled_at DESC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.EnrollmentSummary
	for rows.Next() {
		var s domain.EnrollmentSummary
		if err := rows.Scan(&s.EnrollmentID, &s.CourseTitle, &s.Status, &s.SkillsCovered); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
