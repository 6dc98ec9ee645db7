package domain

import (
	"context"
	"time"
)

// Work mode / employment type preference values
const (
	WorkModeAll    = "All"
	WorkModeOnsite = "Onsite"
	WorkModeRemote = "Remote"
	WorkModeHybrid = "Hybrid"
)

// CandidateProfile is owned exclusively by the candidate. Two independent
// partial updates touch disjoint field sets: general details and job
// preferences. CompletionPercentage is derived and recomputed on every
// profile-affecting write; it is never accepted from the client.
type CandidateProfile struct {
	CandidateID   int64  `json:"candidate_id"`
	Username      string `json:"username,omitempty"`
	Email         string `json:"email,omitempty"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	FullName      string `json:"full_name"`
	Headline      string `json:"headline"`
	Summary       string `json:"summary"`
	City          string `json:"city"`
	Division      string `json:"division"`
	Country       string `json:"country"`
	ContactNumber string `json:"contact_number,omitempty"`

	ExperienceYears int    `json:"experience_years"`
	LinkedinURL     string `json:"linkedin_url"`
	GithubURL       string `json:"github_url"`
	PortfolioURL    string `json:"portfolio_url"`

	DesiredJobTitle    string   `json:"desired_job_title,omitempty"`
	EmploymentType     string   `json:"employment_type,omitempty"`
	WorkModePreference string   `json:"work_mode_preference,omitempty"`
	SalaryMin          *float64 `json:"salary_min,omitempty"`
	SalaryMax          *float64 `json:"salary_max,omitempty"`
	NoticePeriodDays   *int     `json:"notice_period_days,omitempty"`
	WillingToRelocate  bool     `json:"willing_to_relocate"`

	CompletionPercentage int       `json:"completion_percentage"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// GeneralDetailsInput covers the first partial-update operation.
type GeneralDetailsInput struct {
	Headline        string `json:"headline" validate:"max=150"`
	Summary         string `json:"summary" validate:"max=2000"`
	City            string `json:"city" validate:"max=100"`
	Division        string `json:"division" validate:"max=100"`
	Country         string `json:"country" validate:"max=100"`
	ContactNumber   string `json:"contact_number" validate:"max=30"`
	ExperienceYears int    `json:"experience_years" validate:"gte=0,lte=60"`
	LinkedinURL     string `json:"linkedin_url" validate:"omitempty,url"`
	GithubURL       string `json:"github_url" validate:"omitempty,url"`
	PortfolioURL    string `json:"portfolio_url" validate:"omitempty,url"`
}

// JobPreferencesInput covers the second, disjoint partial update.
type JobPreferencesInput struct {
	DesiredJobTitle    string   `json:"desired_job_title" validate:"max=150"`
	EmploymentType     string   `json:"employment_type" validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
	WorkModePreference string   `json:"work_mode_preference" validate:"omitempty,oneof=Onsite Remote Hybrid"`
	SalaryMin          *float64 `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax          *float64 `json:"salary_max" validate:"omitempty,gte=0"`
	NoticePeriodDays   *int     `json:"notice_period_days" validate:"omitempty,gte=0,lte=365"`
	WillingToRelocate  bool     `json:"willing_to_relocate"`
}

// Experience, Education and Project are candidate-owned list entries.
// EndDate nil means "ongoing".

type Experience struct {
	ID          int64      `json:"experience_id"`
	CandidateID int64      `json:"candidate_id"`
	CompanyName string     `json:"company_name" validate:"required,max=150"`
	JobTitle    string     `json:"job_title" validate:"required,max=150"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description string     `json:"description" validate:"max=2000"`
}

type Education struct {
	ID           int64      `json:"education_id"`
	CandidateID  int64      `json:"candidate_id"`
	Institution  string     `json:"institution" validate:"required,max=150"`
	Degree       string     `json:"degree" validate:"required,max=150"`
	FieldOfStudy string     `json:"field_of_study" validate:"max=150"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Result       string     `json:"result" validate:"max=50"`
}

type Project struct {
	ID          int64      `json:"project_id"`
	CandidateID int64      `json:"candidate_id"`
	Title       string     `json:"title" validate:"required,max=150"`
	Description string     `json:"description" validate:"max=2000"`
	ProjectURL  string     `json:"project_url" validate:"omitempty,url"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// EnrollmentSummary is the slim view embedded in the profile aggregate.
type EnrollmentSummary struct {
	EnrollmentID  int64    `json:"enrollment_id"`
	CourseTitle   string   `json:"course_title"`
	Status        string   `json:"status"`
	SkillsCovered []string `json:"skills_covered,omitempty"`
}

// FullProfile is the aggregate returned to the profile's owner.
type FullProfile struct {
	Candidate       CandidateProfile    `json:"candidate"`
	Experience      []Experience        `json:"experience"`
	Education       []Education         `json:"education"`
	Projects        []Project           `json:"projects"`
	Skills          []CandidateSkill    `json:"skills"`
	Enrollments     []EnrollmentSummary `json:"enrollments"`
	MissingSections []string            `json:"missing_sections"`
}

// PublicProfile is the restricted external view: no contact number, no
// salary expectations, no notice period.
type PublicProfile struct {
	Candidate  CandidateProfile `json:"candidate"`
	Experience []Experience     `json:"experience"`
	Education  []Education      `json:"education"`
	Projects   []Project        `json:"projects"`
	Skills     []CandidateSkill `json:"skills"`
}

// Profile completeness: six equally weighted sections. Adding entries beyond
// a threshold (a 4th project, a 6th skill) does not change the score.
const completionSections = 6

// CompletionPercentage computes the derived score from presence checks.
// Pure and side-effect free; monotone as sections fill in, capped at 100.
func CompletionPercentage(p *CandidateProfile, experience, education, projects, skills int) int {
	filled := 0
	if p.Headline != "" {
		filled++
	}
	if p.City != "" {
		filled++
	}
	if experience >= 1 {
		filled++
	}
	if education >= 1 {
		filled++
	}
	if projects >= 1 {
		filled++
	}
	if skills >= 3 {
		filled++
	}
	return filled * 100 / completionSections
}

// MissingSections lists the unfilled sections as a UX nudge. Advisory only;
// no operation is ever blocked by incompleteness.
func MissingSections(p *CandidateProfile, experience, education, projects, skills int) []string {
	missing := []string{}
	if p.Headline == "" {
		missing = append(missing, "headline")
	}
	if p.City == "" {
		missing = append(missing, "location")
	}
	if experience < 1 {
		missing = append(missing, "experience")
	}
	if education < 1 {
		missing = append(missing, "education")
	}
	if projects < 1 {
		missing = append(missing, "projects")
	}
	if skills < 3 {
		missing = append(missing, "skills")
	}
	return missing
}

type CandidateRepository interface {
	GetProfile(ctx context.Context, candidateID int64) (*CandidateProfile, error)
	UpdateGeneralDetails(ctx context.Context, candidateID int64, in *GeneralDetailsInput) error
	UpdateJobPreferences(ctx context.Context, candidateID int64, in *JobPreferencesInput) error
	SetCompletionPercentage(ctx context.Context, candidateID int64, pct int) error

	ListExperience(ctx context.Context, candidateID int64) ([]Experience, error)
	CreateExperience(ctx context.Context, e *Experience) error
	UpdateExperience(ctx context.Context, e *Experience) error
	DeleteExperience(ctx context.Context, candidateID, id int64) error

	ListEducation(ctx context.Context, candidateID int64) ([]Education, error)
	CreateEducation(ctx context.Context, e *Education) error
	UpdateEducation(ctx context.Context, e *Education) error
	DeleteEducation(ctx context.Context, candidateID, id int64) error

	ListProjects(ctx context.Context, candidateID int64) ([]Project, error)
	CreateProject(ctx context.Context, p *Project) error
	UpdateProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, candidateID, id int64) error

	ListSkills(ctx context.Context, candidateID int64) ([]CandidateSkill, error)
	UpsertSkill(ctx context.Context, s *CandidateSkill) error
	ListEnrollmentSummaries(ctx context.Context, candidateID int64) ([]EnrollmentSummary, error)
}

type CandidateUsecase interface {
	GetFullProfile(ctx context.Context, candidateID int64) (*FullProfile, error)
	GetPublicProfile(ctx context.Context, candidateID int64) (*PublicProfile, error)
	UpdateGeneralDetails(ctx context.Context, candidateID int64, in *GeneralDetailsInput) error
	UpdateJobPreferences(ctx context.Context, candidateID int64, in *JobPreferencesInput) error

	CreateExperience(ctx context.Context, candidateID int64, e *Experience) error
	UpdateExperience(ctx context.Context, candidateID int64, e *Experience) error
	DeleteExperience(ctx context.Context, candidateID, id int64) error

	CreateEducation(ctx context.Context, candidateID int64, e *Education) error
	UpdateEducation(ctx context.Context, candidateID int64, e *Education) error
	DeleteEducation(ctx context.Context, candidateID, id int64) error

	CreateProject(ctx context.Context, candidateID int64, p *Project) error
	UpdateProject(ctx context.Context, candidateID int64, p *Project) error
	DeleteProject(ctx context.Context, candidateID, id int64) error

	AddSkill(ctx context.Context, candidateID int64, in *AddSkillInput) error
}
