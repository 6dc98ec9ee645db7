package usecase

import (
	"context"

	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	skills   domain.SkillUsecase
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, skills domain.SkillUsecase) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		skills:   skills,
		validate: validator.New(),
	}
}

func (u *candidateUsecase) GetFullProfile(ctx context.Context, candidateID int64) (*domain.FullProfile, error) {
	profile, err := u.repo.GetProfile(ctx, candidateID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Candidate profile not found")
		}
		return nil, err
	}

	experience, err := u.repo.ListExperience(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	education, err := u.repo.ListEducation(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	projects, err := u.repo.ListProjects(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	skills, err := u.repo.ListSkills(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	enrollments, err := u.repo.ListEnrollmentSummaries(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	profile.CompletionPercentage = domain.CompletionPercentage(profile,
		len(experience), len(education), len(projects), len(skills))

	return &domain.FullProfile{
		Candidate:   *profile,
		Experience:  experience,
		Education:   education,
		Projects:    projects,
		Skills:      skills,
		Enrollments: enrollments,
		MissingSections: domain.MissingSections(profile,
			len(experience), len(education), len(projects), len(skills)),
	}, nil
}

// GetPublicProfile strips account identifiers, the contact number, salary
// expectations and notice period before handing the aggregate to a
// non-owner.
func (u *candidateUsecase) GetPublicProfile(ctx context.Context, candidateID int64) (*domain.PublicProfile, error) {
	full, err := u.GetFullProfile(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	candidate := full.Candidate
	candidate.Username = ""
	candidate.Email = ""
	candidate.ContactNumber = ""
	candidate.SalaryMin = nil
	candidate.SalaryMax = nil
	candidate.NoticePeriodDays = nil

	return &domain.PublicProfile{
		Candidate:  candidate,
		Experience: full.Experience,
		Education:  full.Education,
		Projects:   full.Projects,
		Skills:     full.Skills,
	}, nil
}

// recomputeCompletion refreshes the stored derived score after any
// profile-affecting write.
func (u *candidateUsecase) recomputeCompletion(ctx context.Context, candidateID int64) error {
	profile, err := u.repo.GetProfile(ctx, candidateID)
	if err != nil {
		return err
	}
	experience, err := u.repo.ListExperience(ctx, candidateID)
	if err != nil {
		return err
	}
	education, err := u.repo.ListEducation(ctx, candidateID)
	if err != nil {
		return err
	}
	projects, err := u.repo.ListProjects(ctx, candidateID)
	if err != nil {
		return err
	}
	skills, err := u.repo.ListSkills(ctx, candidateID)
	if err != nil {
		return err
	}

	pct := domain.CompletionPercentage(profile, len(experience), len(education), len(projects), len(skills))
	return u.repo.SetCompletionPercentage(ctx, candidateID, pct)
}

func (u *candidateUsecase) requireOwner(ctx context.Context, candidateID int64) error {
	callerID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || callerID != candidateID {
		return apperror.Forbidden("You can only modify your own profile")
	}
	return nil
}

func (u *candidateUsecase) UpdateGeneralDetails(ctx context.Context, candidateID int64, in *domain.GeneralDetailsInput) error {
	if err := u.requireOwner(ctx, candidateID); err != nil {
		return err
	}
	if err := u.validate.Struct(in); err != nil {
		return apperror.BadRequest("Invalid profile data: " + err.Error())
	}
	if err := u.repo.UpdateGeneralDetails(ctx, candidateID, in); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Candidate profile not found")
		}
		return err
	}
	return u.recomputeCompletion(ctx, candidateID)
}

func (u *candidateUsecase) UpdateJobPreferences(ctx context.Context, candidateID int64, in *domain.JobPreferencesInput) error {
	if err := u.requireOwner(ctx, candidateID); err != nil {
		return err
	}
	if err := u.validate.Struct(in); err != nil {
		return apperror.BadRequest("Invalid preference data: " + err.Error())
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return apperror.BadRequest("Minimum salary cannot exceed maximum salary")
	}
	if err := u.repo.UpdateJobPreferences(ctx, candidateID, in); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Candidate profile not found")
		}
		return err
	}
	// Preferences do not enter the score, but the write path stays uniform.
	return u.recomputeCompletion(ctx, candidateID)
}

func (u *candidateUsecase) CreateExperience(ctx context.Context, candidateID int64, e *domain.Experience) error {
	if err := u.requireOwner(ctx, candidateID); err != nil {
		return err
	}
	if err := u.validate.Struct(e); err != nil {
		return apperror.BadRequest("Invalid experience data: " + err.Error())
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return apperror.BadRequest("End date cannot be before start date")
	}
	e.CandidateID = candidateID
	if err := u.repo.CreateExperience(ctx, e); err != nil {
		return err
	}
	return u.recomputeCompletion(ctx, candidateID)
}

func (u *candidateUsecase) UpdateExperience(ctx context.Context, candidateID int64, e *domain.Experience) error {
	if err := u.requireOwner(ctx, candidateID); err != nil {
		return err
	}
	if err := u.validate.Struct(e); err != nil {
		return apperror.BadRequest("Invalid experience data: " + err.Error())
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return apperror.BadRequest("End date cannot be before start date")
	}
	e.CandidateID = candidateID
	if err := u.repo.UpdateExperience(ctx, e); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Experience entry not found")
		}
		return err
	}
	return u.recomputeCompletion(ctx, candidateID)
}

func (u *candidateUsecase) DeleteExperience(ctx context.Context, candidateID, id int64) error {
	if err := u.requireOwner(ctx, candidateID); err != nil {
		return err
	}
	if err := u.repo.DeleteExperience(ctx, candidateID, id); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Experience entry not found")
		}
		return err
	}
	return u.recomputeCompletion(ctx, candidateID)
}

func (u *candidateUsecase) CreateEducation(ctx context.Context, candidateID int64, e *domain.Education) error {
	if err := u.requireOwner(ctx, candidateID); err != nil {
		return err
	}
	if err := u.validate.Struct(e); err != nil {
		return apperror.BadRequest("Invalid education data: " + err.Error())
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return apperror.BadRequest("End date cannot be before start date")
	}
	e.CandidateID = candidateID
	if err := u.repo.CreateEducation(ctx, e); err != nil {
		return err
	}
	return u.recomputeCompletion(ctx, candidateID)
}

func (u *candidateUsecase) UpdateEducation(ctx context.Context, candidateID int64, e *domain.Education) error {
	if err := u.requireOwner(ctx, candidateID); err != nil {
		return err
	}
	if err := u.validate.Struct(e); err != nil {
		return apperror.BadRequest("Invalid education data: " + err.Error())
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return apperror.BadRequest("End date cannot be before start date")
	}
	e.CandidateID = candidateID
	if err := u.repo.UpdateEducation(ctx, e); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Education entry not found")
		}
		return err
	}
	return u.recomputeCompletion(ctx, candidateID)
}

func (u *candidateUsecase) DeleteEducation(ctx context.Context, candidateID, id int64) error {
	if err := u.requireOwner(ctx, candidateID); err != nil {
		return err
	}
	if err := u.repo.DeleteEducation(ctx, candidateID, id); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Education entry not found")
		}
		return err
	}
	return u.recomputeCompletion(ctx, candidateID)
}

func (u *candidateUsecase) CreateProject(ctx context.Context, candidateID int64, p *domain.Project) error {
	if err := u.requireOwner(ctx, candidateID); err != nil {
		return err
	}
	if err := u.validate.Struct(p); err != nil {
		return apperror.BadRequest("Invalid project data: " + err.Error())
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return apperror.BadRequest("End date cannot be before start date")
	}
	p.CandidateID = candidateID
	if err := u.repo.CreateProject(ctx, p); err != nil {
		return err
	}
	return u.recomputeCompletion(ctx, candidateID)
}

func (u *candidateUsecase) UpdateProject(ctx context.Context, candidateID int64, p *domain.Project) error {
	if err := u.requireOwner(ctx, candidateID); err != nil {
		return err
	}
	if err := u.validate.Struct(p); err != nil {
		return apperror.BadRequest("Invalid project data: " + err.Error())
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return apperror.BadRequest("End date cannot be before start date")
	}
	p.CandidateID = candidateID
	if err := u.repo.UpdateProject(ctx, p); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Project entry not found")
		}
		return err
	}
	return u.recomputeCompletion(ctx, candidateID)
}

func (u *candidateUsecase) DeleteProject(ctx context.Context, candidateID, id int64) error {
	if err := u.requireOwner(ctx, candidateID); err != nil {
		return err
	}
	if err := u.repo.DeleteProject(ctx, candidateID, id); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Project entry not found")
		}
		return err
	}
	return u.recomputeCompletion(ctx, candidateID)
}

// AddSkill resolves the registry entry (creating it on first use) and
// upserts the candidate's proficiency row. Re-adding an existing skill
// updates proficiency and years instead of failing.
func (u *candidateUsecase) AddSkill(ctx context.Context, candidateID int64, in *domain.AddSkillInput) error {
	if err := u.requireOwner(ctx, candidateID); err != nil {
		return err
	}
	if err := u.validate.Struct(in); err != nil {
		return apperror.BadRequest("Invalid skill data: " + err.Error())
	}
	if !domain.ValidProficiency(in.Proficiency) {
		return apperror.BadRequest("Proficiency must be Beginner, Intermediate or Expert")
	}
	if in.YearsExperience < 0 || in.YearsExperience > 50 {
		return apperror.BadRequest("Years of experience must be between 0 and 50")
	}

	cs := &domain.CandidateSkill{
		CandidateID:     candidateID,
		Proficiency:     in.Proficiency,
		YearsExperience: in.YearsExperience,
	}
	if in.SkillID > 0 {
		cs.SkillID = &in.SkillID
	} else {
		// A custom label still goes through the registry so spelling
		// variants of a known skill collapse to one entry.
		skill, err := u.skills.ResolveOrCreate(ctx, in.CustomName)
		if err != nil {
			return err
		}
		cs.SkillID = &skill.ID
	}
	if err := u.repo.UpsertSkill(ctx, cs); err != nil {
		return err
	}
	return u.recomputeCompletion(ctx, candidateID)
}
