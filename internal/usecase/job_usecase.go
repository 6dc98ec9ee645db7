package usecase

import (
	"context"
	"time"

	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	repo      domain.JobRepository
	employers domain.EmployerRepository
	validate  *validator.Validate
}

func NewJobUsecase(repo domain.JobRepository, employers domain.EmployerRepository) domain.JobUsecase {
	return &jobUsecase{
		repo:      repo,
		employers: employers,
		validate:  validator.New(),
	}
}

func (u *jobUsecase) PostJob(ctx context.Context, userID int64, in *domain.PostJobInput) (*domain.Job, error) {
	employer, err := u.employers.GetByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.Forbidden("Only employers can post jobs")
		}
		return nil, err
	}

	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest("Invalid job data: " + err.Error())
	}
	if in.ExpiresAt != nil && in.ExpiresAt.Before(time.Now()) {
		return nil, apperror.BadRequest("Expiry date must be in the future")
	}
	for _, p := range in.MinProficiencies {
		if p != "" && !domain.ValidProficiency(p) {
			return nil, apperror.BadRequest("Proficiency must be Beginner, Intermediate or Expert")
		}
	}

	job, err := u.repo.Create(ctx, employer.EmployerID, in)
	if err != nil {
		return nil, err
	}
	job.CompanyName = employer.CompanyName
	return job, nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, jobID int64) (*domain.Job, error) {
	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	skills, err := u.repo.RequiredSkills(ctx, jobID)
	if err != nil {
		return nil, err
	}
	questions, err := u.repo.Questions(ctx, jobID)
	if err != nil {
		return nil, err
	}
	job.RequiredSkills = skills
	job.Questions = questions
	return job, nil
}

// BrowseJobs applies the conjunctive filter over open, unexpired listings.
// Zero-valued criteria do not constrain the result.
func (u *jobUsecase) BrowseJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	return u.repo.ListOpen(ctx, filter)
}

func (u *jobUsecase) ListMyJobs(ctx context.Context, userID int64) ([]domain.Job, error) {
	employer, err := u.employers.GetByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.Forbidden("Only employers can list their jobs")
		}
		return nil, err
	}
	return u.repo.ListByEmployer(ctx, employer.EmployerID)
}
