package usecase

import (
	"context"
	"time"

	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"
)

// Uploaded CVs are buffered fully in memory; keep them bounded.
const maxCVBytes = 5 << 20

type applicationUsecase struct {
	repo      domain.ApplicationRepository
	jobs      domain.JobRepository
	employers domain.EmployerRepository
}

func NewApplicationUsecase(repo domain.ApplicationRepository, jobs domain.JobRepository, employers domain.EmployerRepository) domain.ApplicationUsecase {
	return &applicationUsecase{repo: repo, jobs: jobs, employers: employers}
}

func (u *applicationUsecase) Apply(ctx context.Context, userID int64, in *domain.ApplyInput) (*domain.Application, error) {
	if len(in.CVFile) == 0 {
		return nil, apperror.BadRequest("A CV file is required to apply")
	}
	if len(in.CVFile) > maxCVBytes {
		return nil, apperror.BadRequest("CV file exceeds the 5MB limit")
	}

	job, err := u.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	if job.Status != domain.JobStatusOpen {
		return nil, apperror.BadRequest("This job is no longer accepting applications")
	}
	if job.ExpiresAt != nil && job.ExpiresAt.Before(time.Now()) {
		return nil, apperror.BadRequest("This job has expired")
	}

	questions, err := u.jobs.Questions(ctx, in.JobID)
	if err != nil {
		return nil, err
	}
	if len(questions) > 0 {
		answered := make(map[int64]bool, len(in.Answers))
		for _, a := range in.Answers {
			answered[a.QuestionID] = true
		}
		for _, q := range questions {
			if !answered[q.ID] {
				return nil, apperror.BadRequest("All screening questions must be answered")
			}
		}
	}

	app := &domain.Application{
		JobID:       in.JobID,
		CandidateID: userID,
		CVFile:      in.CVFile,
	}
	if err := u.repo.Create(ctx, app, in.Answers); err != nil {
		return nil, err
	}
	app.JobTitle = job.Title
	app.CVFile = nil
	return app, nil
}

func (u *applicationUsecase) MyApplications(ctx context.Context, userID int64) ([]domain.Application, error) {
	return u.repo.ListByCandidate(ctx, userID)
}

// requireJobOwner maps the caller to their employer profile and checks it
// against the employer owning the application's job.
func (u *applicationUsecase) requireJobOwner(ctx context.Context, userID, applicationID int64) error {
	employer, err := u.employers.GetByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.Forbidden("Only the posting employer can access applications")
		}
		return err
	}
	ownerID, err := u.repo.JobOwner(ctx, applicationID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Application not found")
		}
		return err
	}
	if ownerID != employer.EmployerID {
		return apperror.Forbidden("You can only access applications to your own jobs")
	}
	return nil
}

func (u *applicationUsecase) ListForJob(ctx context.Context, userID, jobID int64) ([]domain.Application, error) {
	employer, err := u.employers.GetByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.Forbidden("Only the posting employer can access applications")
		}
		return nil, err
	}
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	if job.EmployerID != employer.EmployerID {
		return nil, apperror.Forbidden("You can only access applications to your own jobs")
	}
	return u.repo.ListByJob(ctx, jobID)
}

func (u *applicationUsecase) Transition(ctx context.Context, userID, applicationID int64, to string) error {
	if err := u.requireJobOwner(ctx, userID, applicationID); err != nil {
		return err
	}

	app, err := u.repo.GetByID(ctx, applicationID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Application not found")
		}
		return err
	}
	if !domain.CanTransition(app.Status, to, domain.StatusHired) {
		return apperror.BadRequest("Cannot move application from " + app.Status + " to " + to)
	}
	return u.repo.UpdateStatus(ctx, applicationID, to)
}

func (u *applicationUsecase) DownloadCV(ctx context.Context, userID, applicationID int64) ([]byte, error) {
	if err := u.requireJobOwner(ctx, userID, applicationID); err != nil {
		return nil, err
	}
	cv, err := u.repo.GetCV(ctx, applicationID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("No CV found for this application")
		}
		return nil, err
	}
	return cv, nil
}
