package usecase

import (
	"context"

	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type trainerUsecase struct {
	repo     domain.TrainerRepository
	courses  domain.CourseRepository
	validate *validator.Validate
}

func NewTrainerUsecase(repo domain.TrainerRepository, courses domain.CourseRepository) domain.TrainerUsecase {
	return &trainerUsecase{repo: repo, courses: courses, validate: validator.New()}
}

func (u *trainerUsecase) GetProfile(ctx context.Context, userID int64) (*domain.TrainerProfile, error) {
	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Trainer profile not found")
		}
		return nil, err
	}
	return profile, nil
}

func (u *trainerUsecase) UpdateProfile(ctx context.Context, userID int64, p *domain.TrainerProfile) error {
	if err := u.validate.Struct(p); err != nil {
		return apperror.BadRequest("Invalid profile data: " + err.Error())
	}
	p.UserID = userID
	if err := u.repo.Update(ctx, p); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Trainer profile not found")
		}
		return err
	}
	return nil
}

// GetPublicProfile bundles the trainer with their visible course catalog.
func (u *trainerUsecase) GetPublicProfile(ctx context.Context, trainerID int64) (*domain.PublicTrainerProfile, error) {
	profile, err := u.repo.GetByID(ctx, trainerID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Trainer not found")
		}
		return nil, err
	}
	profile.ContactNumber = ""
	profile.Email = ""

	courses, err := u.courses.ListByTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	return &domain.PublicTrainerProfile{
		TrainerProfile: *profile,
		Courses:        courses,
	}, nil
}
