package usecase

import (
	"context"

	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type courseUsecase struct {
	repo     domain.CourseRepository
	trainers domain.TrainerRepository
	validate *validator.Validate
}

func NewCourseUsecase(repo domain.CourseRepository, trainers domain.TrainerRepository) domain.CourseUsecase {
	return &courseUsecase{
		repo:     repo,
		trainers: trainers,
		validate: validator.New(),
	}
}

// verifiedTrainer resolves the caller's trainer profile and enforces the
// admin-verification gate that protects the public catalog.
func (u *courseUsecase) verifiedTrainer(ctx context.Context, userID int64) (*domain.TrainerProfile, error) {
	trainer, err := u.trainers.GetByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.Forbidden("Only trainers can manage courses")
		}
		return nil, err
	}
	if !trainer.IsVerified {
		return nil, apperror.Forbidden("Trainer account is pending admin verification")
	}
	return trainer, nil
}

func (u *courseUsecase) CreateCourse(ctx context.Context, userID int64, c *domain.Course) error {
	trainer, err := u.verifiedTrainer(ctx, userID)
	if err != nil {
		return err
	}
	if err := u.validate.Struct(c); err != nil {
		return apperror.BadRequest("Invalid course data: " + err.Error())
	}

	c.TrainerID = trainer.TrainerID
	return u.repo.Create(ctx, c)
}

func (u *courseUsecase) UpdateCourse(ctx context.Context, userID int64, c *domain.Course) error {
	trainer, err := u.verifiedTrainer(ctx, userID)
	if err != nil {
		return err
	}
	if err := u.validate.Struct(c); err != nil {
		return apperror.BadRequest("Invalid course data: " + err.Error())
	}

	existing, err := u.repo.GetByID(ctx, c.ID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Course not found")
		}
		return err
	}
	if existing.TrainerID != trainer.TrainerID {
		return apperror.Forbidden("You can only modify your own courses")
	}

	c.TrainerID = trainer.TrainerID
	return u.repo.Update(ctx, c)
}

func (u *courseUsecase) DeleteCourse(ctx context.Context, userID, courseID int64) error {
	trainer, err := u.verifiedTrainer(ctx, userID)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, trainer.TrainerID, courseID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Course not found")
		}
		return err
	}
	return nil
}

func (u *courseUsecase) BrowseCourses(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, error) {
	if filter.MaxFee != nil && *filter.MaxFee < 0 {
		return nil, apperror.BadRequest("Maximum fee cannot be negative")
	}
	return u.repo.ListVisible(ctx, filter)
}

func (u *courseUsecase) ListMyCourses(ctx context.Context, userID int64) ([]domain.Course, error) {
	trainer, err := u.trainers.GetByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.Forbidden("Only trainers can list their courses")
		}
		return nil, err
	}
	return u.repo.ListByTrainer(ctx, trainer.TrainerID)
}
