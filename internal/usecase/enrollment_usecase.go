package usecase

import (
	"context"

	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"
)

type enrollmentUsecase struct {
	repo     domain.EnrollmentRepository
	courses  domain.CourseRepository
	trainers domain.TrainerRepository
}

func NewEnrollmentUsecase(repo domain.EnrollmentRepository, courses domain.CourseRepository, trainers domain.TrainerRepository) domain.EnrollmentUsecase {
	return &enrollmentUsecase{repo: repo, courses: courses, trainers: trainers}
}

func (u *enrollmentUsecase) Enroll(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error) {
	course, err := u.courses.GetByID(ctx, courseID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Course not found")
		}
		return nil, err
	}

	enrollment := &domain.Enrollment{
		CourseID:    courseID,
		CandidateID: userID,
	}
	if err := u.repo.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	enrollment.CourseTitle = course.Title
	return enrollment, nil
}

func (u *enrollmentUsecase) MyEnrollments(ctx context.Context, userID int64) ([]domain.Enrollment, error) {
	return u.repo.ListByCandidate(ctx, userID)
}

func (u *enrollmentUsecase) ListForTrainer(ctx context.Context, userID int64) ([]domain.Enrollment, error) {
	trainer, err := u.trainers.GetByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.Forbidden("Only trainers can list course enrollments")
		}
		return nil, err
	}
	return u.repo.ListByTrainer(ctx, trainer.TrainerID)
}

func (u *enrollmentUsecase) Transition(ctx context.Context, userID, enrollmentID int64, to string) error {
	trainer, err := u.trainers.GetByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.Forbidden("Only the course trainer can update enrollments")
		}
		return err
	}
	ownerID, err := u.repo.CourseOwner(ctx, enrollmentID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Enrollment not found")
		}
		return err
	}
	if ownerID != trainer.TrainerID {
		return apperror.Forbidden("You can only update enrollments in your own courses")
	}

	enrollment, err := u.repo.GetByID(ctx, enrollmentID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Enrollment not found")
		}
		return err
	}
	if !domain.CanTransition(enrollment.Status, to, domain.StatusCompleted) {
		return apperror.BadRequest("Cannot move enrollment from " + enrollment.Status + " to " + to)
	}
	return u.repo.UpdateStatus(ctx, enrollmentID, to)
}
