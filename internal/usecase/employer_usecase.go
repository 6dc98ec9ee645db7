package usecase

import (
	"context"

	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type employerUsecase struct {
	repo     domain.EmployerRepository
	validate *validator.Validate
}

func NewEmployerUsecase(repo domain.EmployerRepository) domain.EmployerUsecase {
	return &employerUsecase{repo: repo, validate: validator.New()}
}

func (u *employerUsecase) GetProfile(ctx context.Context, userID int64) (*domain.EmployerProfile, error) {
	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Employer profile not found")
		}
		return nil, err
	}
	return profile, nil
}

func (u *employerUsecase) UpdateProfile(ctx context.Context, userID int64, p *domain.EmployerProfile) error {
	if err := u.validate.Struct(p); err != nil {
		return apperror.BadRequest("Invalid profile data: " + err.Error())
	}
	p.UserID = userID
	if err := u.repo.Update(ctx, p); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Employer profile not found")
		}
		return err
	}
	return nil
}

// GetPublicProfile hides the contact number from non-owners.
func (u *employerUsecase) GetPublicProfile(ctx context.Context, employerID int64) (*domain.EmployerProfile, error) {
	profile, err := u.repo.GetByID(ctx, employerID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Employer not found")
		}
		return nil, err
	}
	profile.ContactNumber = ""
	profile.Email = ""
	return profile, nil
}
