package usecase

import (
	"context"
	"strings"
	"unicode"

	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"
	"github.com/Iqura-Alam/HireUp/pkg/auth"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		validate: validator.New(),
	}
}

// checkPassword enforces the minimum policy: at least 6 characters with at
// least one letter and one digit.
func checkPassword(password string) error {
	if len(password) < 6 {
		return apperror.BadRequest("Password must be at least 6 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return apperror.BadRequest("Password must contain at least one letter and one digit")
	}
	return nil
}

func (u *authUsecase) Register(ctx context.Context, in *domain.RegisterInput) (*domain.AuthResult, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest("Invalid registration data: " + err.Error())
	}
	if err := checkPassword(in.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	switch in.Role {
	case domain.RoleCandidate:
		if in.FullName == "" {
			in.FullName = strings.TrimSpace(in.FirstName + " " + in.LastName)
		}
		if in.FullName == "" {
			return nil, apperror.BadRequest("Full name is required for candidates")
		}
		err = u.userRepo.RegisterCandidate(ctx, in, string(hash))
	case domain.RoleEmployer:
		if in.CompanyName == "" {
			return nil, apperror.BadRequest("Company name is required for employers")
		}
		err = u.userRepo.RegisterEmployer(ctx, in, string(hash))
	case domain.RoleTrainer:
		err = u.userRepo.RegisterTrainer(ctx, in, string(hash))
	default:
		return nil, apperror.BadRequest("Invalid role")
	}
	if err != nil {
		return nil, err
	}

	// Registration doubles as the first login.
	return u.Login(ctx, in.Email, in.Password)
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, err
	}
	if user.DeletedAt != nil || !user.IsActive {
		return nil, apperror.Unauthorized("Account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	token, err := u.tokens.Sign(user.ID, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := u.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	return &domain.AuthResult{
		Token: token,
		User: domain.AuthUser{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// DeleteAccount soft-deletes the caller's own account. Content stays in
// place for audit; the account can no longer log in.
func (u *authUsecase) DeleteAccount(ctx context.Context, id int64) error {
	callerID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || callerID != id {
		return apperror.Forbidden("You can only delete your own account")
	}
	if err := u.userRepo.SoftDelete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}
