package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"
	"github.com/Iqura-Alam/HireUp/pkg/slug"
)

type skillUsecase struct {
	repo domain.SkillRepository
}

func NewSkillUsecase(repo domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{repo: repo}
}

// ResolveOrCreate reuses an existing entry when one matches the name
// case-insensitively or the derived slug, and otherwise inserts a new one
// preserving the entered casing. A unique-violation on insert means
// another request won the race, so the winner's row is re-read and
// returned.
func (u *skillUsecase) ResolveOrCreate(ctx context.Context, name string) (*domain.Skill, error) {
	trimmed := strings.TrimSpace(name)
	normalized := slug.Normalize(trimmed)
	if normalized == "" {
		return nil, apperror.BadRequest("Skill name cannot be empty")
	}
	skillSlug := slug.Make(normalized)

	existing, err := u.repo.GetByNameOrSlug(ctx, normalized, skillSlug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	skill := &domain.Skill{Name: trimmed, Slug: skillSlug}
	err = u.repo.Create(ctx, skill)
	if err == nil {
		return skill, nil
	}
	if appErr, ok := err.(*apperror.AppError); ok && appErr.Code == http.StatusConflict {
		winner, readErr := u.repo.GetByNameOrSlug(ctx, normalized, skillSlug)
		if readErr != nil {
			return nil, readErr
		}
		if winner != nil {
			return winner, nil
		}
	}
	return nil, err
}

func (u *skillUsecase) List(ctx context.Context) ([]domain.Skill, error) {
	return u.repo.List(ctx)
}

func (u *skillUsecase) TopSkills(ctx context.Context, limit int) ([]domain.TopSkill, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return u.repo.TopSkills(ctx, limit)
}
