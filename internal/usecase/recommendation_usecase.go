package usecase

import (
	"context"

	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"
)

type recommendationUsecase struct {
	candidates domain.CandidateRepository
	jobs       domain.JobRepository
	courses    domain.CourseRepository
}

func NewRecommendationUsecase(candidates domain.CandidateRepository, jobs domain.JobRepository, courses domain.CourseRepository) domain.RecommendationUsecase {
	return &recommendationUsecase{candidates: candidates, jobs: jobs, courses: courses}
}

func (u *recommendationUsecase) RecommendCourses(ctx context.Context, candidateID int64, jobID *int64) ([]domain.RecommendedCourse, error) {
	skills, err := u.candidates.ListSkills(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	possessed := make(map[int64]bool, len(skills))
	for _, s := range skills {
		if s.SkillID != nil {
			possessed[*s.SkillID] = true
		}
	}

	catalog, err := u.courses.ListVisible(ctx, domain.CourseFilter{})
	if err != nil {
		return nil, err
	}

	target := make(map[int64]string)
	if jobID != nil {
		// RequiredSkills yields zero rows for an absent job, so the job
		// itself is looked up first to tell "no skills" from "no job".
		if _, err := u.jobs.GetByID(ctx, *jobID); err != nil {
			if err == domain.ErrNotFound {
				return nil, apperror.NotFound("Job not found")
			}
			return nil, err
		}
		required, err := u.jobs.RequiredSkills(ctx, *jobID)
		if err != nil {
			return nil, err
		}
		for _, s := range required {
			target[s.SkillID] = s.SkillName
		}
	} else {
		// No job in focus: aim at everything the catalog can teach that
		// the candidate does not already have.
		for _, c := range catalog {
			for i, id := range c.SkillIDs {
				if !possessed[id] && i < len(c.SkillNames) {
					target[id] = c.SkillNames[i]
				}
			}
		}
	}

	return domain.RankCourses(catalog, possessed, target), nil
}
