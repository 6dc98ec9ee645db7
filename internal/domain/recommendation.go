package domain

import (
	"context"
	"sort"
)

// RecommendedCourse is a catalog course annotated with its relevance to the
// candidate: how many target skills it would teach, and which.
type RecommendedCourse struct {
	Course
	Relevance     int      `json:"relevance"`
	MissingSkills []string `json:"missing_skills,omitempty"`
}

// RankCourses orders the catalog snapshot by how many skills from target a
// course teaches that the candidate does not already possess.
//
// Ordering is deterministic for a fixed candidate skill set and catalog
// snapshot: relevance desc, then created_at desc, then id desc. When no
// course is relevant (candidate possesses everything, or target is empty)
// the whole catalog is returned ordered by popularity then recency, so an
// empty skill set still yields a useful result. An empty catalog yields an
// empty slice.
func RankCourses(catalog []Course, possessed map[int64]bool, target map[int64]string) []RecommendedCourse {
	ranked := make([]RecommendedCourse, 0, len(catalog))
	anyRelevant := false

	for _, c := range catalog {
		rc := RecommendedCourse{Course: c}
		for _, sid := range c.SkillIDs {
			if possessed[sid] {
				continue
			}
			name, wanted := target[sid]
			if !wanted {
				continue
			}
			rc.Relevance++
			rc.MissingSkills = append(rc.MissingSkills, name)
		}
		if rc.Relevance > 0 {
			anyRelevant = true
		}
		ranked = append(ranked, rc)
	}

	if anyRelevant {
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].Relevance != ranked[j].Relevance {
				return ranked[i].Relevance > ranked[j].Relevance
			}
			if !ranked[i].CreatedAt.Equal(ranked[j].CreatedAt) {
				return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
			}
			return ranked[i].ID > ranked[j].ID
		})
		return ranked
	}

	// Fallback: popularity order, never an empty result for a non-empty
	// catalog.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].EnrolledCount != ranked[j].EnrolledCount {
			return ranked[i].EnrolledCount > ranked[j].EnrolledCount
		}
		if !ranked[i].CreatedAt.Equal(ranked[j].CreatedAt) {
			return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
		}
		return ranked[i].ID > ranked[j].ID
	})
	return ranked
}

type RecommendationUsecase interface {
	// RecommendCourses ranks the visible catalog for the candidate. With a
	// job id the target set is that job's required skills; without one it
	// is every catalog-taught skill the candidate lacks.
	RecommendCourses(ctx context.Context, candidateID int64, jobID *int64) ([]RecommendedCourse, error)
}
