package domain_test

import (
	"testing"
	"time"

	"github.com/Iqura-Alam/HireUp/internal/domain"

	"github.com/stretchr/testify/assert"
)

func courseAt(id int64, skills []int64, enrolled int64, created time.Time) domain.Course {
	return domain.Course{ID: id, SkillIDs: skills, EnrolledCount: enrolled, CreatedAt: created}
}

func TestRankCourses(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	const (
		react = int64(1)
		sql   = int64(2)
	)

	t.Run("courses teaching missing skills outrank already-possessed ones", func(t *testing.T) {
		catalog := []domain.Course{
			courseAt(10, []int64{react}, 50, base.Add(48*time.Hour)),
			courseAt(11, []int64{sql}, 1, base),
		}
		possessed := map[int64]bool{react: true}
		target := map[int64]string{react: "React", sql: "SQL"}

		ranked := domain.RankCourses(catalog, possessed, target)
		assert.Len(t, ranked, 2)
		assert.Equal(t, int64(11), ranked[0].ID)
		assert.Equal(t, 1, ranked[0].Relevance)
		assert.Equal(t, []string{"SQL"}, ranked[0].MissingSkills)
		assert.Equal(t, 0, ranked[1].Relevance)
	})

	t.Run("relevance ties break by creation time descending then id", func(t *testing.T) {
		catalog := []domain.Course{
			courseAt(20, []int64{sql}, 0, base),
			courseAt(21, []int64{sql}, 0, base.Add(time.Hour)),
			courseAt(22, []int64{sql}, 0, base),
		}
		target := map[int64]string{sql: "SQL"}

		ranked := domain.RankCourses(catalog, map[int64]bool{}, target)
		assert.Equal(t, []int64{21, 22, 20}, []int64{ranked[0].ID, ranked[1].ID, ranked[2].ID})
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		catalog := []domain.Course{
			courseAt(30, []int64{react, sql}, 3, base),
			courseAt(31, []int64{sql}, 9, base.Add(time.Minute)),
			courseAt(32, []int64{react}, 7, base.Add(2*time.Minute)),
		}
		target := map[int64]string{react: "React", sql: "SQL"}

		first := domain.RankCourses(catalog, map[int64]bool{}, target)
		second := domain.RankCourses(catalog, map[int64]bool{}, target)
		assert.Equal(t, first, second)
	})

	t.Run("no relevant course falls back to popularity order", func(t *testing.T) {
		catalog := []domain.Course{
			courseAt(40, []int64{react}, 2, base),
			courseAt(41, []int64{react}, 8, base),
		}
		// Candidate already has React; nothing in the catalog is relevant.
		ranked := domain.RankCourses(catalog, map[int64]bool{react: true}, map[int64]string{})
		assert.Len(t, ranked, 2)
		assert.Equal(t, int64(41), ranked[0].ID)
	})

	t.Run("empty skill set still returns the catalog", func(t *testing.T) {
		catalog := []domain.Course{courseAt(50, nil, 4, base)}
		ranked := domain.RankCourses(catalog, map[int64]bool{}, map[int64]string{})
		assert.Len(t, ranked, 1)
	})

	t.Run("empty catalog returns empty, not nil error path", func(t *testing.T) {
		ranked := domain.RankCourses(nil, map[int64]bool{}, map[int64]string{int64(1): "Go"})
		assert.Empty(t, ranked)
	})
}
