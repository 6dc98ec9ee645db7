package domain_test

import (
	"testing"

	"github.com/Iqura-Alam/HireUp/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCompletionPercentage(t *testing.T) {
	t.Run("empty profile scores zero", func(t *testing.T) {
		p := &domain.CandidateProfile{}
		assert.Equal(t, 0, domain.CompletionPercentage(p, 0, 0, 0, 0))
	})

	t.Run("full profile scores 100", func(t *testing.T) {
		p := &domain.CandidateProfile{Headline: "Backend Engineer", City: "Dhaka"}
		assert.Equal(t, 100, domain.CompletionPercentage(p, 1, 1, 1, 3))
	})

	t.Run("monotone as sections fill in", func(t *testing.T) {
		p := &domain.CandidateProfile{}
		prev := domain.CompletionPercentage(p, 0, 0, 0, 0)

		p.Headline = "Backend Engineer"
		cur := domain.CompletionPercentage(p, 0, 0, 0, 0)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur

		p.City = "Dhaka"
		cur = domain.CompletionPercentage(p, 0, 0, 0, 0)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur

		for _, counts := range [][4]int{{1, 0, 0, 0}, {1, 1, 0, 0}, {1, 1, 1, 0}, {1, 1, 1, 3}} {
			cur = domain.CompletionPercentage(p, counts[0], counts[1], counts[2], counts[3])
			assert.GreaterOrEqual(t, cur, prev)
			assert.LessOrEqual(t, cur, 100)
			prev = cur
		}
	})

	t.Run("skills beyond the threshold add nothing", func(t *testing.T) {
		p := &domain.CandidateProfile{Headline: "x", City: "y"}
		atThreshold := domain.CompletionPercentage(p, 1, 1, 1, 3)
		beyond := domain.CompletionPercentage(p, 1, 1, 1, 6)
		assert.Equal(t, atThreshold, beyond)
	})
}

func TestMissingSections(t *testing.T) {
	p := &domain.CandidateProfile{Headline: "Backend Engineer"}
	missing := domain.MissingSections(p, 1, 0, 0, 2)
	assert.ElementsMatch(t, []string{"location", "education", "projects", "skills"}, missing)

	full := &domain.CandidateProfile{Headline: "x", City: "y"}
	assert.Empty(t, domain.MissingSections(full, 1, 1, 1, 3))
}
