package domain_test

import (
	"testing"

	"github.com/Iqura-Alam/HireUp/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Run("applied moves to shortlisted or rejected only", func(t *testing.T) {
		assert.True(t, domain.CanTransition(domain.StatusApplied, domain.StatusShortlisted, domain.StatusHired))
		assert.True(t, domain.CanTransition(domain.StatusApplied, domain.StatusRejected, domain.StatusHired))
		assert.False(t, domain.CanTransition(domain.StatusApplied, domain.StatusHired, domain.StatusHired))
		assert.False(t, domain.CanTransition(domain.StatusApplied, domain.StatusCompleted, domain.StatusCompleted))
	})

	t.Run("shortlisted moves to accepted state or rejected", func(t *testing.T) {
		assert.True(t, domain.CanTransition(domain.StatusShortlisted, domain.StatusHired, domain.StatusHired))
		assert.True(t, domain.CanTransition(domain.StatusShortlisted, domain.StatusCompleted, domain.StatusCompleted))
		assert.True(t, domain.CanTransition(domain.StatusShortlisted, domain.StatusRejected, domain.StatusHired))
		// The accepted state of the other entity is not reachable.
		assert.False(t, domain.CanTransition(domain.StatusShortlisted, domain.StatusHired, domain.StatusCompleted))
		assert.False(t, domain.CanTransition(domain.StatusShortlisted, domain.StatusApplied, domain.StatusHired))
	})

	t.Run("terminal states allow nothing out", func(t *testing.T) {
		for _, terminal := range []string{domain.StatusRejected, domain.StatusHired, domain.StatusCompleted} {
			for _, to := range []string{domain.StatusApplied, domain.StatusShortlisted, domain.StatusHired, domain.StatusCompleted, domain.StatusRejected} {
				assert.False(t, domain.CanTransition(terminal, to, domain.StatusHired), "from=%s to=%s", terminal, to)
			}
		}
	})
}
