package domain

import (
	"context"
	"time"
)

// Proficiency levels for candidate skills
const (
	ProficiencyBeginner     = "Beginner"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyExpert       = "Expert"
)

// ValidProficiency reports whether p is one of the enumerated levels.
func ValidProficiency(p string) bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyExpert:
		return true
	}
	return false
}

// Skill is a canonical registry entry. Name is unique case-insensitively and
// the slug is derived deterministically from it. Skills are never deleted;
// job requirements and candidate skill records reference them.
type Skill struct {
	ID        int64     `json:"skill_id"`
	Name      string    `json:"skill_name"`
	Slug      string    `json:"skill_slug"`
	Type      string    `json:"type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CandidateSkill links a candidate to a registry skill, or carries a
// free-text custom label when SkillID is nil (the 0/null sentinel).
type CandidateSkill struct {
	CandidateID     int64   `json:"candidate_id"`
	SkillID         *int64  `json:"skill_id,omitempty"`
	CustomName      string  `json:"custom_name,omitempty"`
	SkillName       string  `json:"skill_name"`
	Proficiency     string  `json:"proficiency"`
	YearsExperience float64 `json:"years_experience"`
}

// AddSkillInput is the candidate-facing payload for adding a skill.
// SkillID 0 means "custom"; CustomName must then be set.
type AddSkillInput struct {
	SkillID         int64   `json:"skill_id"`
	CustomName      string  `json:"custom_name"`
	Proficiency     string  `json:"proficiency"`
	YearsExperience float64 `json:"years_experience"`
}

// TopSkill is a demand-ranking row: how often a skill is referenced by
// candidate profiles and job requirements.
type TopSkill struct {
	SkillID        int64  `json:"skill_id"`
	SkillName      string `json:"skill_name"`
	CandidateCount int64  `json:"candidate_count"`
	JobCount       int64  `json:"job_count"`
}

type SkillRepository interface {
	// GetByNameOrSlug looks up a skill by normalized name or slug,
	// case-insensitively. Returns nil, nil when absent.
	GetByNameOrSlug(ctx context.Context, name, slug string) (*Skill, error)
	Create(ctx context.Context, skill *Skill) error
	List(ctx context.Context) ([]Skill, error)
	TopSkills(ctx context.Context, limit int) ([]TopSkill, error)
}

type SkillUsecase interface {
	// ResolveOrCreate returns the canonical entry for name, creating it on
	// first reference. Names differing only by case or whitespace resolve
	// to the same record; a concurrent create of the same name returns the
	// winner's row instead of erroring.
	ResolveOrCreate(ctx context.Context, name string) (*Skill, error)
	List(ctx context.Context) ([]Skill, error)
	TopSkills(ctx context.Context, limit int) ([]TopSkill, error)
}
