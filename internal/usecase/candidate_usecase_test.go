package usecase_test

import (
	"context"
	"testing"

	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func ownerCtx(candidateID int64) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, candidateID)
	return context.WithValue(ctx, domain.KeyUserRole, domain.RoleCandidate)
}

func expectRecompute(m *MockCandidateRepo, candidateID int64) {
	m.On("GetProfile", mock.Anything, candidateID).Return(&domain.CandidateProfile{CandidateID: candidateID}, nil)
	m.On("ListExperience", mock.Anything, candidateID).Return([]domain.Experience{}, nil)
	m.On("ListEducation", mock.Anything, candidateID).Return([]domain.Education{}, nil)
	m.On("ListProjects", mock.Anything, candidateID).Return([]domain.Project{}, nil)
	m.On("ListSkills", mock.Anything, candidateID).Return([]domain.CandidateSkill{}, nil)
	m.On("SetCompletionPercentage", mock.Anything, candidateID, mock.Anything).Return(nil)
}

func TestAddSkillCustomLabel(t *testing.T) {
	// A custom label resolves through the registry before the upsert, so
	// the stored row always carries a registry id.
	mockRepo := new(MockCandidateRepo)
	mockRepo.On("UpsertSkill", mock.Anything, mock.MatchedBy(func(s *domain.CandidateSkill) bool {
		return s.SkillID != nil && *s.SkillID == 2 && s.CustomName == ""
	})).Return(nil)
	expectRecompute(mockRepo, 10)

	mockSkills := new(MockSkillRepo)
	mockSkills.On("GetByNameOrSlug", mock.Anything, "sql", "sql").
		Return(&domain.Skill{ID: 2, Name: "SQL", Slug: "sql"}, nil)

	uc := usecase.NewCandidateUsecase(mockRepo, usecase.NewSkillUsecase(mockSkills))
	err := uc.AddSkill(ownerCtx(10), 10, &domain.AddSkillInput{
		CustomName:      "SQL",
		Proficiency:     domain.ProficiencyBeginner,
		YearsExperience: 1,
	})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAddSkillYearsRange(t *testing.T) {
	uc := usecase.NewCandidateUsecase(new(MockCandidateRepo), usecase.NewSkillUsecase(new(MockSkillRepo)))
	err := uc.AddSkill(ownerCtx(10), 10, &domain.AddSkillInput{
		SkillID:         1,
		Proficiency:     domain.ProficiencyExpert,
		YearsExperience: 51,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "between 0 and 50")
}

func TestPublicProfileRedaction(t *testing.T) {
	salary := 90000.0
	notice := 30
	mockRepo := new(MockCandidateRepo)
	mockRepo.On("GetProfile", mock.Anything, int64(10)).Return(&domain.CandidateProfile{
		CandidateID:      10,
		Username:         "rahim42",
		Email:            "rahim@example.com",
		FullName:         "Rahim Uddin",
		Headline:         "Backend Engineer",
		ContactNumber:    "+8801700000000",
		SalaryMin:        &salary,
		SalaryMax:        &salary,
		NoticePeriodDays: &notice,
	}, nil)
	mockRepo.On("ListExperience", mock.Anything, int64(10)).Return([]domain.Experience{}, nil)
	mockRepo.On("ListEducation", mock.Anything, int64(10)).Return([]domain.Education{}, nil)
	mockRepo.On("ListProjects", mock.Anything, int64(10)).Return([]domain.Project{}, nil)
	mockRepo.On("ListSkills", mock.Anything, int64(10)).Return([]domain.CandidateSkill{}, nil)
	mockRepo.On("ListEnrollmentSummaries", mock.Anything, int64(10)).Return([]domain.EnrollmentSummary{}, nil)

	uc := usecase.NewCandidateUsecase(mockRepo, usecase.NewSkillUsecase(new(MockSkillRepo)))
	pub, err := uc.GetPublicProfile(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, "Rahim Uddin", pub.Candidate.FullName)
	assert.Equal(t, "Backend Engineer", pub.Candidate.Headline)
	assert.Empty(t, pub.Candidate.Username)
	assert.Empty(t, pub.Candidate.Email)
	assert.Empty(t, pub.Candidate.ContactNumber)
	assert.Nil(t, pub.Candidate.SalaryMin)
	assert.Nil(t, pub.Candidate.SalaryMax)
	assert.Nil(t, pub.Candidate.NoticePeriodDays)
}
