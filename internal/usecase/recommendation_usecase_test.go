package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/internal/usecase"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetProfile(ctx context.Context, candidateID int64) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateRepo) UpdateGeneralDetails(ctx context.Context, candidateID int64, in *domain.GeneralDetailsInput) error {
	return m.Called(ctx, candidateID, in).Error(0)
}

func (m *MockCandidateRepo) UpdateJobPreferences(ctx context.Context, candidateID int64, in *domain.JobPreferencesInput) error {
	return m.Called(ctx, candidateID, in).Error(0)
}

func (m *MockCandidateRepo) SetCompletionPercentage(ctx context.Context, candidateID int64, pct int) error {
	return m.Called(ctx, candidateID, pct).Error(0)
}

func (m *MockCandidateRepo) ListExperience(ctx context.Context, candidateID int64) ([]domain.Experience, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}

func (m *MockCandidateRepo) CreateExperience(ctx context.Context, e *domain.Experience) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockCandidateRepo) UpdateExperience(ctx context.Context, e *domain.Experience) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockCandidateRepo) DeleteExperience(ctx context.Context, candidateID, id int64) error {
	return m.Called(ctx, candidateID, id).Error(0)
}

func (m *MockCandidateRepo) ListEducation(ctx context.Context, candidateID int64) ([]domain.Education, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}

func (m *MockCandidateRepo) CreateEducation(ctx context.Context, e *domain.Education) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockCandidateRepo) UpdateEducation(ctx context.Context, e *domain.Education) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockCandidateRepo) DeleteEducation(ctx context.Context, candidateID, id int64) error {
	return m.Called(ctx, candidateID, id).Error(0)
}

func (m *MockCandidateRepo) ListProjects(ctx context.Context, candidateID int64) ([]domain.Project, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockCandidateRepo) CreateProject(ctx context.Context, p *domain.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockCandidateRepo) UpdateProject(ctx context.Context, p *domain.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockCandidateRepo) DeleteProject(ctx context.Context, candidateID, id int64) error {
	return m.Called(ctx, candidateID, id).Error(0)
}

func (m *MockCandidateRepo) ListSkills(ctx context.Context, candidateID int64) ([]domain.CandidateSkill, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateSkill), args.Error(1)
}

func (m *MockCandidateRepo) UpsertSkill(ctx context.Context, s *domain.CandidateSkill) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockCandidateRepo) ListEnrollmentSummaries(ctx context.Context, candidateID int64) ([]domain.EnrollmentSummary, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnrollmentSummary), args.Error(1)
}

func skillID(id int64) *int64 { return &id }

func TestRecommendCoursesForJob(t *testing.T) {
	// Candidate knows React (1); the job wants React and SQL (2). Only the
	// SQL gap should drive the ranking.
	mockCandidates := new(MockCandidateRepo)
	mockCandidates.On("ListSkills", mock.Anything, int64(10)).Return([]domain.CandidateSkill{
		{CandidateID: 10, SkillID: skillID(1), SkillName: "React", Proficiency: domain.ProficiencyExpert},
	}, nil)

	sqlCourse := domain.Course{ID: 100, Title: "SQL Bootcamp", SkillIDs: []int64{2}, SkillNames: []string{"SQL"}}
	reactCourse := domain.Course{ID: 101, Title: "React Basics", SkillIDs: []int64{1}, SkillNames: []string{"React"}}

	mockCourses := new(MockCourseRepo)
	mockCourses.On("ListVisible", mock.Anything, domain.CourseFilter{}).
		Return([]domain.Course{reactCourse, sqlCourse}, nil)

	mockJobs := new(MockJobRepo)
	jobID := int64(1)
	mockJobs.On("GetByID", mock.Anything, jobID).Return(&domain.Job{ID: 1, Title: "Backend Engineer"}, nil)
	mockJobs.On("RequiredSkills", mock.Anything, jobID).Return([]domain.JobSkill{
		{SkillID: 1, SkillName: "React"},
		{SkillID: 2, SkillName: "SQL"},
	}, nil)

	uc := usecase.NewRecommendationUsecase(mockCandidates, mockJobs, mockCourses)
	recs, err := uc.RecommendCourses(context.Background(), 10, &jobID)
	assert.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, int64(100), recs[0].Course.ID)
	assert.Equal(t, 1, recs[0].Relevance)
	assert.Equal(t, []string{"SQL"}, recs[0].MissingSkills)
	assert.Equal(t, 0, recs[1].Relevance)
}

func TestRecommendCoursesUnknownJob(t *testing.T) {
	// A job id that resolves to nothing must surface as not found, not as
	// a recommendation list with an empty target set.
	mockCandidates := new(MockCandidateRepo)
	mockCandidates.On("ListSkills", mock.Anything, int64(10)).Return([]domain.CandidateSkill{}, nil)

	mockCourses := new(MockCourseRepo)
	mockCourses.On("ListVisible", mock.Anything, domain.CourseFilter{}).Return([]domain.Course{
		{ID: 100, Title: "SQL Bootcamp", SkillIDs: []int64{2}, SkillNames: []string{"SQL"}},
	}, nil)

	mockJobs := new(MockJobRepo)
	missingJob := int64(9999)
	mockJobs.On("GetByID", mock.Anything, missingJob).Return(nil, domain.ErrNotFound)

	uc := usecase.NewRecommendationUsecase(mockCandidates, mockJobs, mockCourses)
	recs, err := uc.RecommendCourses(context.Background(), 10, &missingJob)
	assert.Nil(t, recs)
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	mockJobs.AssertNotCalled(t, "RequiredSkills", mock.Anything, missingJob)
}

func TestRecommendCoursesWithoutJob(t *testing.T) {
	// Without a job the target is every catalog skill the candidate lacks.
	mockCandidates := new(MockCandidateRepo)
	mockCandidates.On("ListSkills", mock.Anything, int64(10)).Return([]domain.CandidateSkill{
		{CandidateID: 10, SkillID: skillID(1), SkillName: "React"},
	}, nil)

	mockCourses := new(MockCourseRepo)
	mockCourses.On("ListVisible", mock.Anything, domain.CourseFilter{}).Return([]domain.Course{
		{ID: 100, Title: "SQL Bootcamp", SkillIDs: []int64{2}, SkillNames: []string{"SQL"}},
		{ID: 101, Title: "React Basics", SkillIDs: []int64{1}, SkillNames: []string{"React"}},
	}, nil)

	uc := usecase.NewRecommendationUsecase(mockCandidates, new(MockJobRepo), mockCourses)
	recs, err := uc.RecommendCourses(context.Background(), 10, nil)
	assert.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, int64(100), recs[0].Course.ID)
	assert.Equal(t, 0, recs[1].Relevance)
}

func TestRecommendCoursesEmptyCatalog(t *testing.T) {
	mockCandidates := new(MockCandidateRepo)
	mockCandidates.On("ListSkills", mock.Anything, int64(10)).Return([]domain.CandidateSkill{}, nil)

	mockCourses := new(MockCourseRepo)
	mockCourses.On("ListVisible", mock.Anything, domain.CourseFilter{}).Return([]domain.Course{}, nil)

	uc := usecase.NewRecommendationUsecase(mockCandidates, new(MockJobRepo), mockCourses)
	recs, err := uc.RecommendCourses(context.Background(), 10, nil)
	assert.NoError(t, err)
	assert.Empty(t, recs)
}
