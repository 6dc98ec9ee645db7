package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/internal/usecase"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) GetByNameOrSlug(ctx context.Context, name, slug string) (*domain.Skill, error) {
	args := m.Called(ctx, name, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillRepo) List(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) TopSkills(ctx context.Context, limit int) ([]domain.TopSkill, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopSkill), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, employerID int64, in *domain.PostJobInput) (*domain.Job, error) {
	args := m.Called(ctx, employerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) ListOpen(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) ListByEmployer(ctx context.Context, employerID int64) ([]domain.Job, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) RequiredSkills(ctx context.Context, jobID int64) ([]domain.JobSkill, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobSkill), args.Error(1)
}

func (m *MockJobRepo) Questions(ctx context.Context, jobID int64) ([]domain.JobQuestion, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobQuestion), args.Error(1)
}

func (m *MockJobRepo) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}

func (m *MockEmployerRepo) GetByID(ctx context.Context, employerID int64) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}

func (m *MockEmployerRepo) Update(ctx context.Context, p *domain.EmployerProfile) error {
	return m.Called(ctx, p).Error(0)
}

type MockTrainerRepo struct {
	mock.Mock
}

func (m *MockTrainerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.TrainerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainerProfile), args.Error(1)
}

func (m *MockTrainerRepo) GetByID(ctx context.Context, trainerID int64) (*domain.TrainerProfile, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainerProfile), args.Error(1)
}

func (m *MockTrainerRepo) Update(ctx context.Context, p *domain.TrainerProfile) error {
	return m.Called(ctx, p).Error(0)
}

type MockCourseRepo struct {
	mock.Mock
}

func (m *MockCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCourseRepo) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseRepo) Update(ctx context.Context, c *domain.Course) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCourseRepo) Delete(ctx context.Context, trainerID, id int64) error {
	return m.Called(ctx, trainerID, id).Error(0)
}

func (m *MockCourseRepo) ListVisible(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *MockCourseRepo) ListByTrainer(ctx context.Context, trainerID int64) ([]domain.Course, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *MockCourseRepo) PopularCourses(ctx context.Context, limit int) ([]domain.Course, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application, answers []domain.ApplicationAnswer) error {
	return m.Called(ctx, app, answers).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockApplicationRepo) GetCV(ctx context.Context, id int64) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockApplicationRepo) JobOwner(ctx context.Context, applicationID int64) (int64, error) {
	args := m.Called(ctx, applicationID)
	return args.Get(0).(int64), args.Error(1)
}

func TestSkillResolveOrCreate(t *testing.T) {
	t.Run("Should reuse existing entry for a case variant", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		existing := &domain.Skill{ID: 7, Name: "machine learning", Slug: "machine-learning"}
		mockRepo.On("GetByNameOrSlug", mock.Anything, "machine learning", "machine-learning").Return(existing, nil)

		uc := usecase.NewSkillUsecase(mockRepo)
		skill, err := uc.ResolveOrCreate(context.Background(), "  Machine Learning ")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), skill.ID)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should return the winner's row when a concurrent create races", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		winner := &domain.Skill{ID: 9, Name: "go", Slug: "go"}
		mockRepo.On("GetByNameOrSlug", mock.Anything, "go", "go").Return(nil, nil).Once()
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(apperror.Conflict("Skill already exists"))
		mockRepo.On("GetByNameOrSlug", mock.Anything, "go", "go").Return(winner, nil).Once()

		uc := usecase.NewSkillUsecase(mockRepo)
		skill, err := uc.ResolveOrCreate(context.Background(), "Go")
		assert.NoError(t, err)
		assert.Equal(t, int64(9), skill.ID)
	})

	t.Run("Should keep the entered casing on a new entry", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		mockRepo.On("GetByNameOrSlug", mock.Anything, "node.js", "node.js").Return(nil, nil)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Skill) bool {
			return s.Name == "Node.js" && s.Slug == "node.js"
		})).Return(nil)

		uc := usecase.NewSkillUsecase(mockRepo)
		skill, err := uc.ResolveOrCreate(context.Background(), " Node.js ")
		assert.NoError(t, err)
		assert.Equal(t, "Node.js", skill.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject an empty name", func(t *testing.T) {
		uc := usecase.NewSkillUsecase(new(MockSkillRepo))
		_, err := uc.ResolveOrCreate(context.Background(), "   ")
		assert.Error(t, err)
	})
}

func TestApplyGuards(t *testing.T) {
	openJob := &domain.Job{ID: 1, EmployerID: 3, Title: "Backend Engineer", Status: domain.JobStatusOpen}

	t.Run("Should require a CV file", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockEmployerRepo))
		_, err := uc.Apply(context.Background(), 10, &domain.ApplyInput{JobID: 1})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "CV file is required")
	})

	t.Run("Should reject applications to a closed job", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		closed := &domain.Job{ID: 2, Status: domain.JobStatusClosed}
		mockJobs.On("GetByID", mock.Anything, int64(2)).Return(closed, nil)

		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), mockJobs, new(MockEmployerRepo))
		_, err := uc.Apply(context.Background(), 10, &domain.ApplyInput{JobID: 2, CVFile: []byte("%PDF")})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no longer accepting")
	})

	t.Run("Should surface a duplicate application as a conflict", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockJobs.On("GetByID", mock.Anything, int64(1)).Return(openJob, nil)
		mockJobs.On("Questions", mock.Anything, int64(1)).Return([]domain.JobQuestion{}, nil)

		mockApps := new(MockApplicationRepo)
		mockApps.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(apperror.Conflict("You have already applied to this job"))

		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, new(MockEmployerRepo))
		_, err := uc.Apply(context.Background(), 10, &domain.ApplyInput{JobID: 1, CVFile: []byte("%PDF")})
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("Should demand answers to every screening question", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockJobs.On("GetByID", mock.Anything, int64(1)).Return(openJob, nil)
		mockJobs.On("Questions", mock.Anything, int64(1)).Return([]domain.JobQuestion{
			{ID: 5, JobID: 1, QuestionText: "Years with Go?"},
		}, nil)

		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), mockJobs, new(MockEmployerRepo))
		_, err := uc.Apply(context.Background(), 10, &domain.ApplyInput{JobID: 1, CVFile: []byte("%PDF")})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "screening questions")
	})
}

func TestApplicationTransitionGuards(t *testing.T) {
	employer := &domain.EmployerProfile{EmployerID: 3, UserID: 30, CompanyName: "Acme"}

	setup := func(status string) (*MockApplicationRepo, domain.ApplicationUsecase) {
		mockApps := new(MockApplicationRepo)
		mockApps.On("JobOwner", mock.Anything, int64(5)).Return(int64(3), nil)
		mockApps.On("GetByID", mock.Anything, int64(5)).Return(&domain.Application{ID: 5, Status: status}, nil)

		mockEmp := new(MockEmployerRepo)
		mockEmp.On("GetByUserID", mock.Anything, int64(30)).Return(employer, nil)

		return mockApps, usecase.NewApplicationUsecase(mockApps, new(MockJobRepo), mockEmp)
	}

	t.Run("Should allow Applied to Shortlisted", func(t *testing.T) {
		mockApps, uc := setup(domain.StatusApplied)
		mockApps.On("UpdateStatus", mock.Anything, int64(5), domain.StatusShortlisted).Return(nil)
		assert.NoError(t, uc.Transition(context.Background(), 30, 5, domain.StatusShortlisted))
	})

	t.Run("Should refuse skipping straight to Hired", func(t *testing.T) {
		mockApps, uc := setup(domain.StatusApplied)
		err := uc.Transition(context.Background(), 30, 5, domain.StatusHired)
		assert.Error(t, err)
		mockApps.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should freeze terminal states", func(t *testing.T) {
		for _, terminal := range []string{domain.StatusHired, domain.StatusRejected} {
			mockApps, uc := setup(terminal)
			err := uc.Transition(context.Background(), 30, 5, domain.StatusShortlisted)
			assert.Error(t, err)
			mockApps.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("Should refuse a non-owner employer", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockApps.On("JobOwner", mock.Anything, int64(5)).Return(int64(99), nil)

		mockEmp := new(MockEmployerRepo)
		mockEmp.On("GetByUserID", mock.Anything, int64(30)).Return(employer, nil)

		uc := usecase.NewApplicationUsecase(mockApps, new(MockJobRepo), mockEmp)
		err := uc.Transition(context.Background(), 30, 5, domain.StatusShortlisted)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own jobs")
	})
}

func TestCourseVerificationGate(t *testing.T) {
	course := &domain.Course{Title: "Advanced SQL", Mode: domain.CourseModeOnline, DurationDays: 30}

	t.Run("Should reject an unverified trainer", func(t *testing.T) {
		mockTrainers := new(MockTrainerRepo)
		mockTrainers.On("GetByUserID", mock.Anything, int64(20)).
			Return(&domain.TrainerProfile{TrainerID: 2, UserID: 20, IsVerified: false}, nil)

		mockCourses := new(MockCourseRepo)
		uc := usecase.NewCourseUsecase(mockCourses, mockTrainers)
		err := uc.CreateCourse(context.Background(), 20, course)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "pending admin verification")
		mockCourses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should let a verified trainer create a course", func(t *testing.T) {
		mockTrainers := new(MockTrainerRepo)
		mockTrainers.On("GetByUserID", mock.Anything, int64(20)).
			Return(&domain.TrainerProfile{TrainerID: 2, UserID: 20, IsVerified: true}, nil)

		mockCourses := new(MockCourseRepo)
		mockCourses.On("Create", mock.Anything, mock.Anything).Return(nil)

		uc := usecase.NewCourseUsecase(mockCourses, mockTrainers)
		c := *course
		assert.NoError(t, uc.CreateCourse(context.Background(), 20, &c))
		assert.Equal(t, int64(2), c.TrainerID)
	})

	t.Run("Should reject a non-trainer caller", func(t *testing.T) {
		mockTrainers := new(MockTrainerRepo)
		mockTrainers.On("GetByUserID", mock.Anything, int64(40)).Return(nil, domain.ErrNotFound)

		uc := usecase.NewCourseUsecase(new(MockCourseRepo), mockTrainers)
		err := uc.CreateCourse(context.Background(), 40, course)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only trainers")
	})
}
