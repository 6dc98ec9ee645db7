package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Iqura-Alam/HireUp/config"
	v1 "github.com/Iqura-Alam/HireUp/internal/delivery/http/v1"
	"github.com/Iqura-Alam/HireUp/internal/metrics"
	"github.com/Iqura-Alam/HireUp/internal/repository/postgres"
	"github.com/Iqura-Alam/HireUp/internal/scheduler"
	"github.com/Iqura-Alam/HireUp/internal/usecase"
	"github.com/Iqura-Alam/HireUp/pkg/auth"
	"github.com/Iqura-Alam/HireUp/pkg/database"
	"github.com/Iqura-Alam/HireUp/pkg/logger"
	"github.com/Iqura-Alam/HireUp/pkg/redis"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting HireUp backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Metrics
	metrics.Register()

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	courseRepo := postgres.NewCourseRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	enrollmentRepo := postgres.NewEnrollmentRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)
	trainerRepo := postgres.NewTrainerRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)

	// 7. Setup UseCases
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, skillUC)
	recommendationUC := usecase.NewRecommendationUsecase(candidateRepo, jobRepo, courseRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, employerRepo)
	courseUC := usecase.NewCourseUsecase(courseRepo, trainerRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, employerRepo)
	enrollmentUC := usecase.NewEnrollmentUsecase(enrollmentRepo, courseRepo, trainerRepo)
	employerUC := usecase.NewEmployerUsecase(employerRepo)
	trainerUC := usecase.NewTrainerUsecase(trainerRepo, courseRepo)
	adminUC := usecase.NewAdminUsecase(adminRepo, skillRepo, courseRepo, cfg.AdminTOTPSecret)

	// 8. Setup Background Jobs
	sched := scheduler.New(jobRepo)
	if err := sched.Start(); err != nil {
		logger.Log.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:           authUC,
		SkillUC:          skillUC,
		CandidateUC:      candidateUC,
		RecommendationUC: recommendationUC,
		JobUC:            jobUC,
		CourseUC:         courseUC,
		ApplicationUC:    applicationUC,
		EnrollmentUC:     enrollmentUC,
		EmployerUC:       employerUC,
		TrainerUC:        trainerUC,
		AdminUC:          adminUC,
		Tokens:           tokens,
		Config:           cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
