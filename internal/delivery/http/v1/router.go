package v1

import (
	"net/http"
	"time"

	"github.com/Iqura-Alam/HireUp/config"
	"github.com/Iqura-Alam/HireUp/internal/delivery/http/middleware"
	"github.com/Iqura-Alam/HireUp/internal/delivery/http/response"
	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	AuthUC           domain.AuthUsecase
	SkillUC          domain.SkillUsecase
	CandidateUC      domain.CandidateUsecase
	RecommendationUC domain.RecommendationUsecase
	JobUC            domain.JobUsecase
	CourseUC         domain.CourseUsecase
	ApplicationUC    domain.ApplicationUsecase
	EnrollmentUC     domain.EnrollmentUsecase
	EmployerUC       domain.EmployerUsecase
	TrainerUC        domain.TrainerUsecase
	AdminUC          domain.AdminUsecase
	Tokens           *auth.TokenManager
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Auth endpoints carry a stricter limit against credential stuffing.
	authLimited := v1.Group("")
	authLimited.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(deps.Config.RateLimitLoginThreshold, window)))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))

	candidateOnly := protected.Group("")
	candidateOnly.Use(middleware.RequireRole(domain.RoleCandidate))

	employerOnly := protected.Group("")
	employerOnly.Use(middleware.RequireRole(domain.RoleEmployer))

	trainerOnly := protected.Group("")
	trainerOnly.Use(middleware.RequireRole(domain.RoleTrainer))

	adminOnly := protected.Group("")
	adminOnly.Use(middleware.RequireRole(domain.RoleAdmin))

	NewAuthHandler(authLimited, protected, deps.AuthUC)
	NewSkillHandler(v1, protected, deps.SkillUC)
	NewCandidateHandler(v1, candidateOnly, deps.CandidateUC, deps.RecommendationUC)
	NewJobHandler(v1, employerOnly, deps.JobUC)
	NewCourseHandler(v1, trainerOnly, deps.CourseUC)
	NewApplicationHandler(candidateOnly, employerOnly, deps.ApplicationUC)
	NewEnrollmentHandler(candidateOnly, trainerOnly, deps.EnrollmentUC)
	NewEmployerHandler(v1, employerOnly, deps.EmployerUC)
	NewTrainerHandler(v1, trainerOnly, deps.TrainerUC)
	NewAdminHandler(adminOnly, deps.AdminUC)

	return r
}
