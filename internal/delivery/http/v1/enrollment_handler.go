package v1

import (
	"net/http"

	"github.com/Iqura-Alam/HireUp/internal/delivery/http/response"
	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/internal/metrics"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	enrollmentUC domain.EnrollmentUsecase
}

func NewEnrollmentHandler(candidateOnly *gin.RouterGroup, trainerOnly *gin.RouterGroup, enrollmentUC domain.EnrollmentUsecase) {
	handler := &EnrollmentHandler{enrollmentUC: enrollmentUC}

	candidateOnly.POST("/courses/:id/enroll", handler.Enroll)
	candidateOnly.GET("/candidates/me/enrollments", handler.MyEnrollments)

	trainerOnly.GET("/trainers/me/enrollments", handler.ListForTrainer)
	trainerOnly.PATCH("/enrollments/:id/status", handler.Transition)
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	courseID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	enrollment, err := h.enrollmentUC.Enroll(c.Request.Context(), userID, courseID)
	if err != nil {
		c.Error(err)
		return
	}

	metrics.EnrollmentsCreated.Inc()
	response.Success(c, http.StatusCreated, "Enrollment submitted", enrollment)
}

func (h *EnrollmentHandler) MyEnrollments(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	enrollments, err := h.enrollmentUC.MyEnrollments(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My enrollments", gin.H{
		"enrollments": enrollments,
		"count":       len(enrollments),
	})
}

func (h *EnrollmentHandler) ListForTrainer(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	enrollments, err := h.enrollmentUC.ListForTrainer(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course enrollments", gin.H{
		"enrollments": enrollments,
		"count":       len(enrollments),
	})
}

func (h *EnrollmentHandler) Transition(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.enrollmentUC.Transition(c.Request.Context(), userID, id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Enrollment status updated", nil)
}
