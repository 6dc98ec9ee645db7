package v1

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Iqura-Alam/HireUp/internal/delivery/http/response"
	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/internal/metrics"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(candidateOnly *gin.RouterGroup, employerOnly *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	candidateOnly.POST("/jobs/:id/apply", handler.Apply)
	candidateOnly.GET("/candidates/me/applications", handler.MyApplications)

	employerOnly.GET("/jobs/:id/applications", handler.ListForJob)
	employerOnly.PATCH("/applications/:id/status", handler.Transition)
	employerOnly.GET("/applications/:id/cv", handler.DownloadCV)
}

// Apply takes a multipart form: a "cv" PDF plus an optional "answers" JSON
// array for the job's screening questions.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	jobID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	fileHeader, err := c.FormFile("cv")
	if err != nil {
		c.Error(apperror.BadRequest("A CV file is required to apply"))
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		c.Error(apperror.BadRequest("CV must be a PDF file"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	cv, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	var answers []domain.ApplicationAnswer
	if raw := c.PostForm("answers"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &answers); err != nil {
			c.Error(apperror.BadRequest("Invalid answers payload"))
			return
		}
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), userID, &domain.ApplyInput{
		JobID:   jobID,
		CVFile:  cv,
		Answers: answers,
	})
	if err != nil {
		c.Error(err)
		return
	}

	metrics.ApplicationsSubmitted.Inc()
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	apps, err := h.applicationUC.MyApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My applications", gin.H{
		"applications": apps,
		"count":        len(apps),
	})
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	jobID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	apps, err := h.applicationUC.ListForJob(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job applications", gin.H{
		"applications": apps,
		"count":        len(apps),
	})
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ApplicationHandler) Transition(c *gin.Context) {
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

	if err := h.applicationUC.Transition(c.Request.Context(), userID, id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}

func (h *ApplicationHandler) DownloadCV(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	cv, err := h.applicationUC.DownloadCV(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=application_%d_cv.pdf", id))
	c.Data(http.StatusOK, "application/pdf", cv)
}
