package v1

import (
	"net/http"
	"strconv"

	"github.com/Iqura-Alam/HireUp/internal/delivery/http/response"
	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC      domain.CandidateUsecase
	recommendationUC domain.RecommendationUsecase
}

func NewCandidateHandler(public *gin.RouterGroup, candidateOnly *gin.RouterGroup, candidateUC domain.CandidateUsecase, recommendationUC domain.RecommendationUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC, recommendationUC: recommendationUC}

	// Public profile view, contact and salary data redacted.
	public.GET("/candidates/:id", handler.GetPublicProfile)

	me := candidateOnly.Group("/candidates/me")
	{
		me.GET("", handler.GetProfile)
		me.PUT("/general", handler.UpdateGeneralDetails)
		me.PUT("/preferences", handler.UpdateJobPreferences)

		me.POST("/experience", handler.CreateExperience)
		me.PUT("/experience/:id", handler.UpdateExperience)
		me.DELETE("/experience/:id", handler.DeleteExperience)

		me.POST("/education", handler.CreateEducation)
		me.PUT("/education/:id", handler.UpdateEducation)
		me.DELETE("/education/:id", handler.DeleteEducation)

		me.POST("/projects", handler.CreateProject)
		me.PUT("/projects/:id", handler.UpdateProject)
		me.DELETE("/projects/:id", handler.DeleteProject)

		me.POST("/skills", handler.AddSkill)
		me.GET("/recommendations", handler.Recommendations)
	}
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.BadRequest("Invalid ID format")
	}
	return id, nil
}

func (h *CandidateHandler) GetProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	profile, err := h.candidateUC.GetFullProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

func (h *CandidateHandler) GetPublicProfile(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.candidateUC.GetPublicProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Public candidate profile", profile)
}

func (h *CandidateHandler) UpdateGeneralDetails(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req domain.GeneralDetailsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.candidateUC.UpdateGeneralDetails(c.Request.Context(), userID, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "General details updated", nil)
}

func (h *CandidateHandler) UpdateJobPreferences(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req domain.JobPreferencesInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.candidateUC.UpdateJobPreferences(c.Request.Context(), userID, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job preferences updated", nil)
}

func (h *CandidateHandler) CreateExperience(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req domain.Experience
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.candidateUC.CreateExperience(c.Request.Context(), userID, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Experience added", req)
}

func (h *CandidateHandler) UpdateExperience(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req domain.Experience
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	req.ID = id

	if err := h.candidateUC.UpdateExperience(c.Request.Context(), userID, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience updated", req)
}

func (h *CandidateHandler) DeleteExperience(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.candidateUC.DeleteExperience(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience removed", nil)
}

func (h *CandidateHandler) CreateEducation(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req domain.Education
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.candidateUC.CreateEducation(c.Request.Context(), userID, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Education added", req)
}

func (h *CandidateHandler) UpdateEducation(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req domain.Education
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	req.ID = id

	if err := h.candidateUC.UpdateEducation(c.Request.Context(), userID, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education updated", req)
}

func (h *CandidateHandler) DeleteEducation(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.candidateUC.DeleteEducation(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education removed", nil)
}

func (h *CandidateHandler) CreateProject(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req domain.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.candidateUC.CreateProject(c.Request.Context(), userID, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Project added", req)
}

func (h *CandidateHandler) UpdateProject(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req domain.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	req.ID = id

	if err := h.candidateUC.UpdateProject(c.Request.Context(), userID, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project updated", req)
}

func (h *CandidateHandler) DeleteProject(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.candidateUC.DeleteProject(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project removed", nil)
}

func (h *CandidateHandler) AddSkill(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req domain.AddSkillInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.candidateUC.AddSkill(c.Request.Context(), userID, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill added", nil)
}

// Recommendations ranks visible courses against the candidate's skill gaps.
// An optional job_id query parameter focuses the gap on one job's
// requirements.
func (h *CandidateHandler) Recommendations(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var jobID *int64
	if raw := c.Query("job_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			c.Error(apperror.BadRequest("Invalid job_id"))
			return
		}
		jobID = &id
	}

	recs, err := h.recommendationUC.RecommendCourses(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course recommendations", gin.H{
		"recommendations": recs,
		"count":           len(recs),
	})
}
