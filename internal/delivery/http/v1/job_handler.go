package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Iqura-Alam/HireUp/internal/delivery/http/response"
	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, employerOnly *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	public.GET("/jobs", handler.Browse)
	public.GET("/jobs/:id", handler.Details)

	employerOnly.POST("/jobs", handler.Post)
	employerOnly.GET("/employers/me/jobs", handler.MyJobs)
}

// parseSkillIDs turns a comma-separated query value into ids, ignoring
// blanks.
func parseSkillIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil || id < 1 {
			return nil, apperror.BadRequest("Invalid skill_ids")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (h *JobHandler) Browse(c *gin.Context) {
	skillIDs, err := parseSkillIDs(c.Query("skill_ids"))
	if err != nil {
		c.Error(err)
		return
	}

	filter := domain.JobFilter{
		SkillIDs: skillIDs,
		Location: c.Query("location"),
		Keyword:  c.Query("keyword"),
	}

	jobs, err := h.jobUC.BrowseJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

func (h *JobHandler) Details(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

func (h *JobHandler) Post(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req domain.PostJobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.PostJob(c.Request.Context(), userID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

func (h *JobHandler) MyJobs(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	jobs, err := h.jobUC.ListMyJobs(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer job list", gin.H{
		"jobs":  jobs,
		"count": len(jobs),
	})
}
