package v1

import (
	"net/http"
	"strconv"

	"github.com/Iqura-Alam/HireUp/internal/delivery/http/response"
	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUC domain.CourseUsecase
}

func NewCourseHandler(public *gin.RouterGroup, trainerOnly *gin.RouterGroup, courseUC domain.CourseUsecase) {
	handler := &CourseHandler{courseUC: courseUC}

	public.GET("/courses", handler.Browse)

	trainerOnly.POST("/courses", handler.Create)
	trainerOnly.PUT("/courses/:id", handler.Update)
	trainerOnly.DELETE("/courses/:id", handler.Delete)
	trainerOnly.GET("/trainers/me/courses", handler.MyCourses)
}

func (h *CourseHandler) Browse(c *gin.Context) {
	skillIDs, err := parseSkillIDs(c.Query("skill_ids"))
	if err != nil {
		c.Error(err)
		return
	}

	filter := domain.CourseFilter{
		SkillIDs:     skillIDs,
		Organization: c.Query("organization"),
		Mode:         c.Query("mode"),
	}
	if raw := c.Query("max_fee"); raw != "" {
		fee, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid max_fee"))
			return
		}
		filter.MaxFee = &fee
	}

	courses, err := h.courseUC.BrowseCourses(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course list", gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}

type CourseRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	DurationDays int     `json:"duration_days" binding:"required"`
	Mode         string  `json:"mode" binding:"required"`
	Fee          float64 `json:"fee"`
	SkillIDs     []int64 `json:"skill_ids"`
}

func (h *CourseHandler) Create(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	course := domain.Course{
		Title:        req.Title,
		Description:  req.Description,
		DurationDays: req.DurationDays,
		Mode:         req.Mode,
		Fee:          req.Fee,
		SkillIDs:     req.SkillIDs,
	}
	if err := h.courseUC.CreateCourse(c.Request.Context(), userID, &course); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Course created", course)
}

func (h *CourseHandler) Update(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	course := domain.Course{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		DurationDays: req.DurationDays,
		Mode:         req.Mode,
		Fee:          req.Fee,
		SkillIDs:     req.SkillIDs,
	}
	if err := h.courseUC.UpdateCourse(c.Request.Context(), userID, &course); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course updated", course)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.courseUC.DeleteCourse(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course deleted", nil)
}

func (h *CourseHandler) MyCourses(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	courses, err := h.courseUC.ListMyCourses(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Trainer course list", gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}
