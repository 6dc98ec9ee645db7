package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Iqura-Alam/HireUp/internal/delivery/http/response"
	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(adminOnly *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := adminOnly.Group("/admin")
	{
		admin.GET("/audit-logs", handler.AuditLogs)
		admin.GET("/reports/popular-courses", handler.PopularCourses)
		admin.GET("/reports/top-skills", handler.TopSkills)
		admin.GET("/reports/top-skills/export", handler.TopSkillsExport)

		admin.GET("/pending-users", handler.PendingUsers)
		admin.POST("/verify/:role/:id", handler.VerifyUser)
		admin.POST("/verify-all", handler.VerifyAll)

		admin.GET("/users", handler.ListUsers)
		admin.PATCH("/users/:id/active", handler.SetUserActive)
		admin.DELETE("/users/:id", handler.DeleteUser)
	}
}

func queryLimit(c *gin.Context, fallback int) int {
	raw := c.Query("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return limit
}

func (h *AdminHandler) AuditLogs(c *gin.Context) {
	logs, err := h.adminUC.AuditLogs(c.Request.Context(), queryLimit(c, 100))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Audit logs", logs)
}

func (h *AdminHandler) PopularCourses(c *gin.Context) {
	courses, err := h.adminUC.PopularCourses(c.Request.Context(), queryLimit(c, 10))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Popular courses", courses)
}

func (h *AdminHandler) TopSkills(c *gin.Context) {
	skills, err := h.adminUC.TopSkills(c.Request.Context(), queryLimit(c, 10))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Top skills", skills)
}

func (h *AdminHandler) TopSkillsExport(c *gin.Context) {
	data, err := h.adminUC.TopSkillsReport(c.Request.Context(), queryLimit(c, 10))
	if err != nil {
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("top_skills_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *AdminHandler) PendingUsers(c *gin.Context) {
	pending, err := h.adminUC.PendingUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Pending verifications", gin.H{
		"pending": pending,
		"count":   len(pending),
	})
}

func (h *AdminHandler) VerifyUser(c *gin.Context) {
	adminID := c.GetInt64(string(domain.KeyUserID))
	profileID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.adminUC.VerifyUser(c.Request.Context(), adminID, c.Param("role"), profileID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile verified", nil)
}

func (h *AdminHandler) VerifyAll(c *gin.Context) {
	adminID := c.GetInt64(string(domain.KeyUserID))

	count, err := h.adminUC.VerifyAllPending(c.Request.Context(), adminID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "All pending profiles verified", gin.H{"verified": count})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUC.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User list", gin.H{
		"users": users,
		"count": len(users),
	})
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *AdminHandler) SetUserActive(c *gin.Context) {
	adminID := c.GetInt64(string(domain.KeyUserID))
	userID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.adminUC.SetUserActive(c.Request.Context(), adminID, userID, *req.Active); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User status updated", nil)
}

type DeleteUserRequest struct {
	TOTPCode string `json:"totp_code" binding:"required"`
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminID := c.GetInt64(string(domain.KeyUserID))
	userID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("A verification code is required"))
		return
	}

	if err := h.adminUC.DeleteUser(c.Request.Context(), adminID, userID, req.TOTPCode); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User deleted", nil)
}
