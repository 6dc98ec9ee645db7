package v1

import (
	"net/http"

	"github.com/Iqura-Alam/HireUp/internal/delivery/http/response"
	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	employerUC domain.EmployerUsecase
}

func NewEmployerHandler(public *gin.RouterGroup, employerOnly *gin.RouterGroup, employerUC domain.EmployerUsecase) {
	handler := &EmployerHandler{employerUC: employerUC}

	public.GET("/employers/:id", handler.GetPublicProfile)

	employerOnly.GET("/employers/me", handler.GetProfile)
	employerOnly.PUT("/employers/me", handler.UpdateProfile)
}

func (h *EmployerHandler) GetProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	profile, err := h.employerUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer profile", profile)
}

func (h *EmployerHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req domain.EmployerProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.employerUC.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer profile updated", nil)
}

func (h *EmployerHandler) GetPublicProfile(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.employerUC.GetPublicProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Public employer profile", profile)
}
