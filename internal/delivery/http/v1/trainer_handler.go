package v1

import (
	"net/http"

	"github.com/Iqura-Alam/HireUp/internal/delivery/http/response"
	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TrainerHandler struct {
	trainerUC domain.TrainerUsecase
}

func NewTrainerHandler(public *gin.RouterGroup, trainerOnly *gin.RouterGroup, trainerUC domain.TrainerUsecase) {
	handler := &TrainerHandler{trainerUC: trainerUC}

	public.GET("/trainers/:id", handler.GetPublicProfile)

	trainerOnly.GET("/trainers/me", handler.GetProfile)
	trainerOnly.PUT("/trainers/me", handler.UpdateProfile)
}

func (h *TrainerHandler) GetProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	profile, err := h.trainerUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Trainer profile", profile)
}

func (h *TrainerHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req domain.TrainerProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.trainerUC.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Trainer profile updated", nil)
}

func (h *TrainerHandler) GetPublicProfile(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.trainerUC.GetPublicProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Public trainer profile", profile)
}
