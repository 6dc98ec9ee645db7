package v1

import (
	"net/http"

	"github.com/Iqura-Alam/HireUp/internal/delivery/http/response"
	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(public *gin.RouterGroup, protected *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	public.GET("/skills", handler.List)
	protected.POST("/skills", handler.Resolve)
}

func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill list", skills)
}

type ResolveSkillRequest struct {
	Name string `json:"name" binding:"required"`
}

// Resolve returns the canonical registry entry for a skill name, creating
// it on first reference.
func (h *SkillHandler) Resolve(c *gin.Context) {
	var req ResolveSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill, err := h.skillUC.ResolveOrCreate(c.Request.Context(), req.Name)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill resolved", skill)
}
