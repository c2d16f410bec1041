package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"papermint/internal/models/request_models"
	"papermint/internal/services"
	"papermint/pkg/utils"
)

type GenerationController struct {
	generationService services.GenerationServiceInterface
}

func NewGenerationController(generationService services.GenerationServiceInterface) *GenerationController {
	return &GenerationController{
		generationService: generationService,
	}
}

// Generate godoc
// @Summary Turn extracted document text into a draft blog/listicle/course
// @Accept json
// @Produce json
// @Param request body request_models.GenerateRequest true "Generate Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /generate [post]
func (g *GenerationController) Generate(c *gin.Context) {
	var request request_models.GenerateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	entry, err := g.generationService.GenerateFromText(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toDraftResponse(entry), "Draft generated successfully")
}
