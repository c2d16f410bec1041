package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"papermint/internal/models/request_models"
	"papermint/internal/services"
	"papermint/pkg/utils"
)

type ContentController struct {
	contentService services.ContentServiceInterface
}

func NewContentController(contentService services.ContentServiceInterface) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// Publish godoc
// @Summary Persist a cached draft as durable content
// @Accept json
// @Produce json
// @Param request body request_models.PublishRequest true "Publish Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /contents [post]
func (ctl *ContentController) Publish(c *gin.Context) {
	var request request_models.PublishRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	content, err := ctl.contentService.Publish(c.Request.Context(), userID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, content, "Content published successfully")
}

// Get serves the public content route. The optional token query parameter is
// the paywall bypass; the response is either the full view, a teaser, or a
// 404 when the content does not exist or is not published.
func (ctl *ContentController) Get(c *gin.Context) {
	contentID := c.Param("id")
	if contentID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Content ID is required")
		return
	}

	// Unauthenticated viewers are allowed here; user_id is simply empty.
	requesterID := c.GetString("user_id")
	token := c.Query("token")

	view, err := ctl.contentService.GetContent(c.Request.Context(), contentID, requesterID, token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if view.Full != nil {
		utils.RespondSuccess(c, view.Full, "Content fetched successfully")
		return
	}

	utils.RespondSuccess(c, view.Teaser, "Teaser fetched successfully")
}

func (ctl *ContentController) Update(c *gin.Context) {
	contentID := c.Param("id")
	if contentID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Content ID is required")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	var request request_models.UpdateContentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := ctl.contentService.UpdateContent(c.Request.Context(), userID, contentID, request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Content updated successfully")
}

func (ctl *ContentController) Delete(c *gin.Context) {
	contentID := c.Param("id")
	if contentID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Content ID is required")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	if err := ctl.contentService.DeleteContent(c.Request.Context(), userID, contentID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Content deleted successfully")
}

func (ctl *ContentController) ListMine(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	contents, err := ctl.contentService.ListByOwner(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contents, "Contents fetched successfully")
}
