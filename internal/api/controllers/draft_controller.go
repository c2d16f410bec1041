package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"papermint/internal/models/response_models"
	"papermint/internal/services"
	mem "papermint/pkg/memcache"
	"papermint/pkg/utils"
)

type DraftController struct {
	contentService services.ContentServiceInterface
}

func NewDraftController(contentService services.ContentServiceInterface) *DraftController {
	return &DraftController{
		contentService: contentService,
	}
}

// Get serves the preview/editing screen. A cache miss falls back to durable
// content owned by the caller and repopulates the cache.
func (d *DraftController) Get(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.RespondError(c, http.StatusBadRequest, "Draft key is required")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	entry, err := d.contentService.GetDraft(c.Request.Context(), userID, key)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toDraftResponse(entry), "Draft fetched successfully")
}

func (d *DraftController) Discard(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.RespondError(c, http.StatusBadRequest, "Draft key is required")
		return
	}

	d.contentService.DiscardDraft(key)

	utils.RespondSuccess(c, nil, "Draft discarded")
}

func toDraftResponse(entry *mem.DraftEntry) response_models.DraftResponse {
	response := response_models.DraftResponse{
		Key:               entry.Key,
		Title:             entry.Title,
		Description:       entry.Description,
		Content:           entry.Content,
		OriginalContent:   entry.OriginalContent,
		ContentType:       entry.ContentType,
		Tags:              entry.Tags,
		KeyPoints:         entry.KeyPoints,
		Links:             entry.Links,
		EstimatedReadTime: entry.EstimatedReadTime,
		CreatedAt:         utils.FormatRFC3339(entry.CreatedAt),
	}

	for _, lesson := range entry.Lessons {
		response.Lessons = append(response.Lessons, response_models.LessonResponse{
			Title:   lesson.Title,
			Content: lesson.Content,
		})
	}

	return response
}
