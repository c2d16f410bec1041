package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"papermint/internal/models/request_models"
	mem "papermint/pkg/memcache"
	"papermint/pkg/utils"
)

type GenerationServiceInterface interface {
	GenerateFromText(ctx context.Context, request request_models.GenerateRequest) (*mem.DraftEntry, error)
}

type GenerationService struct {
	generator utils.ContentGeneratorInterface
	drafts    mem.DraftStore
}

func NewGenerationService(generator utils.ContentGeneratorInterface, drafts mem.DraftStore) GenerationServiceInterface {
	return &GenerationService{
		generator: generator,
		drafts:    drafts,
	}
}

// draftPayload is the JSON shape both AI providers are prompted to emit.
type draftPayload struct {
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	Content           string            `json:"content"`
	Tags              []string          `json:"tags"`
	KeyPoints         []string          `json:"key_points"`
	Links             []string          `json:"links"`
	EstimatedReadTime int               `json:"estimated_read_time"`
	Lessons           []mem.DraftLesson `json:"lessons"`
}

// GenerateFromText runs the AI pipeline and parks the result in the draft
// store under a fresh key. Nothing is written to the cache or the database
// on failure, so the caller can simply retry.
func (g *GenerationService) GenerateFromText(ctx context.Context, request request_models.GenerateRequest) (*mem.DraftEntry, error) {
	if strings.TrimSpace(request.SourceText) == "" {
		return nil, utils.ErrInvalidInput
	}

	rawJSON, err := g.generator.GenerateContentJSON(ctx, request.SourceText, request.ContentType, request.TitleHint)
	if err != nil {
		log.Printf("generation error: %v", err)
		return nil, utils.ErrGenerationFailed
	}

	var payload draftPayload
	if err := json.Unmarshal([]byte(rawJSON), &payload); err != nil {
		log.Printf("generation returned unparseable JSON: %v", err)
		return nil, utils.ErrGenerationFailed
	}

	if strings.TrimSpace(payload.Title) == "" || strings.TrimSpace(payload.Content) == "" {
		return nil, utils.ErrGenerationFailed
	}

	if payload.EstimatedReadTime <= 0 {
		payload.EstimatedReadTime = estimateReadTime(payload.Content)
	}

	key := uuid.New().String()
	entry := mem.DraftEntry{
		Key:               key,
		Title:             payload.Title,
		Description:       payload.Description,
		Content:           payload.Content,
		OriginalContent:   request.SourceText,
		ContentType:       request.ContentType,
		Tags:              payload.Tags,
		KeyPoints:         payload.KeyPoints,
		Links:             payload.Links,
		Lessons:           payload.Lessons,
		EstimatedReadTime: payload.EstimatedReadTime,
		CreatedAt:         time.Now(),
	}

	g.drafts.Set(key, entry)

	return &entry, nil
}

// estimateReadTime assumes ~200 words per minute, minimum one minute.
func estimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := words / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
