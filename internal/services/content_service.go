package services

import (
	"context"
	"encoding/json"
	"log"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"papermint/internal/models/db_models"
	"papermint/internal/models/request_models"
	"papermint/internal/models/response_models"
	"papermint/internal/repositories"
	mem "papermint/pkg/memcache"
	"papermint/pkg/utils"
)

const teaserExcerptLen = 280

// ContentView is the outcome of an access-checked read: exactly one of Full
// or Teaser is set.
type ContentView struct {
	Full   *response_models.ContentResponse
	Teaser *response_models.TeaserResponse
}

type ContentServiceInterface interface {
	GetDraft(ctx context.Context, requesterID string, key string) (*mem.DraftEntry, error)
	DiscardDraft(key string)
	Publish(ctx context.Context, ownerID string, request request_models.PublishRequest) (*response_models.ContentResponse, error)
	GetContent(ctx context.Context, id string, requesterID string, presentedToken string) (*ContentView, error)
	UpdateContent(ctx context.Context, ownerID string, id string, request request_models.UpdateContentRequest) error
	DeleteContent(ctx context.Context, ownerID string, id string) error
	ListByOwner(ctx context.Context, ownerID string, page int, pageSize int) ([]response_models.ContentResponse, error)
}

type ContentService struct {
	contentRepo    repositories.ContentRepository
	accountRepo    repositories.AccountRepository
	accessService  AccessServiceInterface
	billingService BillingServiceInterface
	drafts         mem.DraftStore
}

func NewContentService(
	contentRepo repositories.ContentRepository,
	accountRepo repositories.AccountRepository,
	accessService AccessServiceInterface,
	billingService BillingServiceInterface,
	drafts mem.DraftStore,
) ContentServiceInterface {
	return &ContentService{
		contentRepo:    contentRepo,
		accountRepo:    accountRepo,
		accessService:  accessService,
		billingService: billingService,
		drafts:         drafts,
	}
}

// GetDraft is cache-first. On a miss the key is treated as a content id and
// the draft is rehydrated from durable storage (owner only), then put back in
// the cache so the next preview step is served from memory.
func (s *ContentService) GetDraft(ctx context.Context, requesterID string, key string) (*mem.DraftEntry, error) {
	if entry, ok := s.drafts.Get(key); ok {
		return &entry, nil
	}

	content, err := s.contentRepo.FindById(ctx, key)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if content == nil || content.OwnerID.String() != requesterID {
		return nil, utils.ErrDraftNotFound
	}

	entry := draftFromContent(content)
	s.drafts.Set(key, entry)

	return &entry, nil
}

func (s *ContentService) DiscardDraft(key string) {
	s.drafts.Delete(key)
}

// Publish persists a cached draft as durable content. Publishing is a
// creator feature, so it requires an active platform subscription. The cache
// entry is removed only after the row is committed; the draft store is never
// the system of record.
func (s *ContentService) Publish(ctx context.Context, ownerID string, request request_models.PublishRequest) (*response_models.ContentResponse, error) {
	account, err := s.accountRepo.FindById(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	if !s.billingService.IsActive(account) {
		return nil, utils.ErrSubscriptionRequired
	}

	entry, ok := s.drafts.Get(request.DraftKey)
	if !ok {
		return nil, utils.ErrDraftNotFound
	}

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	accessToken, err := utils.GenerateSecureToken(16)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	lessons, err := json.Marshal(entry.Lessons)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	content := &db_models.Content{
		OwnerID:           ownerUUID,
		Title:             entry.Title,
		Description:       entry.Description,
		ContentType:       db_models.ContentType(entry.ContentType),
		Body:              entry.Content,
		OriginalBody:      entry.OriginalContent,
		Tags:              entry.Tags,
		KeyPoints:         entry.KeyPoints,
		Links:             entry.Links,
		Lessons:           datatypes.JSON(lessons),
		EstimatedReadTime: entry.EstimatedReadTime,
		Published:         request.Published,
		PriceCents:        request.PriceCents,
		AccessToken:       accessToken,
	}

	if err := s.contentRepo.Insert(ctx, content); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.drafts.Delete(request.DraftKey)

	response := toContentResponse(content, true)
	return &response, nil
}

// GetContent runs the access gate and shapes the result accordingly.
// NotPublished surfaces as a not-found so unpublished content is
// indistinguishable from absent content.
func (s *ContentService) GetContent(ctx context.Context, id string, requesterID string, presentedToken string) (*ContentView, error) {
	content, err := s.contentRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if content == nil {
		return nil, utils.ErrContentNotFound
	}

	decision := s.accessService.ResolveAccess(content, requesterID, presentedToken)

	if decision.Granted {
		full := toContentResponse(content, decision.Reason == ReasonOwnerAccess)
		return &ContentView{Full: &full}, nil
	}

	switch decision.Reason {
	case ReasonNotPublished:
		return nil, utils.ErrContentNotFound
	default:
		teaser := toTeaserResponse(content, decision.Reason)
		return &ContentView{Teaser: &teaser}, nil
	}
}

func (s *ContentService) UpdateContent(ctx context.Context, ownerID string, id string, request request_models.UpdateContentRequest) error {
	content, err := s.contentRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if content == nil {
		return utils.ErrContentNotFound
	}
	if content.OwnerID.String() != ownerID {
		return utils.ErrNotContentOwner
	}

	fields := map[string]interface{}{}
	if request.Title != nil {
		fields["title"] = *request.Title
	}
	if request.Description != nil {
		fields["description"] = *request.Description
	}
	if request.Body != nil {
		fields["body"] = *request.Body
	}
	if request.Tags != nil {
		fields["tags"] = pq.StringArray(request.Tags)
	}
	if request.PriceCents != nil {
		fields["price_cents"] = *request.PriceCents
	}
	if request.Published != nil {
		fields["published"] = *request.Published
	}

	if len(fields) == 0 {
		return nil
	}

	if err := s.contentRepo.UpdateFields(ctx, id, fields); err != nil {
		return utils.ErrDatabaseError
	}

	// Edits supersede whatever preview was cached for this content.
	s.drafts.Delete(id)

	return nil
}

func (s *ContentService) DeleteContent(ctx context.Context, ownerID string, id string) error {
	content, err := s.contentRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if content == nil {
		return utils.ErrContentNotFound
	}
	if content.OwnerID.String() != ownerID {
		return utils.ErrNotContentOwner
	}

	if err := s.contentRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}

	s.drafts.Delete(id)

	return nil
}

func (s *ContentService) ListByOwner(ctx context.Context, ownerID string, page int, pageSize int) ([]response_models.ContentResponse, error) {
	contents, err := s.contentRepo.ListByOwner(ctx, ownerID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ContentResponse, 0, len(contents))
	for i := range contents {
		responses = append(responses, toContentResponse(&contents[i], true))
	}

	return responses, nil
}

func draftFromContent(content *db_models.Content) mem.DraftEntry {
	return mem.DraftEntry{
		Key:               content.ID.String(),
		Title:             content.Title,
		Description:       content.Description,
		Content:           content.Body,
		OriginalContent:   content.OriginalBody,
		ContentType:       string(content.ContentType),
		Tags:              content.Tags,
		KeyPoints:         content.KeyPoints,
		Links:             content.Links,
		Lessons:           parseLessons(content.Lessons),
		EstimatedReadTime: content.EstimatedReadTime,
		CreatedAt:         utils.FromUnixSeconds(content.CreatedAt),
	}
}

func toContentResponse(content *db_models.Content, includeOriginal bool) response_models.ContentResponse {
	response := response_models.ContentResponse{
		ID:                content.ID.String(),
		OwnerID:           content.OwnerID.String(),
		Title:             content.Title,
		Description:       content.Description,
		ContentType:       string(content.ContentType),
		Body:              content.Body,
		Tags:              content.Tags,
		KeyPoints:         content.KeyPoints,
		Links:             content.Links,
		EstimatedReadTime: content.EstimatedReadTime,
		Published:         content.Published,
		PriceCents:        content.PriceCents,
	}

	if includeOriginal {
		response.OriginalBody = content.OriginalBody
	}

	for _, lesson := range parseLessons(content.Lessons) {
		response.Lessons = append(response.Lessons, response_models.LessonResponse{
			Title:   lesson.Title,
			Content: lesson.Content,
		})
	}

	return response
}

func toTeaserResponse(content *db_models.Content, reason AccessReason) response_models.TeaserResponse {
	excerpt := content.Body
	if len(excerpt) > teaserExcerptLen {
		// Back up to a rune boundary so the cut never splits a multi-byte
		// character.
		cut := teaserExcerptLen
		for cut > 0 && !utf8.RuneStart(excerpt[cut]) {
			cut--
		}
		excerpt = excerpt[:cut] + "..."
	}

	return response_models.TeaserResponse{
		ID:          content.ID.String(),
		Title:       content.Title,
		Description: content.Description,
		ContentType: string(content.ContentType),
		Excerpt:     excerpt,
		Tags:        content.Tags,
		PriceCents:  content.PriceCents,
		Paywalled:   true,
		Reason:      string(reason),
	}
}

func parseLessons(raw datatypes.JSON) []mem.DraftLesson {
	if len(raw) == 0 {
		return nil
	}

	var lessons []mem.DraftLesson
	if err := json.Unmarshal(raw, &lessons); err != nil {
		log.Printf("unparseable lessons column: %v", err)
		return nil
	}

	return lessons
}
