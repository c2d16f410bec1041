package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"papermint/internal/models/request_models"
	mem "papermint/pkg/memcache"
	"papermint/pkg/utils"
)

const validDraftJSON = `{
	"title": "The Compact Guide To Sourdough",
	"description": "Everything the original PDF covers, rewritten for the web.",
	"content": "## Starter\nFeed it daily...",
	"tags": ["baking", "sourdough"],
	"key_points": ["hydration matters"],
	"links": ["https://example.com/ref"],
	"estimated_read_time": 6,
	"lessons": []
}`

func newGenerationFixture(t *testing.T, generator *fakeGenerator) (GenerationServiceInterface, *mem.DraftCache) {
	t.Helper()
	drafts, err := mem.NewDraftCache(16)
	require.NoError(t, err)
	return NewGenerationService(generator, drafts), drafts
}

func TestGenerateFromText_StoresDraftUnderFreshKey(t *testing.T) {
	generator := &fakeGenerator{response: validDraftJSON}
	svc, drafts := newGenerationFixture(t, generator)

	entry, err := svc.GenerateFromText(context.Background(), request_models.GenerateRequest{
		SourceText:  "long extracted pdf text",
		ContentType: "blog",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, entry.Key)
	assert.Equal(t, "The Compact Guide To Sourdough", entry.Title)
	assert.Equal(t, "long extracted pdf text", entry.OriginalContent)
	assert.Equal(t, "blog", entry.ContentType)
	assert.Equal(t, 6, entry.EstimatedReadTime)

	cached, ok := drafts.Get(entry.Key)
	require.True(t, ok)
	assert.Equal(t, *entry, cached)
}

func TestGenerateFromText_EmptySourceRejectedWithoutAICall(t *testing.T) {
	generator := &fakeGenerator{response: validDraftJSON}
	svc, _ := newGenerationFixture(t, generator)

	_, err := svc.GenerateFromText(context.Background(), request_models.GenerateRequest{
		SourceText:  "   ",
		ContentType: "blog",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Zero(t, generator.calls)
}

func TestGenerateFromText_ProviderFailureCachesNothing(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("upstream 500")}
	svc, drafts := newGenerationFixture(t, generator)

	_, err := svc.GenerateFromText(context.Background(), request_models.GenerateRequest{
		SourceText:  "text",
		ContentType: "blog",
	})

	assert.ErrorIs(t, err, utils.ErrGenerationFailed)
	drafts.Set("probe", mem.DraftEntry{Title: "probe"})
	// only the probe exists; generation wrote nothing
	got, _ := drafts.Get("probe")
	assert.Equal(t, "probe", got.Title)
}

func TestGenerateFromText_UnparseableJSONFails(t *testing.T) {
	generator := &fakeGenerator{response: "Sure! Here is your JSON: {broken"}
	svc, _ := newGenerationFixture(t, generator)

	_, err := svc.GenerateFromText(context.Background(), request_models.GenerateRequest{
		SourceText:  "text",
		ContentType: "listicle",
	})

	assert.ErrorIs(t, err, utils.ErrGenerationFailed)
}

func TestGenerateFromText_MissingTitleOrBodyFails(t *testing.T) {
	generator := &fakeGenerator{response: `{"title": "", "content": "body"}`}
	svc, _ := newGenerationFixture(t, generator)

	_, err := svc.GenerateFromText(context.Background(), request_models.GenerateRequest{
		SourceText:  "text",
		ContentType: "blog",
	})

	assert.ErrorIs(t, err, utils.ErrGenerationFailed)
}

func TestGenerateFromText_ReadTimeFallback(t *testing.T) {
	body := strings.Repeat("word ", 600)
	generator := &fakeGenerator{response: `{"title": "T", "content": "` + body + `"}`}
	svc, _ := newGenerationFixture(t, generator)

	entry, err := svc.GenerateFromText(context.Background(), request_models.GenerateRequest{
		SourceText:  "text",
		ContentType: "blog",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, entry.EstimatedReadTime, "600 words at ~200wpm")
}

func TestGenerateFromText_CourseLessonsCarriedThrough(t *testing.T) {
	generator := &fakeGenerator{response: `{
		"title": "Course",
		"content": "overview",
		"lessons": [
			{"title": "Lesson 1", "content": "intro"},
			{"title": "Lesson 2", "content": "depth"}
		]
	}`}
	svc, _ := newGenerationFixture(t, generator)

	entry, err := svc.GenerateFromText(context.Background(), request_models.GenerateRequest{
		SourceText:  "text",
		ContentType: "course",
	})

	require.NoError(t, err)
	require.Len(t, entry.Lessons, 2)
	assert.Equal(t, "Lesson 1", entry.Lessons[0].Title)
}
