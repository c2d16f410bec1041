package mem

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DraftEntry is a generated-but-unpublished piece of content. It only ever
// lives in process memory: anything that must survive a restart has to be in
// the contents table first.
type DraftEntry struct {
	Key               string
	Title             string
	Description       string
	Content           string
	OriginalContent   string
	ContentType       string
	Tags              []string
	KeyPoints         []string
	Links             []string
	Lessons           []DraftLesson
	EstimatedReadTime int
	CreatedAt         time.Time
}

type DraftLesson struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DraftStore holds drafts between generation and publish so the creation
// wizard never re-calls the AI service between steps.
//
// A miss is not an error; callers rehydrate from durable storage and Set the
// result themselves. Writes are whole-entry replacements, last writer wins.
type DraftStore interface {
	Set(key string, entry DraftEntry)
	Get(key string) (DraftEntry, bool)
	Delete(key string)
	Clear()
}

type DraftCache struct {
	cache *lru.Cache[string, DraftEntry]
}

// NewDraftCache builds a bounded store. The capacity bound is the eviction
// policy: least-recently previewed drafts fall out first.
func NewDraftCache(capacity int) (*DraftCache, error) {
	cache, err := lru.New[string, DraftEntry](capacity)
	if err != nil {
		return nil, err
	}
	return &DraftCache{cache: cache}, nil
}

func (s *DraftCache) Set(key string, entry DraftEntry) {
	entry.Key = key
	s.cache.Add(key, entry)
}

func (s *DraftCache) Get(key string) (DraftEntry, bool) {
	return s.cache.Get(key)
}

func (s *DraftCache) Delete(key string) {
	s.cache.Remove(key)
}

func (s *DraftCache) Clear() {
	s.cache.Purge()
}
