package preview_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"
	mem "papermint/pkg/memcache"
)

var Module = fx.Provide(provideDraftStore)

// The draft cache is constructed once here and injected everywhere; nothing
// else in the codebase holds ambient access to it.
func provideDraftStore() mem.DraftStore {
	capacity := 512
	if raw := os.Getenv("DRAFT_CACHE_SIZE"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			capacity = parsed
		}
	}

	store, err := mem.NewDraftCache(capacity)
	if err != nil {
		log.Fatalf("Error initializing draft cache: %v", err)
	}

	return store
}
