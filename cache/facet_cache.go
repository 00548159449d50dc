package facet_cache

import (
	"sync"
	"time"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
)

const TTL = 5 * time.Minute

// ── Facet metadata cache ─────────────────────────────────────────────────────
// Facet counts need one query per facet group; for anonymous traffic the
// same listing states repeat constantly, so results are cached per state key
// (base state + active filters + language).

type facetEntry struct {
	data      models.FilterMetadata
	fetchedAt time.Time
}

var (
	facetMu    sync.RWMutex
	facetCache = map[string]*facetEntry{}
)

func Get(stateKey string) (models.FilterMetadata, bool) {
	facetMu.RLock()
	defer facetMu.RUnlock()
	if e, ok := facetCache[stateKey]; ok && time.Since(e.fetchedAt) < TTL {
		return e.data, true
	}
	return models.FilterMetadata{}, false
}

func Set(stateKey string, data models.FilterMetadata) {
	facetMu.Lock()
	defer facetMu.Unlock()
	facetCache[stateKey] = &facetEntry{data: data, fetchedAt: time.Now()}

	// Opportunistic sweep so abandoned states do not pile up.
	if len(facetCache) > 512 {
		for key, e := range facetCache {
			if time.Since(e.fetchedAt) >= TTL {
				delete(facetCache, key)
			}
		}
	}
}

// ── Invalidate everything (call after catalog imports) ───────────────────────

func Invalidate() {
	facetMu.Lock()
	facetCache = map[string]*facetEntry{}
	facetMu.Unlock()
}
