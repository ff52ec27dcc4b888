package catalog_cache

import (
	"sync"
	"time"

	"github.com/16SULPHUR/new-vh-ecom/models"
)

const TTL = 5 * time.Minute

// ── Latest products cache ────────────────────────────────────────────────────
// The landing carousels hit this on every page view; the catalog changes
// rarely, so a short in-process TTL keeps the platform quiet.

type latestEntry struct {
	products  []models.StorefrontProduct
	fetchedAt time.Time
}

var (
	latestMu    sync.RWMutex
	latestCache *latestEntry
)

func GetLatest() ([]models.StorefrontProduct, bool) {
	latestMu.RLock()
	defer latestMu.RUnlock()
	if latestCache != nil && time.Since(latestCache.fetchedAt) < TTL {
		return latestCache.products, true
	}
	return nil, false
}

func SetLatest(products []models.StorefrontProduct) {
	latestMu.Lock()
	defer latestMu.Unlock()
	latestCache = &latestEntry{products: products, fetchedAt: time.Now()}
}

// ── Category names cache ─────────────────────────────────────────────────────

type namesEntry struct {
	names     []string
	fetchedAt time.Time
}

var (
	namesMu    sync.RWMutex
	namesCache *namesEntry
)

func GetCategoryNames() ([]string, bool) {
	namesMu.RLock()
	defer namesMu.RUnlock()
	if namesCache != nil && time.Since(namesCache.fetchedAt) < TTL {
		return namesCache.names, true
	}
	return nil, false
}

func SetCategoryNames(names []string) {
	namesMu.Lock()
	defer namesMu.Unlock()
	namesCache = &namesEntry{names: names, fetchedAt: time.Now()}
}
