package catalog_cache

import (
	"testing"
	"time"

	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestProductsCache(t *testing.T) {
	latestMu.Lock()
	latestCache = nil
	latestMu.Unlock()

	_, ok := GetLatest()
	assert.False(t, ok, "cold cache must miss")

	products := []models.StorefrontProduct{{ID: 1, Title: "Banarasi Saree", Price: 5499}}
	SetLatest(products)

	got, ok := GetLatest()
	require.True(t, ok)
	assert.Equal(t, products, got)
}

func TestLatestProductsCacheExpires(t *testing.T) {
	SetLatest([]models.StorefrontProduct{{ID: 2}})

	latestMu.Lock()
	latestCache.fetchedAt = time.Now().Add(-TTL - time.Second)
	latestMu.Unlock()

	_, ok := GetLatest()
	assert.False(t, ok, "entries past the TTL must miss")
}

func TestCategoryNamesCache(t *testing.T) {
	namesMu.Lock()
	namesCache = nil
	namesMu.Unlock()

	_, ok := GetCategoryNames()
	assert.False(t, ok)

	SetCategoryNames([]string{"Sarees", "Lehengas"})
	names, ok := GetCategoryNames()
	require.True(t, ok)
	assert.Equal(t, []string{"Sarees", "Lehengas"}, names)
}
