package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
)

func newTestCache(t *testing.T) (*AnalysisCache, *miniredis.Miniredis) {
	server := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	return NewAnalysisCacheWithClient(client, 30*time.Minute), server
}

func testFilters() *domain.AnalysisFilters {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	return &domain.AnalysisFilters{StartDate: &start, EndDate: &end}
}

func TestAnalysisCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	analysis := &domain.PatternAnalysis{
		EntityID:           "ENT001",
		PatternType:        domain.PatternTypeHidden,
		UrgencyLevel:       domain.UrgencyCritical,
		PrimaryInsight:     "padrão cruzado encontrado",
		DataPointsAnalyzed: 42,
		Actionable:         true,
	}

	err := cache.Set(ctx, "ENT001", testFilters(), analysis)
	assert.NoError(t, err)

	cached, err := cache.Get(ctx, "ENT001", testFilters())
	assert.NoError(t, err)
	assert.NotNil(t, cached)
	assert.Equal(t, "ENT001", cached.EntityID)
	assert.Equal(t, domain.PatternTypeHidden, cached.PatternType)
	assert.Equal(t, 42, cached.DataPointsAnalyzed)
	assert.True(t, cached.Actionable)
}

func TestAnalysisCache_MissRetornaNil(t *testing.T) {
	cache, _ := newTestCache(t)

	cached, err := cache.Get(context.Background(), "ENT999", testFilters())

	assert.NoError(t, err)
	assert.Nil(t, cached)
}

func TestAnalysisCache_JanelasDiferentesNaoCompartilhamEntrada(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	err := cache.Set(ctx, "ENT001", testFilters(), &domain.PatternAnalysis{EntityID: "ENT001"})
	assert.NoError(t, err)

	otherStart := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	otherEnd := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)

	cached, err := cache.Get(ctx, "ENT001", &domain.AnalysisFilters{StartDate: &otherStart, EndDate: &otherEnd})

	assert.NoError(t, err)
	assert.Nil(t, cached)
}

func TestAnalysisCache_EntradaCorrompidaValeComoMiss(t *testing.T) {
	cache, server := newTestCache(t)

	key := cacheKey("ENT001", testFilters())
	assert.NoError(t, server.Set(key, "não é json"))

	cached, err := cache.Get(context.Background(), "ENT001", testFilters())

	assert.NoError(t, err)
	assert.Nil(t, cached)
}

func TestAnalysisCache_EntradaExpiraComTTL(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	err := cache.Set(ctx, "ENT001", testFilters(), &domain.PatternAnalysis{EntityID: "ENT001"})
	assert.NoError(t, err)

	server.FastForward(31 * time.Minute)

	cached, err := cache.Get(ctx, "ENT001", testFilters())

	assert.NoError(t, err)
	assert.Nil(t, cached)
}
