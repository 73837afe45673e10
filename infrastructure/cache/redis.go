package cache

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-optimizer-api/internal/config"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AnalysisCache guarda análises profundas no redis por entidade e janela de
// datas. A análise profunda agrega quatro dimensões por requisição, então o
// resultado vale a pena ser reaproveitado dentro do TTL configurado.
type AnalysisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAnalysisCache(ctx context.Context, cfg config.Redis) (*AnalysisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao conectar no redis")
	}

	return &AnalysisCache{
		client: client,
		ttl:    time.Duration(cfg.CacheTTLMin) * time.Minute,
	}, nil
}

// NewAnalysisCacheWithClient monta o cache sobre um cliente já existente
func NewAnalysisCacheWithClient(client *redis.Client, ttl time.Duration) *AnalysisCache {
	return &AnalysisCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *AnalysisCache) Get(ctx context.Context, entityID string, filters *domain.AnalysisFilters) (*domain.PatternAnalysis, error) {
	payload, err := c.client.Get(ctx, cacheKey(entityID, filters)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar análise no cache")
	}

	analysis := &domain.PatternAnalysis{}
	if err := json.Unmarshal(payload, analysis); err != nil {
		// Entrada corrompida vale como cache miss
		logrus.WithError(err).WithField("entity_id", entityID).Warn("Análise em cache corrompida, descartando")
		return nil, nil
	}

	return analysis, nil
}

func (c *AnalysisCache) Set(ctx context.Context, entityID string, filters *domain.AnalysisFilters, analysis *domain.PatternAnalysis) error {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar a análise para o cache")
	}

	if err := c.client.Set(ctx, cacheKey(entityID, filters), payload, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "erro ao guardar análise no cache")
	}

	return nil
}

func (c *AnalysisCache) Close() error {
	return c.client.Close()
}

// cacheKey monta a chave por entidade e janela. Janelas diferentes têm
// análises diferentes e não podem compartilhar entrada.
func cacheKey(entityID string, filters *domain.AnalysisFilters) string {
	start, end := "-", "-"
	if filters != nil && filters.StartDate != nil {
		start = filters.StartDate.Format(time.DateOnly)
	}
	if filters != nil && filters.EndDate != nil {
		end = filters.EndDate.Format(time.DateOnly)
	}

	return fmt.Sprintf("deep-analysis:%s:%s:%s", entityID, start, end)
}
