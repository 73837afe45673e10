package analyzing

import (
	"context"
	"encoding/json"

	"github.com/vfg2006/ad-optimizer-api/internal/domain"
)

// BreakdownSource fornece as linhas de breakdown de uma entidade para uma
// dimensão e janela de datas. Dimensão ainda não sincronizada deve ser
// reportada como zero linhas, não como erro.
type BreakdownSource interface {
	// GetBreakdownRows busca as linhas de breakdown da entidade na dimensão
	GetBreakdownRows(ctx context.Context, entityID string, dimension domain.Dimension, filters *domain.AnalysisFilters) ([]*domain.BreakdownRow, error)
}

// BaselineSource fornece o snapshot de performance geral da entidade
type BaselineSource interface {
	// GetEntityBaseline busca o baseline da entidade
	GetEntityBaseline(ctx context.Context, entityID string) (*domain.EntityBaseline, error)
}

// ConversionSource fornece os pedidos enriquecidos usados pelo analisador de
// comportamento de compra
type ConversionSource interface {
	// GetEnrichedConversions busca os pedidos da entidade na janela de lookback
	GetEnrichedConversions(ctx context.Context, entityID string, lookbackDays int) ([]*domain.EnrichedConversion, error)
}

// RuleInput é o que o motor entrega ao gerador de regras externo
type RuleInput struct {
	SuggestionType domain.SuggestionType
	EntityType     domain.EntityType
	EntityID       string
	EntityName     string
	Platform       domain.Platform
	Metrics        map[string]float64
}

// RuleGenerator monta a especificação de regra de automação para uma
// sugestão. A especificação é opaca para o motor de análise.
type RuleGenerator interface {
	GenerateRule(ctx context.Context, input RuleInput) (json.RawMessage, error)
}

// SuggestionSink recebe as sugestões produzidas pela varredura agendada.
// Persistência e notificação são responsabilidade de quem consome.
type SuggestionSink interface {
	Publish(ctx context.Context, suggestions []*domain.Suggestion) error
}

// EntityAnalyzer é a interface pública do orquestrador de análise
type EntityAnalyzer interface {
	// AnalyzeEntity roda os cinco analisadores em paralelo e devolve a lista
	// combinada de sugestões, possivelmente vazia
	AnalyzeEntity(ctx context.Context, entity *domain.AdEntity) ([]*domain.Suggestion, error)

	// GenerateDeepAnalysis roda as quatro dimensões em paralelo e sintetiza um
	// único padrão. Devolve nil (sem erro) quando não há dados suficientes.
	GenerateDeepAnalysis(ctx context.Context, entityID string, filters *domain.AnalysisFilters) (*domain.PatternAnalysis, error)
}

// AnalysisCache guarda resultados de análise profunda por entidade e janela
type AnalysisCache interface {
	Get(ctx context.Context, entityID string, filters *domain.AnalysisFilters) (*domain.PatternAnalysis, error)
	Set(ctx context.Context, entityID string, filters *domain.AnalysisFilters, analysis *domain.PatternAnalysis) error
}
