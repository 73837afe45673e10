package analyzing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-optimizer-api/internal/config"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
	"github.com/vfg2006/ad-optimizer-api/pkg/utils"
)

const (
	// topSupportingSegments é o N de segmentos de apoio por dimensão na
	// análise profunda
	topSupportingSegments = 5

	// maxSampleDataPoints é o tamanho do subconjunto ilustrativo de linhas
	// devolvido junto com a análise profunda
	maxSampleDataPoints = 5
)

// Service implementa o orquestrador de análise (EntityAnalyzer)
type Service struct {
	cfg               config.Analysis
	breakdownSource   BreakdownSource
	baselineSource    BaselineSource
	conversionSource  ConversionSource
	ruleGenerator     RuleGenerator
	patternThresholds PatternThresholds
	cache             AnalysisCache
}

// NewService cria uma nova instância do orquestrador de análise
func NewService(
	cfg *config.Config,
	breakdownSource BreakdownSource,
	baselineSource BaselineSource,
	conversionSource ConversionSource,
	ruleGenerator RuleGenerator,
) EntityAnalyzer {
	return &Service{
		cfg:               cfg.Analysis,
		breakdownSource:   breakdownSource,
		baselineSource:    baselineSource,
		conversionSource:  conversionSource,
		ruleGenerator:     ruleGenerator,
		patternThresholds: DefaultPatternThresholds(),
	}
}

// WithCache habilita o cache de análises profundas
func (s *Service) WithCache(cache AnalysisCache) *Service {
	s.cache = cache
	return s
}

// analyzerRun é uma execução nomeada de analisador. A ordem do slice define a
// ordem final das sugestões: o merge nunca depende de qual analisador termina
// primeiro.
type analyzerRun struct {
	name string
	run  func(ctx context.Context) ([]*domain.Suggestion, error)
}

// AnalyzeEntity roda os cinco analisadores (quatro dimensões + comportamento)
// em paralelo e devolve a lista combinada de sugestões. Analisador sem dados
// ou com falha não-fatal contribui com resultado vazio; falha de autenticação
// na fonte derruba a chamada inteira.
func (s *Service) AnalyzeEntity(ctx context.Context, entity *domain.AdEntity) ([]*domain.Suggestion, error) {
	if entity == nil || entity.ID == "" {
		return nil, fmt.Errorf("é necessário informar a entidade a analisar")
	}

	baseline, err := s.fetchBaseline(ctx, entity.ID)
	if err != nil {
		return nil, err
	}

	filters := s.defaultWindow()

	runs := []analyzerRun{
		{name: "demographic", run: func(ctx context.Context) ([]*domain.Suggestion, error) {
			return s.analyzeDimension(ctx, entity, baseline, domain.DimensionDemographic, filters)
		}},
		{name: "placement", run: func(ctx context.Context) ([]*domain.Suggestion, error) {
			return s.analyzeDimension(ctx, entity, baseline, domain.DimensionPlacement, filters)
		}},
		{name: "geographic", run: func(ctx context.Context) ([]*domain.Suggestion, error) {
			return s.analyzeDimension(ctx, entity, baseline, domain.DimensionGeographic, filters)
		}},
		{name: "temporal", run: func(ctx context.Context) ([]*domain.Suggestion, error) {
			return s.analyzeDimension(ctx, entity, baseline, domain.DimensionTemporal, filters)
		}},
		{name: "behavior", run: func(ctx context.Context) ([]*domain.Suggestion, error) {
			return s.analyzeBehavior(ctx, entity)
		}},
	}

	results := make([][]*domain.Suggestion, len(runs))
	errs := make([]error, len(runs))

	wg := sync.WaitGroup{}
	for i, run := range runs {
		wg.Add(1)

		go func(slot int, run analyzerRun) {
			defer wg.Done()

			// Linha malformada ou medida inesperada não pode derrubar os
			// analisadores irmãos
			defer func() {
				if r := recover(); r != nil {
					logrus.WithFields(logrus.Fields{
						"entity_id": entity.ID,
						"analyzer":  run.name,
						"panic":     r,
					}).Error("analysis: analisador falhou com erro de computação, degradando para vazio")
					results[slot] = nil
				}
			}()

			results[slot], errs[slot] = run.run(ctx)
		}(i, run)
	}

	wg.Wait()

	suggestions := make([]*domain.Suggestion, 0)
	for i, err := range errs {
		if err != nil {
			if errors.Is(err, ErrUpstreamAuth) {
				return nil, err
			}

			logrus.WithError(err).WithFields(logrus.Fields{
				"entity_id": entity.ID,
				"analyzer":  runs[i].name,
			}).Warn("analysis: analisador degradou para resultado vazio")
			continue
		}

		suggestions = append(suggestions, results[i]...)
	}

	return suggestions, nil
}

// dimensionResult é o resultado do pipeline de uma dimensão na análise profunda
type dimensionResult struct {
	segments []*domain.AggregatedSegment
	top      []*domain.AggregatedSegment
	rows     []*domain.BreakdownRow
}

// GenerateDeepAnalysis roda os quatro pipelines de agregação em paralelo e
// sintetiza um único padrão com projeção financeira. Devolve nil, sem erro,
// quando a soma de pontos de dados das quatro dimensões é zero: "ainda não há
// o que analisar" é diferente de falha.
func (s *Service) GenerateDeepAnalysis(ctx context.Context, entityID string, filters *domain.AnalysisFilters) (*domain.PatternAnalysis, error) {
	if entityID == "" {
		return nil, fmt.Errorf("é necessário informar a entidade a analisar")
	}

	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		filters = s.defaultWindow()
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, entityID, filters); err == nil && cached != nil {
			logrus.WithField("entity_id", entityID).Debug("analysis: análise profunda servida do cache")
			return cached, nil
		}
	}

	baseline, err := s.fetchBaseline(ctx, entityID)
	if err != nil {
		return nil, err
	}

	baselineROAS := baseline.BaselineROAS()

	dimensions := domain.AllDimensions
	results := make([]dimensionResult, len(dimensions))
	errs := make([]error, len(dimensions))

	wg := sync.WaitGroup{}
	for i, dimension := range dimensions {
		wg.Add(1)

		go func(slot int, dimension domain.Dimension) {
			defer wg.Done()

			defer func() {
				if r := recover(); r != nil {
					logrus.WithFields(logrus.Fields{
						"entity_id": entityID,
						"dimension": dimension,
						"panic":     r,
					}).Error("analysis: pipeline da dimensão falhou, degradando para vazio")
					results[slot] = dimensionResult{}
				}
			}()

			rows, err := s.fetchRowsWithRetry(ctx, entityID, dimension, filters)
			if err != nil {
				errs[slot] = err
				return
			}

			segments := AggregateBreakdownRows(rows)
			ApplyBaseline(segments, baselineROAS)
			classified := ClassifySegments(segments, baselineROAS, s.thresholdsFor(dimension))

			results[slot] = dimensionResult{
				segments: segments,
				top:      classified.Top,
				rows:     rows,
			}
		}(i, dimension)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			if errors.Is(err, ErrUpstreamAuth) {
				return nil, err
			}

			logrus.WithError(err).WithFields(logrus.Fields{
				"entity_id": entityID,
				"dimension": dimensions[i],
			}).Warn("analysis: dimensão indisponível na análise profunda, seguindo sem ela")
		}
	}

	totalDataPoints := 0
	for _, result := range results {
		totalDataPoints += len(result.rows)
	}

	if totalDataPoints == 0 {
		logrus.WithField("entity_id", entityID).Info("analysis: nenhum ponto de dado nas quatro dimensões, nada a reportar")
		return nil, nil
	}

	tops := make(map[domain.Dimension][]*domain.AggregatedSegment, len(dimensions))
	supporting := make(map[domain.Dimension][]*domain.AggregatedSegment, len(dimensions))
	totalSpend := 0.0
	totalRevenue := 0.0

	for i, dimension := range dimensions {
		tops[dimension] = results[i].top
		supporting[dimension] = topN(results[i].segments, topSupportingSegments)

		for _, segment := range results[i].segments {
			totalSpend += segment.Spend
			totalRevenue += segment.Revenue
		}
	}

	avgROAS := 0.0
	if totalSpend > 0 {
		avgROAS = utils.RoundWithTwoDecimalPlace(totalRevenue / totalSpend)
	}

	decision := SynthesizePattern(tops, baseline, totalDataPoints, s.patternThresholds)
	impact, interval := ProjectImpact(decision.Winning, totalSpend, avgROAS, s.cfg)

	analysis := &domain.PatternAnalysis{
		EntityID:                entityID,
		PatternType:             decision.PatternType,
		UrgencyLevel:            decision.Urgency,
		PrimaryInsight:          RenderPrimaryInsight(decision),
		SupportingData:          supporting,
		CrossDimensionalPattern: RenderCrossDimensionalPattern(decision),
		FinancialImpact:         impact,
		ConfidenceInterval:      interval,
		Methodology:             RenderMethodology(decision),
		SampleDataPoints:        sampleRows(results),
		DataPointsAnalyzed:      totalDataPoints,
		Actionable:              decision.Actionable,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, entityID, filters, analysis); err != nil {
			logrus.WithError(err).WithField("entity_id", entityID).Warn("analysis: falha ao guardar análise profunda no cache")
		}
	}

	return analysis, nil
}

// fetchBaseline busca o snapshot da entidade. Falha de autenticação é fatal;
// qualquer outra falha degrada para baseline ausente (roas 0), o que
// desabilita a classificação mas não derruba a análise.
func (s *Service) fetchBaseline(ctx context.Context, entityID string) (*domain.EntityBaseline, error) {
	baseline, err := s.baselineSource.GetEntityBaseline(ctx, entityID)
	if err != nil {
		if errors.Is(err, ErrUpstreamAuth) {
			return nil, err
		}

		logrus.WithError(err).WithField("entity_id", entityID).Warn("analysis: baseline indisponível, seguindo sem referência de comparação")
		return nil, nil
	}

	return baseline, nil
}

// fetchRowsWithRetry busca as linhas de uma dimensão com timeout por tentativa
// e uma única nova tentativa com backoff curto antes de degradar
func (s *Service) fetchRowsWithRetry(
	ctx context.Context,
	entityID string,
	dimension domain.Dimension,
	filters *domain.AnalysisFilters,
) ([]*domain.BreakdownRow, error) {
	rows, err := s.fetchRowsOnce(ctx, entityID, dimension, filters)
	if err == nil {
		return rows, nil
	}

	if errors.Is(err, ErrUpstreamAuth) || ctx.Err() != nil {
		return nil, err
	}

	logrus.WithError(err).WithFields(logrus.Fields{
		"entity_id": entityID,
		"dimension": dimension,
	}).Warn("analysis: falha ao buscar linhas de breakdown, tentando novamente")

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(time.Duration(s.cfg.FetchRetryBackoffMs) * time.Millisecond):
	}

	return s.fetchRowsOnce(ctx, entityID, dimension, filters)
}

func (s *Service) fetchRowsOnce(
	ctx context.Context,
	entityID string,
	dimension domain.Dimension,
	filters *domain.AnalysisFilters,
) ([]*domain.BreakdownRow, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.FetchTimeoutSeconds)*time.Second)
	defer cancel()

	return s.breakdownSource.GetBreakdownRows(fetchCtx, entityID, dimension, filters)
}

// defaultWindow monta a janela padrão de análise a partir do lookback
// configurado
func (s *Service) defaultWindow() *domain.AnalysisFilters {
	endDate := time.Now().Truncate(24 * time.Hour)
	startDate := endDate.AddDate(0, 0, -s.cfg.LookbackDays)

	return &domain.AnalysisFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	}
}

func topN(segments []*domain.AggregatedSegment, n int) []*domain.AggregatedSegment {
	if len(segments) <= n {
		return segments
	}
	return segments[:n]
}

// sampleRows devolve um subconjunto ilustrativo das linhas analisadas
func sampleRows(results []dimensionResult) []*domain.BreakdownRow {
	sample := make([]*domain.BreakdownRow, 0, maxSampleDataPoints)
	for _, result := range results {
		for _, row := range result.rows {
			if len(sample) == maxSampleDataPoints {
				return sample
			}
			sample = append(sample, row)
		}
	}
	return sample
}
