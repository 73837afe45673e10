package analyzing

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-optimizer-api/internal/config"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
	"github.com/vfg2006/ad-optimizer-api/pkg/utils"
)

// Limiares de pontuação das sugestões por dimensão
const (
	highPriorityWastedSpend = 500.0
	highConfidenceUnderSegments = 3

	priorityHigh   = 90
	priorityNormal = 75

	confidenceHigh   = 85
	confidenceNormal = 70

	suggestionTimeframeDays = 30
)

var suggestionTypeByDimension = map[domain.Dimension]domain.SuggestionType{
	domain.DimensionDemographic: domain.SuggestionPauseDemographics,
	domain.DimensionPlacement:   domain.SuggestionShiftPlacements,
	domain.DimensionGeographic:  domain.SuggestionFocusGeographies,
	domain.DimensionTemporal:    domain.SuggestionAdjustSchedule,
}

var suggestionTitleByDimension = map[domain.Dimension]string{
	domain.DimensionDemographic: "Público com performance muito acima da média",
	domain.DimensionPlacement:   "Posicionamento entregando mais do que o orçamento reflete",
	domain.DimensionGeographic:  "Regiões concentrando o retorno da campanha",
	domain.DimensionTemporal:    "Horários com retorno muito acima da média",
}

// analyzeDimension roda o pipeline de uma dimensão: busca as linhas, agrega,
// compara contra o baseline, classifica e, se existir conjunto top
// qualificado, monta uma sugestão. Janela vazia ou com menos pontos que o
// mínimo curto-circuita com resultado vazio ("dados insuficientes").
func (s *Service) analyzeDimension(
	ctx context.Context,
	entity *domain.AdEntity,
	baseline *domain.EntityBaseline,
	dimension domain.Dimension,
	filters *domain.AnalysisFilters,
) ([]*domain.Suggestion, error) {
	rows, err := s.fetchRowsWithRetry(ctx, entity.ID, dimension, filters)
	if err != nil {
		return nil, err
	}

	if len(rows) < s.cfg.MinDataPoints || len(rows) == 0 {
		logrus.WithFields(logrus.Fields{
			"entity_id": entity.ID,
			"dimension": dimension,
			"rows":      len(rows),
		}).Debug("analysis: dados insuficientes para a dimensão")
		return nil, nil
	}

	baselineROAS := baseline.BaselineROAS()

	segments := AggregateBreakdownRows(rows)
	ApplyBaseline(segments, baselineROAS)

	classified := ClassifySegments(segments, baselineROAS, s.thresholdsFor(dimension))
	if len(classified.Top) == 0 {
		return nil, nil
	}

	suggestion, err := s.buildDimensionSuggestion(ctx, entity, baseline, dimension, classified, len(rows))
	if err != nil {
		return nil, err
	}

	return []*domain.Suggestion{suggestion}, nil
}

// buildDimensionSuggestion monta a sugestão de uma dimensão a partir dos
// conjuntos classificados. A pontuação usa limiares simples sobre o
// investimento desperdiçado e a quantidade de segmentos.
func (s *Service) buildDimensionSuggestion(
	ctx context.Context,
	entity *domain.AdEntity,
	baseline *domain.EntityBaseline,
	dimension domain.Dimension,
	classified ClassifiedSegments,
	dataPoints int,
) (*domain.Suggestion, error) {
	best := classified.TopSegment()
	wastedSpend := utils.RoundWithTwoDecimalPlace(classified.WastedSpend())

	priority := priorityNormal
	if wastedSpend > highPriorityWastedSpend {
		priority = priorityHigh
	}

	confidence := confidenceNormal
	if len(classified.Under) >= highConfidenceUnderSegments {
		confidence = confidenceHigh
	}

	metrics := map[string]float64{
		"baseline_roas":            baseline.BaselineROAS(),
		"best_segment_roas":        best.ROAS,
		"best_segment_improvement": best.ImprovementVsBaseline,
		"wasted_spend":             wastedSpend,
		"top_segments":             float64(len(classified.Top)),
		"under_segments":           float64(len(classified.Under)),
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da sugestão: %w", err)
	}

	suggestion := &domain.Suggestion{
		ID:              id,
		EntityType:      entity.Type,
		EntityID:        entity.ID,
		EntityName:      entity.Name,
		Platform:        entity.Platform,
		SuggestionType:  suggestionTypeByDimension[dimension],
		PriorityScore:   priority,
		ConfidenceScore: confidence,
		Title:           suggestionTitleByDimension[dimension],
		Message: fmt.Sprintf(
			"O segmento %s entrega ROAS %.2f (%.0f%% acima do baseline %.2f). Há R$ %.2f investidos em %d segmento(s) abaixo do limiar de performance.",
			best.Label, best.ROAS, best.ImprovementVsBaseline, baseline.BaselineROAS(), wastedSpend, len(classified.Under),
		),
		Reasoning: &domain.SuggestionReasoning{
			TriggeredBy: []string{
				fmt.Sprintf("%s_top_segments", dimension),
				fmt.Sprintf("%s_wasted_spend", dimension),
			},
			PrimaryInsight: fmt.Sprintf("%s lidera a dimensão %s com %.0f%% de melhora sobre o baseline", best.Label, dimension, best.ImprovementVsBaseline),
			Metrics:        metrics,
			Analysis: fmt.Sprintf(
				"Foram agregados %d pontos de dados em %d segmentos; %d qualificaram como top e %d como under-performing.",
				dataPoints, len(classified.Top)+len(classified.Under), len(classified.Top), len(classified.Under),
			),
			RiskLevel:          riskForWastedSpend(wastedSpend),
			SupportingData:     map[domain.Dimension][]*domain.AggregatedSegment{dimension: classified.Top},
			DataPointsAnalyzed: dataPoints,
			AnalysisDepth:      "dimension",
		},
		EstimatedImpact: &domain.EstimatedImpact{
			ExpectedSavings: utils.RoundWithTwoDecimalPlace(wastedSpend * s.cfg.RecoveryFraction),
			TimeframeDays:   suggestionTimeframeDays,
			Confidence:      confidenceLabel(confidence),
			Breakdown: fmt.Sprintf(
				"Realocar o investimento dos %d segmento(s) abaixo do limiar recupera até %.0f%% dos R$ %.2f desperdiçados.",
				len(classified.Under), s.cfg.RecoveryFraction*100, wastedSpend,
			),
		},
	}

	s.attachRecommendedRule(ctx, suggestion, metrics)

	return suggestion, nil
}

// attachRecommendedRule delega a montagem da regra de automação ao gerador
// externo. Falha na geração não invalida a sugestão: ela segue sem regra.
func (s *Service) attachRecommendedRule(ctx context.Context, suggestion *domain.Suggestion, metrics map[string]float64) {
	if s.ruleGenerator == nil {
		return
	}

	rule, err := s.ruleGenerator.GenerateRule(ctx, RuleInput{
		SuggestionType: suggestion.SuggestionType,
		EntityType:     suggestion.EntityType,
		EntityID:       suggestion.EntityID,
		EntityName:     suggestion.EntityName,
		Platform:       suggestion.Platform,
		Metrics:        metrics,
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"entity_id":       suggestion.EntityID,
			"suggestion_type": suggestion.SuggestionType,
		}).Warn("analysis: falha ao gerar regra recomendada, sugestão segue sem regra")
		return
	}

	suggestion.RecommendedRule = rule
}

func (s *Service) thresholdsFor(dimension domain.Dimension) config.DimensionThresholds {
	switch dimension {
	case domain.DimensionDemographic:
		return s.cfg.Demographic
	case domain.DimensionPlacement:
		return s.cfg.Placement
	case domain.DimensionGeographic:
		return s.cfg.Geographic
	case domain.DimensionTemporal:
		return s.cfg.Temporal
	}
	return config.DimensionThresholds{}
}

func riskForWastedSpend(wastedSpend float64) domain.RiskLevel {
	if wastedSpend > highPriorityWastedSpend {
		return domain.RiskLow
	}
	return domain.RiskMedium
}

func confidenceLabel(score int) string {
	if score >= confidenceHigh {
		return "alta"
	}
	return "média"
}
