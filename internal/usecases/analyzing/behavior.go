package analyzing

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
	"github.com/vfg2006/ad-optimizer-api/pkg/utils"
)

const (
	// behaviorMinOrders é a amostra mínima de pedidos para o analisador de
	// comportamento emitir qualquer sugestão
	behaviorMinOrders = 10

	// behaviorCLVRatio é a razão mínima entre o valor de vida do cliente e o
	// ticket médio para valer uma sugestão de retenção
	behaviorCLVRatio = 2.0
)

// analyzeBehavior inspeciona os pedidos enriquecidos da entidade e sugere
// investir em retenção quando o valor de vida dos clientes supera com folga o
// ticket da primeira compra
func (s *Service) analyzeBehavior(ctx context.Context, entity *domain.AdEntity) ([]*domain.Suggestion, error) {
	conversions, err := s.conversionSource.GetEnrichedConversions(ctx, entity.ID, s.cfg.LookbackDays)
	if err != nil {
		return nil, err
	}

	if len(conversions) < behaviorMinOrders {
		logrus.WithFields(logrus.Fields{
			"entity_id": entity.ID,
			"orders":    len(conversions),
		}).Debug("analysis: pedidos insuficientes para análise de comportamento")
		return nil, nil
	}

	var (
		firstPurchases int
		totalOrderValue float64
		totalCLV        float64
	)

	for _, conversion := range conversions {
		if conversion.IsFirstPurchase {
			firstPurchases++
		}
		totalOrderValue += conversion.OrderValue
		totalCLV += conversion.CustomerLifetimeValue
	}

	orders := len(conversions)
	avgOrderValue := totalOrderValue / float64(orders)
	avgCLV := totalCLV / float64(orders)
	repeatCustomers := orders - firstPurchases

	if avgOrderValue == 0 || avgCLV/avgOrderValue < behaviorCLVRatio {
		return nil, nil
	}

	expectedProfit := utils.RoundWithTwoDecimalPlace(
		(avgCLV - avgOrderValue) * float64(repeatCustomers) * s.cfg.RecoveryFraction,
	)

	priority := priorityNormal
	if expectedProfit > highPriorityWastedSpend {
		priority = priorityHigh
	}

	confidence := confidenceNormal
	if orders >= behaviorMinOrders*3 {
		confidence = confidenceHigh
	}

	metrics := map[string]float64{
		"orders":              float64(orders),
		"first_purchase_rate": utils.RoundWithTwoDecimalPlace(float64(firstPurchases) / float64(orders) * 100),
		"avg_order_value":     utils.RoundWithTwoDecimalPlace(avgOrderValue),
		"avg_clv":             utils.RoundWithTwoDecimalPlace(avgCLV),
		"clv_to_aov_ratio":    utils.RoundWithTwoDecimalPlace(avgCLV / avgOrderValue),
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
		SuggestionType:  domain.SuggestionRetainCustomers,
		PriorityScore:   priority,
		ConfidenceScore: confidence,
		Title:           "Clientes valem muito mais do que a primeira compra",
		Message: fmt.Sprintf(
			"O valor de vida médio dos clientes (R$ %.2f) é %.1fx o ticket médio (R$ %.2f). Vale investir em recompra e públicos semelhantes aos clientes recorrentes.",
			avgCLV, avgCLV/avgOrderValue, avgOrderValue,
		),
		Reasoning: &domain.SuggestionReasoning{
			TriggeredBy:        []string{"customer_lifetime_value", "repeat_purchase_rate"},
			PrimaryInsight:     fmt.Sprintf("Razão CLV/ticket de %.1fx em %d pedidos analisados", avgCLV/avgOrderValue, orders),
			Metrics:            metrics,
			Analysis:           fmt.Sprintf("Dos %d pedidos da janela, %d são de clientes recorrentes.", orders, repeatCustomers),
			RiskLevel:          domain.RiskLow,
			DataPointsAnalyzed: orders,
			AnalysisDepth:      "behavior",
		},
		EstimatedImpact: &domain.EstimatedImpact{
			ExpectedProfit: expectedProfit,
			TimeframeDays:  suggestionTimeframeDays,
			Confidence:     confidenceLabel(confidence),
			Breakdown: fmt.Sprintf(
				"%d clientes recorrentes com diferença média de R$ %.2f entre CLV e ticket.",
				repeatCustomers, avgCLV-avgOrderValue,
			),
		},
	}

	s.attachRecommendedRule(ctx, suggestion, metrics)

	return []*domain.Suggestion{suggestion}, nil
}
