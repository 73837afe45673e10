package analyzing

import (
	"github.com/vfg2006/ad-optimizer-api/internal/config"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
	"github.com/vfg2006/ad-optimizer-api/pkg/utils"
)

// ProjectImpact projeta os dois cenários financeiros da análise: adotar a
// recomendação ou ignorá-la. totalSpend e avgROAS vêm do conjunto completo de
// segmentos das dimensões analisadas; winning é o segmento vencedor do
// sintetizador (nil quando nenhum ramo disparou).
//
// Todos os multiplicadores são heurísticas de negócio e vivem na configuração
// com nome próprio: o desconto de realização reflete que nem todo o orçamento
// pode ser realocado, e o fator de custo de oportunidade sinaliza o risco
// acumulado de ignorar a recomendação por mais tempo.
func ProjectImpact(
	winning *domain.AggregatedSegment,
	totalSpend float64,
	avgROAS float64,
	cfg config.Analysis,
) (*domain.FinancialImpact, *domain.ConfidenceInterval) {
	improvementFraction := cfg.FallbackImprovement
	if winning != nil {
		improvementFraction = winning.ImprovementVsBaseline / 100
	}

	projectedProfit := totalSpend * avgROAS * improvementFraction * cfg.RealizationDiscount
	projectedROAS := avgROAS * (1 + improvementFraction)
	projectedRevenue := totalSpend * projectedROAS

	adopted := &domain.ScenarioProjection{
		ProjectedProfit:  utils.RoundWithTwoDecimalPlace(projectedProfit),
		ProjectedROAS:    utils.RoundWithTwoDecimalPlace(projectedROAS),
		ProjectedRevenue: utils.RoundWithTwoDecimalPlace(projectedRevenue),
	}

	ignored := &domain.ScenarioProjection{
		LostOpportunity: utils.RoundWithTwoDecimalPlace(projectedProfit),
		WorstCaseROAS:   utils.RoundWithTwoDecimalPlace(avgROAS * cfg.WorstCaseMultiplier),
		WorstCaseProfit: utils.RoundWithTwoDecimalPlace(totalSpend * avgROAS * cfg.WorstCaseMultiplier * cfg.RealizationDiscount),
		OpportunityCost: utils.RoundWithTwoDecimalPlace(projectedProfit * cfg.OpportunityCostFactor),
	}

	interval := &domain.ConfidenceInterval{
		Lower:    utils.RoundWithTwoDecimalPlace(avgROAS * cfg.ConfidenceLowerBand),
		Expected: utils.RoundWithTwoDecimalPlace(avgROAS),
		Upper:    utils.RoundWithTwoDecimalPlace(avgROAS * cfg.ConfidenceUpperBand),
	}

	return &domain.FinancialImpact{IfAdopted: adopted, IfIgnored: ignored}, interval
}
