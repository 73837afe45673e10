package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-optimizer-api/internal/config"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
)

func projectionConfig() config.Analysis {
	return config.Analysis{
		RealizationDiscount:   0.3,
		WorstCaseMultiplier:   0.8,
		OpportunityCostFactor: 2.0,
		ConfidenceLowerBand:   0.85,
		ConfidenceUpperBand:   1.15,
		FallbackImprovement:   0.5,
	}
}

func TestProjectImpact(t *testing.T) {
	// Cenário de referência: baseline com roas 2.0 e um segmento vencedor com
	// spend 100 e receita 600 (melhora de 200%). O roas médio do conjunto é
	// 6.0, então o lucro projetado do cenário adotado é 100 * 6.0 * 2.0 * 0.3.
	winning := &domain.AggregatedSegment{
		Key:                   "25-34|female",
		Spend:                 100.0,
		Revenue:               600.0,
		ROAS:                  6.0,
		ImprovementVsBaseline: 200.0,
	}

	impact, interval := ProjectImpact(winning, 100.0, 6.0, projectionConfig())

	assert.Equal(t, 360.0, impact.IfAdopted.ProjectedProfit)
	assert.Equal(t, 18.0, impact.IfAdopted.ProjectedROAS)      // 6.0 * (1 + 2.0)
	assert.Equal(t, 1800.0, impact.IfAdopted.ProjectedRevenue) // 100 * 18.0

	assert.Equal(t, 360.0, impact.IfIgnored.LostOpportunity)
	assert.Equal(t, 4.8, impact.IfIgnored.WorstCaseROAS)     // 6.0 * 0.8
	assert.Equal(t, 144.0, impact.IfIgnored.WorstCaseProfit) // 100 * 6.0 * 0.8 * 0.3
	assert.Equal(t, 720.0, impact.IfIgnored.OpportunityCost) // 360 * 2.0

	assert.Equal(t, 5.1, interval.Lower) // 6.0 * 0.85
	assert.Equal(t, 6.0, interval.Expected)
	assert.Equal(t, 6.9, interval.Upper) // 6.0 * 1.15
}

func TestProjectImpact_SemSegmentoVencedor(t *testing.T) {
	// Sem vencedor a projeção usa a fração de melhora conservadora da
	// configuração no lugar da melhora observada
	impact, interval := ProjectImpact(nil, 200.0, 2.0, projectionConfig())

	assert.Equal(t, 60.0, impact.IfAdopted.ProjectedProfit) // 200 * 2.0 * 0.5 * 0.3
	assert.Equal(t, 3.0, impact.IfAdopted.ProjectedROAS)    // 2.0 * 1.5
	assert.Equal(t, 600.0, impact.IfAdopted.ProjectedRevenue)

	assert.Equal(t, 2.0, interval.Expected)
}

func TestProjectImpact_SemInvestimento(t *testing.T) {
	// Conjunto sem spend projeta tudo zerado, sem divisão por zero
	impact, interval := ProjectImpact(nil, 0, 0, projectionConfig())

	assert.Equal(t, 0.0, impact.IfAdopted.ProjectedProfit)
	assert.Equal(t, 0.0, impact.IfAdopted.ProjectedROAS)
	assert.Equal(t, 0.0, impact.IfAdopted.ProjectedRevenue)
	assert.Equal(t, 0.0, impact.IfIgnored.OpportunityCost)
	assert.Equal(t, 0.0, interval.Expected)
}

func TestProjectImpact_MelhoraNegativa(t *testing.T) {
	// Vencedor abaixo do baseline (só possível com limiares frouxos) projeta
	// lucro negativo em vez de inventar ganho
	winning := &domain.AggregatedSegment{ImprovementVsBaseline: -50.0}

	impact, _ := ProjectImpact(winning, 100.0, 2.0, projectionConfig())

	assert.Equal(t, -30.0, impact.IfAdopted.ProjectedProfit) // 100 * 2.0 * -0.5 * 0.3
	assert.Equal(t, 1.0, impact.IfAdopted.ProjectedROAS)     // 2.0 * 0.5
}

func TestSegmentComputeDerived_Arredondamento(t *testing.T) {
	segment := &domain.AggregatedSegment{
		Spend:       30.0,
		Revenue:     100.0,
		Impressions: 3000,
		Clicks:      100,
	}

	segment.ComputeDerived()

	assert.Equal(t, 3.33, segment.ROAS)
	assert.Equal(t, 3.33, segment.CTR)
}
