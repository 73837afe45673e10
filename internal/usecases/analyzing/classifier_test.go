package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-optimizer-api/internal/config"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
)

func TestClassifySegments(t *testing.T) {
	thresholds := config.DimensionThresholds{
		TopMultiplier:   2.0,
		MinConversions:  3,
		UnderMultiplier: 0.5,
		MinSpend:        50,
	}

	tests := []struct {
		name          string
		segments      []*domain.AggregatedSegment
		baselineROAS  float64
		expectedTop   []string
		expectedUnder []string
	}{
		{
			name: "Segmento exatamente no limiar de roas e conversões deve entrar no top (limite inclusivo)",
			segments: []*domain.AggregatedSegment{
				{Key: "no-limiar", ROAS: 4.0, Conversions: 3, Spend: 100},
			},
			baselineROAS:  2.0,
			expectedTop:   []string{"no-limiar"},
			expectedUnder: []string{},
		},
		{
			name: "Roas alto sem conversões mínimas não qualifica como top",
			segments: []*domain.AggregatedSegment{
				{Key: "sem-volume", ROAS: 10.0, Conversions: 2, Spend: 100},
			},
			baselineROAS:  2.0,
			expectedTop:   []string{},
			expectedUnder: []string{},
		},
		{
			name: "Segmento abaixo do limiar inferior com spend mínimo entra no under (spend inclusivo)",
			segments: []*domain.AggregatedSegment{
				{Key: "desperdicio", ROAS: 0.9, Conversions: 1, Spend: 50},
			},
			baselineROAS:  2.0,
			expectedTop:   []string{},
			expectedUnder: []string{"desperdicio"},
		},
		{
			name: "Roas exatamente no limiar inferior não entra no under (comparação estrita)",
			segments: []*domain.AggregatedSegment{
				{Key: "no-limite", ROAS: 1.0, Conversions: 1, Spend: 100},
			},
			baselineROAS:  2.0,
			expectedTop:   []string{},
			expectedUnder: []string{},
		},
		{
			name: "Roas baixo com pouco spend não entra no under",
			segments: []*domain.AggregatedSegment{
				{Key: "irrelevante", ROAS: 0.2, Conversions: 0, Spend: 49.99},
			},
			baselineROAS:  2.0,
			expectedTop:   []string{},
			expectedUnder: []string{},
		},
		{
			name: "Baseline zerado não qualifica nenhum segmento em nenhum conjunto",
			segments: []*domain.AggregatedSegment{
				{Key: "otimo", ROAS: 10.0, Conversions: 10, Spend: 500},
				{Key: "pessimo", ROAS: 0.1, Conversions: 0, Spend: 500},
			},
			baselineROAS:  0,
			expectedTop:   []string{},
			expectedUnder: []string{},
		},
		{
			name: "Partição preserva a ordem do agregador dentro de cada conjunto",
			segments: []*domain.AggregatedSegment{
				{Key: "top-1", ROAS: 8.0, Conversions: 5, Spend: 200},
				{Key: "top-2", ROAS: 5.0, Conversions: 4, Spend: 150},
				{Key: "meio", ROAS: 2.0, Conversions: 2, Spend: 100},
				{Key: "under-1", ROAS: 0.8, Conversions: 1, Spend: 120},
				{Key: "under-2", ROAS: 0.3, Conversions: 0, Spend: 80},
			},
			baselineROAS:  2.0,
			expectedTop:   []string{"top-1", "top-2"},
			expectedUnder: []string{"under-1", "under-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := ClassifySegments(tt.segments, tt.baselineROAS, thresholds)

			topKeys := make([]string, 0)
			for _, segment := range classified.Top {
				topKeys = append(topKeys, segment.Key)
			}
			underKeys := make([]string, 0)
			for _, segment := range classified.Under {
				underKeys = append(underKeys, segment.Key)
			}

			assert.Equal(t, tt.expectedTop, topKeys)
			assert.Equal(t, tt.expectedUnder, underKeys)
		})
	}
}

func TestClassifiedSegments_WastedSpend(t *testing.T) {
	classified := ClassifiedSegments{
		Under: []*domain.AggregatedSegment{
			{Key: "a", Spend: 120.5},
			{Key: "b", Spend: 79.5},
		},
	}

	assert.Equal(t, 200.0, classified.WastedSpend())
}

func TestClassifiedSegments_TopSegment(t *testing.T) {
	t.Run("Conjunto top vazio deve retornar nil", func(t *testing.T) {
		classified := ClassifiedSegments{Top: []*domain.AggregatedSegment{}}
		assert.Nil(t, classified.TopSegment())
	})

	t.Run("Deve retornar o primeiro segmento do conjunto top", func(t *testing.T) {
		classified := ClassifiedSegments{
			Top: []*domain.AggregatedSegment{
				{Key: "melhor"},
				{Key: "segundo"},
			},
		}
		assert.Equal(t, "melhor", classified.TopSegment().Key)
	})
}
