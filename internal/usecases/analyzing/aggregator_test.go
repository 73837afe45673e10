package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
)

func TestAggregateBreakdownRows(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rows     []*domain.BreakdownRow
		validate func(t *testing.T, segments []*domain.AggregatedSegment)
	}{
		{
			name: "Janela vazia deve retornar slice vazio, não nil",
			rows: []*domain.BreakdownRow{},
			validate: func(t *testing.T, segments []*domain.AggregatedSegment) {
				assert.NotNil(t, segments)
				assert.Len(t, segments, 0)
			},
		},
		{
			name: "Linhas do mesmo segmento em dias diferentes devem ser somadas em um único grupo",
			rows: []*domain.BreakdownRow{
				{
					EntityID: "ENT001", Dimension: domain.DimensionDemographic, Date: day1,
					AgeRange: "25-34", Gender: "female",
					Impressions: 1000, Clicks: 50, Spend: 60.0, Conversions: 3, Revenue: 240.0,
				},
				{
					EntityID: "ENT001", Dimension: domain.DimensionDemographic, Date: day2,
					AgeRange: "25-34", Gender: "female",
					Impressions: 1000, Clicks: 30, Spend: 40.0, Conversions: 2, Revenue: 160.0,
				},
			},
			validate: func(t *testing.T, segments []*domain.AggregatedSegment) {
				assert.Len(t, segments, 1)

				segment := segments[0]
				assert.Equal(t, "25-34|female", segment.Key)
				assert.Equal(t, "female 25-34", segment.Label)
				assert.Equal(t, int64(2000), segment.Impressions)
				assert.Equal(t, int64(80), segment.Clicks)
				assert.Equal(t, 100.0, segment.Spend)
				assert.Equal(t, int64(5), segment.Conversions)
				assert.Equal(t, 400.0, segment.Revenue)
				assert.Equal(t, 2, segment.DataPoints)

				// Derivadas calculadas sobre as somas, não média das linhas
				assert.Equal(t, 4.0, segment.ROAS)
				assert.Equal(t, 4.0, segment.CTR) // 80/2000 * 100
			},
		},
		{
			name: "Spend zero deve resultar em roas zero, não em divisão por zero",
			rows: []*domain.BreakdownRow{
				{
					EntityID: "ENT001", Dimension: domain.DimensionPlacement, Date: day1,
					PlacementType: "stories", DeviceType: "mobile", PublisherPlatform: "instagram",
					Impressions: 500, Clicks: 10, Spend: 0, Conversions: 0, Revenue: 0,
				},
			},
			validate: func(t *testing.T, segments []*domain.AggregatedSegment) {
				assert.Len(t, segments, 1)
				assert.Equal(t, 0.0, segments[0].ROAS)
				assert.Equal(t, 2.0, segments[0].CTR)
			},
		},
		{
			name: "Impressões zero devem resultar em ctr zero",
			rows: []*domain.BreakdownRow{
				{
					EntityID: "ENT001", Dimension: domain.DimensionGeographic, Date: day1,
					Country: "BR", Region: "SP", City: "São Paulo",
					Impressions: 0, Clicks: 0, Spend: 50.0, Conversions: 1, Revenue: 100.0,
				},
			},
			validate: func(t *testing.T, segments []*domain.AggregatedSegment) {
				assert.Len(t, segments, 1)
				assert.Equal(t, 0.0, segments[0].CTR)
				assert.Equal(t, 2.0, segments[0].ROAS)
			},
		},
		{
			name: "Ordenação por roas decrescente com desempate por spend e depois pela chave",
			rows: []*domain.BreakdownRow{
				{
					Dimension: domain.DimensionTemporal, Date: day1,
					DayOfWeek: 1, HourOfDay: 10,
					Spend: 100.0, Revenue: 200.0, // roas 2.0, spend 100
				},
				{
					Dimension: domain.DimensionTemporal, Date: day1,
					DayOfWeek: 2, HourOfDay: 14,
					Spend: 50.0, Revenue: 300.0, // roas 6.0
				},
				{
					Dimension: domain.DimensionTemporal, Date: day1,
					DayOfWeek: 3, HourOfDay: 9,
					Spend: 200.0, Revenue: 400.0, // roas 2.0, spend 200
				},
				{
					Dimension: domain.DimensionTemporal, Date: day1,
					DayOfWeek: 0, HourOfDay: 8,
					Spend: 100.0, Revenue: 200.0, // roas 2.0, spend 100, chave menor
				},
			},
			validate: func(t *testing.T, segments []*domain.AggregatedSegment) {
				assert.Len(t, segments, 4)
				assert.Equal(t, "2|14", segments[0].Key) // roas 6.0 primeiro
				assert.Equal(t, "3|9", segments[1].Key)  // empate em roas, spend maior
				assert.Equal(t, "0|8", segments[2].Key)  // empate em roas e spend, chave menor
				assert.Equal(t, "1|10", segments[3].Key)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := AggregateBreakdownRows(tt.rows)
			tt.validate(t, segments)
		})
	}
}

func TestAggregateBreakdownRows_ConservaMedidas(t *testing.T) {
	// A soma das medidas dos segmentos deve ser igual à soma das linhas de
	// entrada, independente do agrupamento
	rows := []*domain.BreakdownRow{
		{Dimension: domain.DimensionDemographic, AgeRange: "18-24", Gender: "male", Spend: 10.5, Revenue: 21.0, Impressions: 100, Clicks: 5, Conversions: 1},
		{Dimension: domain.DimensionDemographic, AgeRange: "18-24", Gender: "male", Spend: 20.25, Revenue: 40.5, Impressions: 200, Clicks: 8, Conversions: 2},
		{Dimension: domain.DimensionDemographic, AgeRange: "25-34", Gender: "female", Spend: 30.0, Revenue: 150.0, Impressions: 300, Clicks: 12, Conversions: 4},
	}

	segments := AggregateBreakdownRows(rows)

	var spend, revenue float64
	var impressions, clicks, conversions int64
	dataPoints := 0

	for _, segment := range segments {
		spend += segment.Spend
		revenue += segment.Revenue
		impressions += segment.Impressions
		clicks += segment.Clicks
		conversions += segment.Conversions
		dataPoints += segment.DataPoints
	}

	assert.Equal(t, 60.75, spend)
	assert.Equal(t, 211.5, revenue)
	assert.Equal(t, int64(600), impressions)
	assert.Equal(t, int64(25), clicks)
	assert.Equal(t, int64(7), conversions)
	assert.Equal(t, len(rows), dataPoints)
}

func TestApplyBaseline(t *testing.T) {
	tests := []struct {
		name         string
		segment      *domain.AggregatedSegment
		baselineROAS float64
		expected     float64
	}{
		{
			name:         "Segmento acima do baseline deve ter melhora positiva",
			segment:      &domain.AggregatedSegment{ROAS: 6.0},
			baselineROAS: 2.0,
			expected:     200.0,
		},
		{
			name:         "Segmento abaixo do baseline deve ter melhora negativa",
			segment:      &domain.AggregatedSegment{ROAS: 1.0},
			baselineROAS: 2.0,
			expected:     -50.0,
		},
		{
			name:         "Baseline zerado deve zerar a melhora, não dividir por zero",
			segment:      &domain.AggregatedSegment{ROAS: 6.0},
			baselineROAS: 0,
			expected:     0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ApplyBaseline([]*domain.AggregatedSegment{tt.segment}, tt.baselineROAS)
			assert.Equal(t, tt.expected, tt.segment.ImprovementVsBaseline)
		})
	}
}
