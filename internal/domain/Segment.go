package domain

import "github.com/vfg2006/ad-optimizer-api/pkg/utils"

// AggregatedSegment representa um segmento único dentro da janela analisada,
// com as medidas somadas e as métricas derivadas já calculadas. O segmento é
// imutável depois de montado: é computado por requisição e descartado.
type AggregatedSegment struct {
	Dimension Dimension `json:"dimension"`
	Key       string    `json:"key"`
	Label     string    `json:"label"`

	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Spend       float64 `json:"spend"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`

	ROAS                  float64 `json:"roas"`
	CTR                   float64 `json:"ctr"`
	ImprovementVsBaseline float64 `json:"improvement_vs_baseline"`

	DataPoints int `json:"data_points"`
}

// ComputeDerived calcula roas e ctr a partir das medidas somadas. Todo
// denominador é protegido: spend=0 resulta em roas=0 e impressions=0 em ctr=0.
func (s *AggregatedSegment) ComputeDerived() {
	if s.Spend > 0 {
		s.ROAS = utils.RoundWithTwoDecimalPlace(s.Revenue / s.Spend)
	}
	if s.Impressions > 0 {
		s.CTR = utils.RoundWithTwoDecimalPlace(float64(s.Clicks) / float64(s.Impressions) * 100)
	}
}

// ComputeImprovement calcula a melhora percentual do segmento em relação ao
// roas do baseline. Com baseline zerado a melhora é 0, o que desabilita a
// classificação do segmento.
func (s *AggregatedSegment) ComputeImprovement(baselineROAS float64) {
	if baselineROAS == 0 {
		s.ImprovementVsBaseline = 0
		return
	}
	s.ImprovementVsBaseline = utils.RoundWithTwoDecimalPlace((s.ROAS - baselineROAS) / baselineROAS * 100)
}
