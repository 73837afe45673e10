package domain

// EntityBaseline é o snapshot de performance geral da entidade analisada,
// fornecido por colaborador externo e somente leitura dentro do motor de
// análise. O baseline nunca é rederivado a partir dos segmentos.
type EntityBaseline struct {
	EntityID    string  `json:"entity_id"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Profit      float64 `json:"profit"`
	ROAS        float64 `json:"roas"`
	Conversions int64   `json:"conversions"`
	CPA         float64 `json:"cpa"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
}

// BaselineROAS retorna o roas do baseline com proteção para snapshot ausente.
// Baseline nulo equivale a roas 0, o que zera a melhora de todos os segmentos.
func (b *EntityBaseline) BaselineROAS() float64 {
	if b == nil {
		return 0
	}
	return b.ROAS
}
