package analyzing

import (
	"github.com/vfg2006/ad-optimizer-api/internal/config"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
)

// ClassifiedSegments são os dois conjuntos disjuntos produzidos pela
// classificação de uma dimensão, ambos na ordem do agregador
type ClassifiedSegments struct {
	Top   []*domain.AggregatedSegment
	Under []*domain.AggregatedSegment
}

// ClassifySegments particiona os segmentos agregados em top e under usando os
// limiares da dimensão, relativos ao roas do baseline. Os limites são
// inclusivos: um segmento exatamente no limiar de roas e de conversões entra
// no conjunto top.
//
// Com baselineRoas=0 nenhum segmento se qualifica em nenhum dos conjuntos: sem
// referência de comparação não há classificação, e isso não é um erro.
func ClassifySegments(
	segments []*domain.AggregatedSegment,
	baselineROAS float64,
	thresholds config.DimensionThresholds,
) ClassifiedSegments {
	classified := ClassifiedSegments{
		Top:   make([]*domain.AggregatedSegment, 0),
		Under: make([]*domain.AggregatedSegment, 0),
	}

	if baselineROAS == 0 {
		return classified
	}

	for _, segment := range segments {
		if segment.ROAS >= baselineROAS*thresholds.TopMultiplier &&
			segment.Conversions >= thresholds.MinConversions {
			classified.Top = append(classified.Top, segment)
			continue
		}

		if segment.ROAS < baselineROAS*thresholds.UnderMultiplier &&
			segment.Spend >= thresholds.MinSpend {
			classified.Under = append(classified.Under, segment)
		}
	}

	return classified
}

// WastedSpend soma o investimento dos segmentos com performance abaixo do
// limiar inferior
func (c ClassifiedSegments) WastedSpend() float64 {
	total := 0.0
	for _, segment := range c.Under {
		total += segment.Spend
	}
	return total
}

// TopSegment devolve o melhor segmento do conjunto top, se existir
func (c ClassifiedSegments) TopSegment() *domain.AggregatedSegment {
	if len(c.Top) == 0 {
		return nil
	}
	return c.Top[0]
}
