package analyzing

import (
	"sort"

	"github.com/vfg2006/ad-optimizer-api/internal/domain"
)

// AggregateBreakdownRows agrupa as linhas de breakdown de uma dimensão pela
// chave composta do segmento e soma as medidas de cada grupo. O resultado sai
// ordenado por roas decrescente; empates são resolvidos por spend decrescente
// e depois pela chave do segmento, para que a saída seja determinística entre
// execuções.
func AggregateBreakdownRows(rows []*domain.BreakdownRow) []*domain.AggregatedSegment {
	if len(rows) == 0 {
		return []*domain.AggregatedSegment{}
	}

	segmentsByKey := make(map[string]*domain.AggregatedSegment)

	for _, row := range rows {
		key := row.SegmentKey()

		segment, exists := segmentsByKey[key]
		if !exists {
			segment = &domain.AggregatedSegment{
				Dimension: row.Dimension,
				Key:       key,
				Label:     row.SegmentLabel(),
			}
			segmentsByKey[key] = segment
		}

		segment.Impressions += row.Impressions
		segment.Clicks += row.Clicks
		segment.Spend += row.Spend
		segment.Conversions += row.Conversions
		segment.Revenue += row.Revenue
		segment.DataPoints++
	}

	segments := make([]*domain.AggregatedSegment, 0, len(segmentsByKey))
	for _, segment := range segmentsByKey {
		segment.ComputeDerived()
		segments = append(segments, segment)
	}

	sort.Slice(segments, func(i, j int) bool {
		if segments[i].ROAS != segments[j].ROAS {
			return segments[i].ROAS > segments[j].ROAS
		}
		if segments[i].Spend != segments[j].Spend {
			return segments[i].Spend > segments[j].Spend
		}
		return segments[i].Key < segments[j].Key
	})

	return segments
}

// ApplyBaseline calcula a melhora de cada segmento em relação ao roas do
// baseline. O baseline vem sempre do snapshot da entidade, nunca é rederivado
// dos segmentos.
func ApplyBaseline(segments []*domain.AggregatedSegment, baselineROAS float64) {
	for _, segment := range segments {
		segment.ComputeImprovement(baselineROAS)
	}
}
