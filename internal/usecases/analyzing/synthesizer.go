package analyzing

import (
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
)

// PatternBranch identifica qual ramo do sintetizador disparou
type PatternBranch int

const (
	// BranchDemographicCross é o padrão cruzado puxado pelo segmento demográfico
	BranchDemographicCross PatternBranch = iota + 1
	// BranchPlacement é o padrão escondido de posicionamento
	BranchPlacement
	// BranchGeographic é o padrão óbvio geográfico
	BranchGeographic
	// BranchInsufficient é o placeholder quando nenhum ramo disparou
	BranchInsufficient
)

// PatternThresholds são os limiares de melhora (em %) que disparam cada ramo
// do sintetizador
type PatternThresholds struct {
	DemographicImprovement float64
	PlacementImprovement   float64
	GeographicImprovement  float64
}

// DefaultPatternThresholds devolve os limiares de produção dos ramos
func DefaultPatternThresholds() PatternThresholds {
	return PatternThresholds{
		DemographicImprovement: 200,
		PlacementImprovement:   150,
		GeographicImprovement:  100,
	}
}

// crossPatternConfidence é a confiança fixa atribuída ao padrão cruzado
// demográfico, o mais específico que o sintetizador produz
const crossPatternConfidence = 0.95

// PatternDecision é o resultado numérico do sintetizador, separado da
// renderização das narrativas para que a decisão seja testável sem asserção
// de strings
type PatternDecision struct {
	Branch      PatternBranch
	PatternType domain.PatternType
	Urgency     domain.UrgencyLevel
	Actionable  bool
	Confidence  float64

	// Winning é o segmento vencedor do ramo que disparou (nil no placeholder)
	Winning *domain.AggregatedSegment

	// Segmentos usados na narrativa cruzada
	Demographic *domain.AggregatedSegment
	Placement   *domain.AggregatedSegment
	Temporal    *domain.AggregatedSegment
	Geographic  *domain.AggregatedSegment

	// Métricas do ramo geográfico
	RevenueSharePct float64
	AvgOrderValue   float64

	DataPoints int
}

// SynthesizePattern inspeciona os segmentos top das quatro dimensões e decide
// um único padrão narrável. A ordem dos ramos é uma decisão de projeto: o
// primeiro que disparar vence, do padrão mais específico e surpreendente para
// o mais genérico.
func SynthesizePattern(
	tops map[domain.Dimension][]*domain.AggregatedSegment,
	baseline *domain.EntityBaseline,
	dataPoints int,
	thresholds PatternThresholds,
) PatternDecision {
	topDemographic := firstSegment(tops[domain.DimensionDemographic])
	topPlacement := firstSegment(tops[domain.DimensionPlacement])
	topGeographic := firstSegment(tops[domain.DimensionGeographic])
	topTemporal := firstSegment(tops[domain.DimensionTemporal])

	// Ramo 1: combinação demográfica forte o suficiente para sustentar um
	// padrão cruzado com posicionamento e horário
	if topDemographic != nil && topDemographic.ImprovementVsBaseline >= thresholds.DemographicImprovement {
		return PatternDecision{
			Branch:      BranchDemographicCross,
			PatternType: domain.PatternTypeHidden,
			Urgency:     domain.UrgencyCritical,
			Actionable:  true,
			Confidence:  crossPatternConfidence,
			Winning:     topDemographic,
			Demographic: topDemographic,
			Placement:   topPlacement,
			Temporal:    topTemporal,
			DataPoints:  dataPoints,
		}
	}

	// Ramo 2: posicionamento escondido
	if topPlacement != nil && topPlacement.ImprovementVsBaseline >= thresholds.PlacementImprovement {
		return PatternDecision{
			Branch:      BranchPlacement,
			PatternType: domain.PatternTypeHidden,
			Urgency:     domain.UrgencyHigh,
			Actionable:  true,
			Confidence:  0.85,
			Winning:     topPlacement,
			Placement:   topPlacement,
			DataPoints:  dataPoints,
		}
	}

	// Ramo 3: concentração geográfica óbvia
	if topGeographic != nil && topGeographic.ImprovementVsBaseline >= thresholds.GeographicImprovement {
		revenueShare := 0.0
		if baseline != nil && baseline.Revenue > 0 {
			revenueShare = topGeographic.Revenue / baseline.Revenue * 100
		}

		avgOrderValue := 0.0
		if topGeographic.Conversions > 0 {
			avgOrderValue = topGeographic.Revenue / float64(topGeographic.Conversions)
		}

		return PatternDecision{
			Branch:          BranchGeographic,
			PatternType:     domain.PatternTypeObvious,
			Urgency:         domain.UrgencyHigh,
			Actionable:      true,
			Confidence:      0.8,
			Winning:         topGeographic,
			Geographic:      topGeographic,
			RevenueSharePct: revenueShare,
			AvgOrderValue:   avgOrderValue,
			DataPoints:      dataPoints,
		}
	}

	// Placeholder: nada forte o suficiente para narrar. Não é um achado
	// acionável e precisa ser distinguível disso por quem consome.
	return PatternDecision{
		Branch:      BranchInsufficient,
		PatternType: domain.PatternTypeObvious,
		Urgency:     domain.UrgencyLow,
		Actionable:  false,
		Confidence:  0.5,
		DataPoints:  dataPoints,
	}
}

func firstSegment(segments []*domain.AggregatedSegment) *domain.AggregatedSegment {
	if len(segments) == 0 {
		return nil
	}
	return segments[0]
}
