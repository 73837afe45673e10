package domain

// PatternType classifica o padrão encontrado na análise profunda
type PatternType string

const (
	PatternTypeHidden  PatternType = "hidden"
	PatternTypeObvious PatternType = "obvious"
	PatternTypeAnomaly PatternType = "anomaly"
)

// UrgencyLevel indica a urgência de ação sobre o padrão encontrado
type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

// CrossDimensionalPattern descreve um padrão que só aparece combinando
// segmentos de dimensões diferentes
type CrossDimensionalPattern struct {
	Description string  `json:"description"`
	Specificity string  `json:"specificity"`
	ROAS        float64 `json:"roas"`
	Confidence  float64 `json:"confidence"`
}

// ScenarioProjection é a projeção financeira de um cenário (adotar ou ignorar)
type ScenarioProjection struct {
	ProjectedProfit  float64 `json:"projected_profit"`
	ProjectedROAS    float64 `json:"projected_roas"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	LostOpportunity  float64 `json:"lost_opportunity,omitempty"`
	WorstCaseROAS    float64 `json:"worst_case_roas,omitempty"`
	WorstCaseProfit  float64 `json:"worst_case_profit,omitempty"`
	OpportunityCost  float64 `json:"opportunity_cost,omitempty"`
}

// FinancialImpact reúne os dois cenários projetados pela análise
type FinancialImpact struct {
	IfAdopted *ScenarioProjection `json:"if_adopted"`
	IfIgnored *ScenarioProjection `json:"if_ignored"`
}

// ConfidenceInterval é a faixa de roas esperada para a projeção
type ConfidenceInterval struct {
	Lower    float64 `json:"lower"`
	Expected float64 `json:"expected"`
	Upper    float64 `json:"upper"`
}

// PatternAnalysis é o resultado da análise profunda de uma entidade: um único
// padrão narrado, os segmentos de apoio por dimensão e a projeção financeira
type PatternAnalysis struct {
	EntityID                string                              `json:"entity_id"`
	PatternType             PatternType                         `json:"pattern_type"`
	UrgencyLevel            UrgencyLevel                        `json:"urgency_level"`
	PrimaryInsight          string                              `json:"primary_insight"`
	SupportingData          map[Dimension][]*AggregatedSegment  `json:"supporting_data"`
	CrossDimensionalPattern *CrossDimensionalPattern            `json:"cross_dimensional_pattern,omitempty"`
	FinancialImpact         *FinancialImpact                    `json:"financial_impact"`
	ConfidenceInterval      *ConfidenceInterval                 `json:"confidence_interval"`
	Methodology             string                              `json:"methodology"`
	SampleDataPoints        []*BreakdownRow                     `json:"sample_data_points,omitempty"`
	DataPointsAnalyzed      int                                 `json:"data_points_analyzed"`
	Actionable              bool                                `json:"actionable"`
}
