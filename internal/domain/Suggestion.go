package domain

import "encoding/json"

// SuggestionType identifica o tipo de otimização sugerida
type SuggestionType string

const (
	SuggestionPauseDemographics SuggestionType = "pause_underperforming_demographics"
	SuggestionShiftPlacements   SuggestionType = "shift_budget_placements"
	SuggestionFocusGeographies  SuggestionType = "focus_top_geographies"
	SuggestionAdjustSchedule    SuggestionType = "adjust_ad_schedule"
	SuggestionRetainCustomers   SuggestionType = "invest_customer_retention"
)

// RiskLevel indica o risco de aplicar a sugestão
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// SuggestionReasoning é a justificativa estruturada de uma sugestão: as
// métricas usadas na classificação e a narrativa da análise
type SuggestionReasoning struct {
	TriggeredBy        []string                           `json:"triggered_by"`
	PrimaryInsight     string                             `json:"primary_insight"`
	Metrics            map[string]float64                 `json:"metrics"`
	Analysis           string                             `json:"analysis"`
	RiskLevel          RiskLevel                          `json:"risk_level"`
	SupportingData     map[Dimension][]*AggregatedSegment `json:"supporting_data,omitempty"`
	DataPointsAnalyzed int                                `json:"data_points_analyzed"`
	AnalysisDepth      string                             `json:"analysis_depth"`
	PatternType        PatternType                        `json:"pattern_type,omitempty"`
	Urgency            UrgencyLevel                       `json:"urgency,omitempty"`
	Projections        *FinancialImpact                   `json:"projections,omitempty"`
	Methodology        string                             `json:"methodology,omitempty"`
	SampleDataPoints   []*BreakdownRow                    `json:"sample_data_points,omitempty"`
}

// EstimatedImpact quantifica o efeito financeiro esperado da sugestão
type EstimatedImpact struct {
	ExpectedSavings float64 `json:"expected_savings,omitempty"`
	ExpectedProfit  float64 `json:"expected_profit,omitempty"`
	TimeframeDays   int     `json:"timeframe_days"`
	Confidence      string  `json:"confidence"`
	Breakdown       string  `json:"breakdown"`
}

// Suggestion é o objeto de otimização consumido externamente. A regra de
// automação recomendada é opaca para o motor de análise: quem monta é o
// gerador de regras externo.
type Suggestion struct {
	ID              string               `json:"id"`
	EntityType      EntityType           `json:"entity_type"`
	EntityID        string               `json:"entity_id"`
	EntityName      string               `json:"entity_name"`
	Platform        Platform             `json:"platform"`
	SuggestionType  SuggestionType       `json:"suggestion_type"`
	PriorityScore   int                  `json:"priority_score"`
	ConfidenceScore int                  `json:"confidence_score"`
	Title           string               `json:"title"`
	Message         string               `json:"message"`
	Reasoning       *SuggestionReasoning `json:"reasoning"`
	RecommendedRule json.RawMessage      `json:"recommended_rule,omitempty"`
	EstimatedImpact *EstimatedImpact     `json:"estimated_impact"`
}
