package rulegen

import (
	"context"
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
	"github.com/vfg2006/ad-optimizer-api/internal/usecases/analyzing"
)

var jsonMarshal = jsoniter.ConfigCompatibleWithStandardLibrary

// ruleSpec é a especificação declarativa de regra consumida pelo executor de
// automações. O motor de análise trata o resultado como opaco.
type ruleSpec struct {
	Version    string             `json:"version"`
	Action     string             `json:"action"`
	EntityType domain.EntityType  `json:"entity_type"`
	EntityID   string             `json:"entity_id"`
	Platform   domain.Platform    `json:"platform"`
	Conditions []ruleCondition    `json:"conditions,omitempty"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
}

type ruleCondition struct {
	Metric   string  `json:"metric"`
	Operator string  `json:"operator"`
	Value    float64 `json:"value"`
}

var actionBySuggestionType = map[domain.SuggestionType]string{
	domain.SuggestionPauseDemographics: "pause_segment",
	domain.SuggestionShiftPlacements:   "shift_budget",
	domain.SuggestionFocusGeographies:  "increase_budget",
	domain.SuggestionAdjustSchedule:    "set_schedule",
	domain.SuggestionRetainCustomers:   "create_audience",
}

type Generator struct{}

// New cria o gerador de regras padrão, que monta especificações declarativas
// a partir do tipo de sugestão e das métricas da análise
func New() analyzing.RuleGenerator {
	return &Generator{}
}

func (g *Generator) GenerateRule(ctx context.Context, input analyzing.RuleInput) (json.RawMessage, error) {
	action, ok := actionBySuggestionType[input.SuggestionType]
	if !ok {
		return nil, fmt.Errorf("tipo de sugestão sem regra conhecida: %s", input.SuggestionType)
	}

	spec := ruleSpec{
		Version:    "v1",
		Action:     action,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		Platform:   input.Platform,
		Metrics:    input.Metrics,
	}

	// Sugestões ancoradas em baseline carregam a condição de disparo junto,
	// para o executor revalidar antes de aplicar
	if baselineROAS, ok := input.Metrics["baseline_roas"]; ok && baselineROAS > 0 {
		spec.Conditions = append(spec.Conditions, ruleCondition{
			Metric:   "roas",
			Operator: "lt",
			Value:    baselineROAS,
		})
	}

	payload, err := jsonMarshal.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a especificação da regra: %w", err)
	}

	return json.RawMessage(payload), nil
}
