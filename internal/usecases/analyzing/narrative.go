package analyzing

import (
	"fmt"

	"github.com/vfg2006/ad-optimizer-api/internal/domain"
)

// RenderPrimaryInsight monta a narrativa principal do padrão decidido pelo
// sintetizador. A renderização fica separada da decisão numérica de propósito:
// mudar o texto não pode mudar o resultado da análise.
func RenderPrimaryInsight(decision PatternDecision) string {
	switch decision.Branch {
	case BranchDemographicCross:
		insight := fmt.Sprintf(
			"O público %s entrega ROAS %.2f, uma melhora de %.0f%% sobre a média da conta",
			decision.Demographic.Label,
			decision.Demographic.ROAS,
			decision.Demographic.ImprovementVsBaseline,
		)
		if decision.Placement != nil {
			insight += fmt.Sprintf(", concentrada no posicionamento %s", decision.Placement.Label)
		}
		if decision.Temporal != nil {
			insight += fmt.Sprintf(", com pico %s", decision.Temporal.Label)
		}
		return insight + ". Esse cruzamento não aparece olhando cada dimensão isolada."

	case BranchPlacement:
		return fmt.Sprintf(
			"O posicionamento %s entrega ROAS %.2f, %.0f%% acima da média da conta, e está recebendo menos orçamento do que deveria.",
			decision.Placement.Label,
			decision.Placement.ROAS,
			decision.Placement.ImprovementVsBaseline,
		)

	case BranchGeographic:
		return fmt.Sprintf(
			"A região %s responde por %.1f%% da receita com ticket médio de R$ %.2f e ROAS %.2f (%.0f%% acima da média).",
			decision.Geographic.Label,
			decision.RevenueSharePct,
			decision.AvgOrderValue,
			decision.Geographic.ROAS,
			decision.Geographic.ImprovementVsBaseline,
		)
	}

	return fmt.Sprintf(
		"Ainda analisando %d pontos de dados. Nenhum padrão forte o suficiente para recomendar ação até agora.",
		decision.DataPoints,
	)
}

// RenderCrossDimensionalPattern monta a descrição do padrão cruzado quando o
// ramo demográfico disparou
func RenderCrossDimensionalPattern(decision PatternDecision) *domain.CrossDimensionalPattern {
	if decision.Branch != BranchDemographicCross {
		return nil
	}

	specificity := decision.Demographic.Label
	if decision.Placement != nil {
		specificity += " + " + decision.Placement.Label
	}
	if decision.Temporal != nil {
		specificity += " + " + decision.Temporal.Label
	}

	return &domain.CrossDimensionalPattern{
		Description: fmt.Sprintf("Combinação de público, posicionamento e horário com ROAS %.2f", decision.Demographic.ROAS),
		Specificity: specificity,
		ROAS:        decision.Demographic.ROAS,
		Confidence:  decision.Confidence,
	}
}

// RenderMethodology descreve como a análise foi feita, para acompanhar o
// resultado entregue ao consumidor
func RenderMethodology(decision PatternDecision) string {
	return fmt.Sprintf(
		"Agregação de %d pontos de dados nas dimensões demográfica, posicionamento, geográfica e temporal; "+
			"comparação de cada segmento contra o baseline da entidade e síntese do padrão dominante (confiança %.2f).",
		decision.DataPoints,
		decision.Confidence,
	)
}
