package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
)

const suggestionsTable = "suggestions"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type SuggestionRepository interface {
	Publish(ctx context.Context, suggestions []*domain.Suggestion) error
	ListByEntityID(ctx context.Context, entityID string) ([]*domain.Suggestion, error)
}

type suggestionRepository struct {
	conn *postgres.Connection
}

func NewSuggestionRepository(conn *postgres.Connection) SuggestionRepository {
	return &suggestionRepository{
		conn: conn,
	}
}

// Publish grava o lote de sugestões produzido pela varredura. A justificativa,
// o impacto estimado e a regra recomendada vão como jsonb; sugestão repetida
// para a mesma entidade e tipo é substituída pela mais recente.
func (s *suggestionRepository) Publish(ctx context.Context, suggestions []*domain.Suggestion) error {
	if len(suggestions) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(suggestionsTable).
		Columns(
			"id", "entity_type", "entity_id", "entity_name", "platform",
			"suggestion_type", "priority_score", "confidence_score",
			"title", "message", "reasoning", "recommended_rule", "estimated_impact",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, suggestion := range suggestions {
		reasoning, err := json.Marshal(suggestion.Reasoning)
		if err != nil {
			return fmt.Errorf("erro ao serializar a justificativa da sugestão: %w", err)
		}

		impact, err := json.Marshal(suggestion.EstimatedImpact)
		if err != nil {
			return fmt.Errorf("erro ao serializar o impacto estimado da sugestão: %w", err)
		}

		var rule interface{}
		if suggestion.RecommendedRule != nil {
			rule = []byte(suggestion.RecommendedRule)
		}

		query = query.Values(
			suggestion.ID,
			suggestion.EntityType,
			suggestion.EntityID,
			suggestion.EntityName,
			suggestion.Platform,
			suggestion.SuggestionType,
			suggestion.PriorityScore,
			suggestion.ConfidenceScore,
			suggestion.Title,
			suggestion.Message,
			reasoning,
			rule,
			impact,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (entity_id, suggestion_type) DO UPDATE SET
			id = EXCLUDED.id,
			priority_score = EXCLUDED.priority_score,
			confidence_score = EXCLUDED.confidence_score,
			title = EXCLUDED.title,
			message = EXCLUDED.message,
			reasoning = EXCLUDED.reasoning,
			recommended_rule = EXCLUDED.recommended_rule,
			estimated_impact = EXCLUDED.estimated_impact
	`)

	suggestionsSQL, suggestionsArgs, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = s.conn.ExecContext(ctx, suggestionsSQL, suggestionsArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro de banco de dados: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// ListByEntityID busca as sugestões publicadas de uma entidade, das mais
// prioritárias para as menos
func (s *suggestionRepository) ListByEntityID(ctx context.Context, entityID string) ([]*domain.Suggestion, error) {
	suggestionsSQL, suggestionsArgs, err := squirrel.
		Select(
			"id", "entity_type", "entity_id", "entity_name", "platform",
			"suggestion_type", "priority_score", "confidence_score",
			"title", "message", "reasoning", "recommended_rule", "estimated_impact",
		).
		From(suggestionsTable).
		Where(squirrel.Eq{"entity_id": entityID}).
		OrderBy("priority_score DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx, suggestionsSQL, suggestionsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	suggestions := make([]*domain.Suggestion, 0)

	for rows.Next() {
		suggestion := &domain.Suggestion{}

		var reasoning, impact []byte
		var rule []byte

		if err := rows.Scan(
			&suggestion.ID,
			&suggestion.EntityType,
			&suggestion.EntityID,
			&suggestion.EntityName,
			&suggestion.Platform,
			&suggestion.SuggestionType,
			&suggestion.PriorityScore,
			&suggestion.ConfidenceScore,
			&suggestion.Title,
			&suggestion.Message,
			&reasoning,
			&rule,
			&impact,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a sugestão: %w", err)
		}

		if len(reasoning) > 0 {
			suggestion.Reasoning = &domain.SuggestionReasoning{}
			if err := json.Unmarshal(reasoning, suggestion.Reasoning); err != nil {
				return nil, fmt.Errorf("erro ao deserializar a justificativa: %w", err)
			}
		}

		if len(impact) > 0 {
			suggestion.EstimatedImpact = &domain.EstimatedImpact{}
			if err := json.Unmarshal(impact, suggestion.EstimatedImpact); err != nil {
				return nil, fmt.Errorf("erro ao deserializar o impacto estimado: %w", err)
			}
		}

		if len(rule) > 0 {
			suggestion.RecommendedRule = rule
		}

		suggestions = append(suggestions, suggestion)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return suggestions, nil
}
