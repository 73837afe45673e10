package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
)

const entityBaselinesTable = "entity_baselines"

type BaselineRepository interface {
	GetEntityBaseline(ctx context.Context, entityID string) (*domain.EntityBaseline, error)
}

type baselineRepository struct {
	conn *postgres.Connection
}

func NewBaselineRepository(conn *postgres.Connection) BaselineRepository {
	return &baselineRepository{
		conn: conn,
	}
}

// GetEntityBaseline busca o snapshot de performance geral da entidade. O
// snapshot é mantido pelo pipeline de ingestão; entidade sem snapshot retorna
// nil sem erro, o que desliga a classificação na análise.
func (b *baselineRepository) GetEntityBaseline(ctx context.Context, entityID string) (*domain.EntityBaseline, error) {
	baselineSQL, baselineArgs, err := squirrel.
		Select("entity_id", "spend", "revenue", "profit", "roas", "conversions", "cpa", "impressions", "clicks", "ctr").
		From(entityBaselinesTable).
		Where(squirrel.Eq{"entity_id": entityID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := b.conn.QueryRowContext(ctx, baselineSQL, baselineArgs...)

	baseline := &domain.EntityBaseline{}
	if err := row.Scan(
		&baseline.EntityID,
		&baseline.Spend,
		&baseline.Revenue,
		&baseline.Profit,
		&baseline.ROAS,
		&baseline.Conversions,
		&baseline.CPA,
		&baseline.Impressions,
		&baseline.Clicks,
		&baseline.CTR,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao deserializar o baseline: %w", err)
	}

	return baseline, nil
}
