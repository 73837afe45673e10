package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
)

const enrichedConversionsTable = "enriched_conversions"

type ConversionRepository interface {
	GetEnrichedConversions(ctx context.Context, entityID string, lookbackDays int) ([]*domain.EnrichedConversion, error)
}

type conversionRepository struct {
	conn *postgres.Connection
}

func NewConversionRepository(conn *postgres.Connection) ConversionRepository {
	return &conversionRepository{
		conn: conn,
	}
}

// GetEnrichedConversions busca os pedidos da entidade enriquecidos com os
// dados de loja (primeira compra e valor de vida do cliente) dentro da janela
// de lookback
func (c *conversionRepository) GetEnrichedConversions(
	ctx context.Context,
	entityID string,
	lookbackDays int,
) ([]*domain.EnrichedConversion, error) {
	since := time.Now().AddDate(0, 0, -lookbackDays)

	conversionsSQL, conversionsArgs, err := squirrel.
		Select("order_id", "entity_id", "date", "is_first_purchase", "order_value", "customer_lifetime_value").
		From(enrichedConversionsTable).
		Where(squirrel.Eq{"entity_id": entityID}).
		Where(squirrel.GtOrEq{"date": since}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := c.conn.QueryContext(ctx, conversionsSQL, conversionsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.EnrichedConversion{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	conversions := make([]*domain.EnrichedConversion, 0)

	for rows.Next() {
		conversion := &domain.EnrichedConversion{}
		if err := rows.Scan(
			&conversion.OrderID,
			&conversion.EntityID,
			&conversion.Date,
			&conversion.IsFirstPurchase,
			&conversion.OrderValue,
			&conversion.CustomerLifetimeValue,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o pedido: %w", err)
		}

		conversions = append(conversions, conversion)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return conversions, nil
}
