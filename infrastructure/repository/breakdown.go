package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
)

// undefinedTableCode é o código do postgres para tabela inexistente. Dimensão
// ainda não sincronizada pelo pipeline de ingestão aparece assim e deve ser
// tratada como zero linhas, não como falha.
const undefinedTableCode = "42P01"

// Cada dimensão tem sua própria tabela de fatos, com as colunas de chave da
// dimensão mais as medidas comuns
var breakdownTables = map[domain.Dimension]struct {
	table   string
	keyCols []string
}{
	domain.DimensionDemographic: {
		table:   "breakdown_demographic",
		keyCols: []string{"age_range", "gender"},
	},
	domain.DimensionPlacement: {
		table:   "breakdown_placement",
		keyCols: []string{"placement_type", "device_type", "publisher_platform"},
	},
	domain.DimensionGeographic: {
		table:   "breakdown_geographic",
		keyCols: []string{"country", "region", "city"},
	},
	domain.DimensionTemporal: {
		table:   "breakdown_temporal",
		keyCols: []string{"day_of_week", "hour_of_day"},
	},
}

type BreakdownRepository interface {
	GetBreakdownRows(ctx context.Context, entityID string, dimension domain.Dimension, filters *domain.AnalysisFilters) ([]*domain.BreakdownRow, error)
}

type breakdownRepository struct {
	conn *postgres.Connection
}

func NewBreakdownRepository(conn *postgres.Connection) BreakdownRepository {
	return &breakdownRepository{
		conn: conn,
	}
}

func (b *breakdownRepository) GetBreakdownRows(
	ctx context.Context,
	entityID string,
	dimension domain.Dimension,
	filters *domain.AnalysisFilters,
) ([]*domain.BreakdownRow, error) {
	spec, ok := breakdownTables[dimension]
	if !ok {
		return nil, fmt.Errorf("dimensão de breakdown desconhecida: %s", dimension)
	}

	columns := append([]string{"entity_id", "date"}, spec.keyCols...)
	columns = append(columns, "impressions", "clicks", "spend", "conversions", "revenue")

	queryBuilder := squirrel.
		Select(columns...).
		From(spec.table).
		Where(squirrel.Eq{"entity_id": entityID}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil && filters.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"date": *filters.StartDate})
	}
	if filters != nil && filters.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"date": *filters.EndDate})
	}

	breakdownSQL, breakdownArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := b.conn.QueryContext(ctx, breakdownSQL, breakdownArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == undefinedTableCode {
			logrus.WithField("dimension", dimension).Warn("Tabela de breakdown ainda não sincronizada, seguindo com zero linhas")
			return []*domain.BreakdownRow{}, nil
		}
		if err == sql.ErrNoRows {
			return []*domain.BreakdownRow{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	breakdownRows := make([]*domain.BreakdownRow, 0)

	for rows.Next() {
		row, err := b.deserializeRow(rows, dimension)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar a linha de breakdown: %w", err)
		}

		breakdownRows = append(breakdownRows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return breakdownRows, nil
}

func (b *breakdownRepository) deserializeRow(rows *sql.Rows, dimension domain.Dimension) (*domain.BreakdownRow, error) {
	row := &domain.BreakdownRow{Dimension: dimension}

	targets := []interface{}{&row.EntityID, &row.Date}

	switch dimension {
	case domain.DimensionDemographic:
		targets = append(targets, &row.AgeRange, &row.Gender)
	case domain.DimensionPlacement:
		targets = append(targets, &row.PlacementType, &row.DeviceType, &row.PublisherPlatform)
	case domain.DimensionGeographic:
		targets = append(targets, &row.Country, &row.Region, &row.City)
	case domain.DimensionTemporal:
		targets = append(targets, &row.DayOfWeek, &row.HourOfDay)
	}

	targets = append(targets, &row.Impressions, &row.Clicks, &row.Spend, &row.Conversions, &row.Revenue)

	if err := rows.Scan(targets...); err != nil {
		return nil, err
	}

	return row, nil
}
