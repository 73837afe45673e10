package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
)

const adEntitiesTable = "ad_entities"

type EntityRepository interface {
	GetEntityByID(ctx context.Context, entityID string) (*domain.AdEntity, error)
	ListActiveEntities(ctx context.Context) ([]*domain.AdEntity, error)
}

type entityRepository struct {
	conn *postgres.Connection
}

func NewEntityRepository(conn *postgres.Connection) EntityRepository {
	return &entityRepository{
		conn: conn,
	}
}

func (e *entityRepository) GetEntityByID(ctx context.Context, entityID string) (*domain.AdEntity, error) {
	entitySQL, entityArgs, err := squirrel.
		Select("id", "name", "type", "platform", "status").
		From(adEntitiesTable).
		Where(squirrel.Eq{"id": entityID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := e.conn.QueryRowContext(ctx, entitySQL, entityArgs...)

	entity := &domain.AdEntity{}
	if err := row.Scan(
		&entity.ID,
		&entity.Name,
		&entity.Type,
		&entity.Platform,
		&entity.Status,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao deserializar a entidade: %w", err)
	}

	return entity, nil
}

// ListActiveEntities lista as entidades ativas, usadas pela varredura agendada
// de análise
func (e *entityRepository) ListActiveEntities(ctx context.Context) ([]*domain.AdEntity, error) {
	entitiesSQL, entitiesArgs, err := squirrel.
		Select("id", "name", "type", "platform", "status").
		From(adEntitiesTable).
		Where(squirrel.Eq{"status": "active"}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := e.conn.QueryContext(ctx, entitiesSQL, entitiesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entities := make([]*domain.AdEntity, 0)

	for rows.Next() {
		entity := &domain.AdEntity{}
		if err := rows.Scan(
			&entity.ID,
			&entity.Name,
			&entity.Type,
			&entity.Platform,
			&entity.Status,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a entidade: %w", err)
		}

		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return entities, nil
}
