package office

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Office, error)
	List(ctx context.Context) ([]*Office, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Office, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "code", "name", "address", "created_at").
		From("public.offices").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get office query failed: %w", err)
	}

	var o Office
	row := r.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&o.ID, &o.Code, &o.Name, &o.Address, &o.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get office failed: %w", err)
	}
	return &o, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Office, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "code", "name", "address", "created_at").
		From("public.offices").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list offices query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list offices failed: %w", err)
	}
	defer rows.Close()

	var offices []*Office
	for rows.Next() {
		var o Office
		if err := rows.Scan(&o.ID, &o.Code, &o.Name, &o.Address, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan office failed: %w", err)
		}
		offices = append(offices, &o)
	}
	return offices, rows.Err()
}
