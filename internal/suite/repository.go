package suite

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Suite, error)
	List(ctx context.Context, filter Filter) ([]*Suite, int, error)
	UpdateBase(ctx context.Context, s *Suite) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const suiteColumns = "id, office_id, name, suite_type, base_status, shape_id, capacity, created_at, updated_at"

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Suite, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(suiteColumns).
		From("public.suites").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get suite query failed: %w", err)
	}

	var s Suite
	row := r.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(
		&s.ID, &s.OfficeID, &s.Name, &s.SuiteType, &s.Base,
		&s.ShapeID, &s.Capacity, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get suite failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Suite, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(suiteColumns + ", count(*) OVER() as total_count").
		From("public.suites")

	if filter.OfficeID != "" {
		query = query.Where(squirrel.Eq{"office_id": filter.OfficeID})
	}
	if filter.SuiteType != "" {
		query = query.Where(squirrel.Eq{"suite_type": filter.SuiteType})
	}
	if filter.Base != "" {
		query = query.Where(squirrel.Eq{"base_status": filter.Base})
	}

	query = query.OrderBy("name ASC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list suites query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list suites failed: %w", err)
	}
	defer rows.Close()

	var suites []*Suite
	var total int
	for rows.Next() {
		var s Suite
		if err := rows.Scan(
			&s.ID, &s.OfficeID, &s.Name, &s.SuiteType, &s.Base,
			&s.ShapeID, &s.Capacity, &s.CreatedAt, &s.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan suite failed: %w", err)
		}
		suites = append(suites, &s)
	}
	return suites, total, rows.Err()
}

func (r *pgxRepository) UpdateBase(ctx context.Context, s *Suite) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.suites").
		Set("base_status", s.Base).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update suite query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update suite failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
