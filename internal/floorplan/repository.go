package floorplan

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, f *Floorplan) error
	GetByID(ctx context.Context, id string) (*Floorplan, error)
	ListByOffice(ctx context.Context, officeID string) ([]*Floorplan, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const floorplanColumns = "id, office_id, floor, filename, storage_path, preview_path, content_type, size, uploaded_by, created_at"

func (r *pgxRepository) Create(ctx context.Context, f *Floorplan) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.floorplans").
		Columns("id", "office_id", "floor", "filename", "storage_path", "preview_path", "content_type", "size", "uploaded_by").
		Values(f.ID, f.OfficeID, f.Floor, f.Filename, f.StoragePath, f.PreviewPath, f.ContentType, f.Size, f.UploadedBy).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create floorplan query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&f.CreatedAt); err != nil {
		return fmt.Errorf("create floorplan failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Floorplan, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(floorplanColumns).
		From("public.floorplans").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get floorplan query failed: %w", err)
	}

	var f Floorplan
	row := r.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(
		&f.ID, &f.OfficeID, &f.Floor, &f.Filename, &f.StoragePath,
		&f.PreviewPath, &f.ContentType, &f.Size, &f.UploadedBy, &f.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get floorplan failed: %w", err)
	}
	return &f, nil
}

func (r *pgxRepository) ListByOffice(ctx context.Context, officeID string) ([]*Floorplan, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(floorplanColumns).
		From("public.floorplans").
		Where(squirrel.Eq{"office_id": officeID}).
		OrderBy("floor ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list floorplans query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list floorplans failed: %w", err)
	}
	defer rows.Close()

	var plans []*Floorplan
	for rows.Next() {
		var f Floorplan
		if err := rows.Scan(
			&f.ID, &f.OfficeID, &f.Floor, &f.Filename, &f.StoragePath,
			&f.PreviewPath, &f.ContentType, &f.Size, &f.UploadedBy, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan floorplan failed: %w", err)
		}
		plans = append(plans, &f)
	}
	return plans, rows.Err()
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.floorplans").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete floorplan query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete floorplan failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
