package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the interval store adapter: a day-range-bounded query against the
// warehouse extraction tables. One call covers one window of at most
// MaxWindowDays.
type Store interface {
	FetchWindow(ctx context.Context, window DateRange, officeID string, asOf time.Time) (*WindowData, error)
}

type pgxStore struct {
	pool      *pgxpool.Pool
	suiteType string
	timeout   time.Duration
}

// NewPgxStore creates a Store over the warehouse schema. suiteType constrains
// the reference set (the deployment uses "team_room"); timeout bounds each
// window fetch.
func NewPgxStore(pool *pgxpool.Pool, suiteType string, timeout time.Duration) Store {
	return &pgxStore{
		pool:      pool,
		suiteType: suiteType,
		timeout:   timeout,
	}
}

func (s *pgxStore) FetchWindow(ctx context.Context, window DateRange, officeID string, asOf time.Time) (*WindowData, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	suites, err := s.fetchSuites(ctx, officeID, asOf)
	if err != nil {
		return nil, classifyStoreErr(err, "fetch suites")
	}

	intervals, err := s.fetchIntervals(ctx, window, officeID, asOf)
	if err != nil {
		return nil, classifyStoreErr(err, "fetch intervals")
	}

	return &WindowData{Suites: suites, Intervals: intervals}, nil
}

func (s *pgxStore) fetchSuites(ctx context.Context, officeID string, asOf time.Time) ([]SuiteRef, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("resource_id", "name", "office_id", "base_status").
		From("warehouse.suites").
		Where(squirrel.Eq{"suite_type": s.suiteType}).
		Where(squirrel.Eq{"as_of_date": asOf}).
		OrderBy("name ASC")

	if officeID != "" {
		query = query.Where(squirrel.Eq{"office_id": officeID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build suites query failed: %w", err)
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suites []SuiteRef
	for rows.Next() {
		var ref SuiteRef
		if err := rows.Scan(&ref.SuiteID, &ref.Name, &ref.OfficeID, &ref.Base); err != nil {
			return nil, fmt.Errorf("scan suite failed: %w", err)
		}
		suites = append(suites, ref)
	}
	return suites, rows.Err()
}

func (s *pgxStore) fetchIntervals(ctx context.Context, window DateRange, officeID string, asOf time.Time) ([]Interval, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	// NULL end_date means open-ended; normalize to the far-future sentinel
	// so start <= end holds for every scanned row.
	query := psql.Select(
		"i.resource_id",
		"i.start_date",
		"COALESCE(i.end_date, DATE '9999-12-31')",
	).
		From("warehouse.occupancy_intervals i").
		Join("warehouse.suites s ON i.resource_id = s.resource_id AND s.as_of_date = i.as_of_date").
		Where(squirrel.Eq{"s.suite_type": s.suiteType}).
		Where(squirrel.Eq{"i.as_of_date": asOf}).
		Where(squirrel.LtOrEq{"i.start_date": window.End}).
		Where(squirrel.Or{
			squirrel.Eq{"i.end_date": nil},
			squirrel.GtOrEq{"i.end_date": window.Start},
		})

	if officeID != "" {
		query = query.Where(squirrel.Eq{"s.office_id": officeID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build intervals query failed: %w", err)
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intervals []Interval
	for rows.Next() {
		var iv Interval
		if err := rows.Scan(&iv.SuiteID, &iv.Start, &iv.End); err != nil {
			return nil, fmt.Errorf("scan interval failed: %w", err)
		}
		intervals = append(intervals, iv)
	}
	return intervals, rows.Err()
}

// classifyStoreErr maps warehouse failures onto the engine's error taxonomy:
// permission errors and regional routing errors surface distinctly so
// operators can tell them apart; everything else stays generic.
func classifyStoreErr(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.InsufficientPrivilege:
			return ErrStoreAccessDenied.WithCause(err)
		case pgerrcode.InvalidCatalogName, pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection:
			return ErrStoreLocalityMismatch.WithCause(err)
		}
	}
	return fmt.Errorf("%s failed: %w", op, err)
}
