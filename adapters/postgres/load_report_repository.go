// Package postgres persists dataset load reports for auditing. The
// dashboard itself never reads from the database; this adapter is
// enabled only when DATABASE_URL is configured.
package postgres

import (
	"context"
	"fmt"
	"time"

	"transitdash/internal/store"

	"github.com/jmoiron/sqlx"
)

const loadReportSchema = `
CREATE TABLE IF NOT EXISTS load_reports (
	id            TEXT PRIMARY KEY,
	dataset_key   TEXT NOT NULL,
	file_path     TEXT NOT NULL,
	row_count     INTEGER NOT NULL,
	column_count  INTEGER NOT NULL,
	numeric_cols  INTEGER NOT NULL,
	missing_rate  DOUBLE PRECISION NOT NULL,
	error_message TEXT NOT NULL DEFAULT '',
	loaded_at     TIMESTAMPTZ NOT NULL,
	duration_ms   BIGINT NOT NULL
)`

// loadReportRow is the sqlx-mapped shape of one load_reports row. The
// store's LoadReport stays free of persistence concerns; the column
// mapping lives here with the schema.
type loadReportRow struct {
	ID          string    `db:"id"`
	DatasetKey  string    `db:"dataset_key"`
	FilePath    string    `db:"file_path"`
	RowCount    int       `db:"row_count"`
	ColumnCount int       `db:"column_count"`
	NumericCols int       `db:"numeric_cols"`
	MissingRate float64   `db:"missing_rate"`
	Error       string    `db:"error_message"`
	LoadedAt    time.Time `db:"loaded_at"`
	DurationMS  int64     `db:"duration_ms"`
}

func newLoadReportRow(report store.LoadReport) loadReportRow {
	return loadReportRow{
		ID:          report.ID,
		DatasetKey:  report.DatasetKey,
		FilePath:    report.FilePath,
		RowCount:    report.RowCount,
		ColumnCount: report.ColumnCount,
		NumericCols: report.NumericCols,
		MissingRate: report.MissingRate,
		Error:       report.Error,
		LoadedAt:    report.LoadedAt,
		DurationMS:  report.DurationMS,
	}
}

// LoadReportRepository records one row per dataset ingested at startup.
type LoadReportRepository struct {
	db *sqlx.DB
}

// NewLoadReportRepository creates the repository and ensures its table exists.
func NewLoadReportRepository(db *sqlx.DB) (*LoadReportRepository, error) {
	if _, err := db.Exec(loadReportSchema); err != nil {
		return nil, fmt.Errorf("failed to create load_reports table: %w", err)
	}
	return &LoadReportRepository{db: db}, nil
}

// Save inserts a load report.
func (r *LoadReportRepository) Save(ctx context.Context, report store.LoadReport) error {
	query := `INSERT INTO load_reports (
		id, dataset_key, file_path, row_count, column_count, numeric_cols,
		missing_rate, error_message, loaded_at, duration_ms
	) VALUES (
		:id, :dataset_key, :file_path, :row_count, :column_count, :numeric_cols,
		:missing_rate, :error_message, :loaded_at, :duration_ms
	)`

	if _, err := r.db.NamedExecContext(ctx, query, newLoadReportRow(report)); err != nil {
		return fmt.Errorf("failed to save load report for %s: %w", report.DatasetKey, err)
	}
	return nil
}

// SaveAll inserts every report from a completed startup load.
func (r *LoadReportRepository) SaveAll(ctx context.Context, reports []store.LoadReport) error {
	for _, report := range reports {
		if err := r.Save(ctx, report); err != nil {
			return err
		}
	}
	return nil
}
