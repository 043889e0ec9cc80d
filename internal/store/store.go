// Package store holds the loaded datasets and their numeric projections.
// The store is built once at startup, before the first view evaluation,
// and is read-only afterward; views receive it by reference and may not
// mutate it, so no locking discipline is needed.
package store

import (
	"context"
	"time"

	"transitdash/adapters/ingest"
	"transitdash/domain/selection"
	"transitdash/domain/table"
	"transitdash/internal"
	"transitdash/internal/config"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Source describes one dataset file and its imputation rules.
type Source struct {
	Key   selection.DatasetKey
	Path  string
	Rules table.FillRules
}

// LoadReport records the outcome of ingesting one dataset, for the
// startup log and the optional audit repository.
type LoadReport struct {
	ID          string
	DatasetKey  string
	FilePath    string
	RowCount    int
	ColumnCount int
	NumericCols int
	MissingRate float64
	Error       string
	LoadedAt    time.Time
	DurationMS  int64
}

// Store is the immutable dataset store.
type Store struct {
	tables  map[selection.DatasetKey]*table.Table
	numeric map[selection.DatasetKey]*table.Table
	reports []LoadReport
}

// Sources returns the dataset descriptors for the configured paths.
// The fill rules keep the per-column imputation policy in one place:
// numeric gaps become 0, the named categorical columns become
// "Unknown", and coordinate columns are never imputed.
func Sources(paths config.PathConfig) []Source {
	sources := []Source{
		{
			Key:  selection.DatasetVehicle,
			Path: paths.VehicleFile,
			Rules: table.FillRules{
				UnknownText: []string{"CD_MAKE_VEH1", "CD_CLASS_VEH", "CD_CL_FUEL_ENG"},
			},
		},
		{
			Key:  selection.DatasetTransport,
			Path: paths.TransportFile,
			Rules: table.FillRules{
				UnknownText: []string{"Stop_name"},
				KeepMissing: []string{"Stop_lat", "Stop_long"},
			},
		},
		{
			Key:  selection.DatasetBike,
			Path: paths.BikeFile,
			Rules: table.FillRules{
				UnknownText: []string{"local_name", "facility_left", "facility_right"},
				KeepMissing: []string{"Latitude", "Longitude"},
			},
		},
	}
	if paths.JourneyFile != "" {
		sources = append(sources, Source{
			Key:  selection.DatasetJourney,
			Path: paths.JourneyFile,
			Rules: table.FillRules{
				UnknownText: []string{"jtwid", "persid", "hhid", "jtwmode"},
			},
		})
	}
	return sources
}

// Load ingests every source in parallel and returns the populated store.
// A file that cannot be read yields an empty table and a warning, never
// a startup failure: the views' missing-column guards take over from there.
func Load(ctx context.Context, sources []Source) (*Store, error) {
	logger := internal.DefaultLogger

	s := &Store{
		tables:  make(map[selection.DatasetKey]*table.Table, len(sources)),
		numeric: make(map[selection.DatasetKey]*table.Table, len(sources)),
	}
	results := make([]LoadReport, len(sources))
	tables := make([]*table.Table, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			report := LoadReport{
				ID:         uuid.NewString(),
				DatasetKey: string(src.Key),
				FilePath:   src.Path,
				LoadedAt:   start,
			}

			t, err := ingest.Load(string(src.Key), src.Path, src.Rules)
			if err != nil {
				logger.Warn("[Store] dataset %s unavailable, substituting empty table: %v", src.Key, err)
				report.Error = err.Error()
				t = table.Empty(string(src.Key))
			}

			report.RowCount = t.RowCount()
			report.ColumnCount = t.ColumnCount()
			report.NumericCols = t.NumericProjection().ColumnCount()
			report.MissingRate = t.MissingRate()
			report.DurationMS = time.Since(start).Milliseconds()

			tables[i] = t
			results[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, src := range sources {
		s.tables[src.Key] = tables[i]
		s.numeric[src.Key] = tables[i].NumericProjection()
		logger.Info("[Store] loaded %s: %d rows, %d columns (%d numeric)",
			src.Key, results[i].RowCount, results[i].ColumnCount, results[i].NumericCols)
	}
	s.reports = results
	return s, nil
}

// Table returns the dataset for a key; an empty table when the key is unknown.
func (s *Store) Table(key selection.DatasetKey) *table.Table {
	if t, ok := s.tables[key]; ok {
		return t
	}
	return table.Empty(string(key))
}

// Numeric returns the numeric projection for a key, computed at load time.
func (s *Store) Numeric(key selection.DatasetKey) *table.Table {
	if t, ok := s.numeric[key]; ok {
		return t
	}
	return table.Empty(string(key))
}

// Reports returns the per-dataset load reports in source order.
func (s *Store) Reports() []LoadReport {
	return s.reports
}

// FromTables builds a store directly from in-memory tables. Tests and
// the API server's fixtures use this; production goes through Load.
func FromTables(tables map[selection.DatasetKey]*table.Table) *Store {
	s := &Store{
		tables:  make(map[selection.DatasetKey]*table.Table, len(tables)),
		numeric: make(map[selection.DatasetKey]*table.Table, len(tables)),
	}
	for key, t := range tables {
		s.tables[key] = t
		s.numeric[key] = t.NumericProjection()
	}
	return s
}
