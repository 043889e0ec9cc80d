// Package profiling computes per-column summary statistics for the
// dataset overview endpoint.
package profiling

import (
	"transitdash/domain/table"

	"github.com/montanaflynn/stats"
)

// ColumnSummary describes one column of a loaded dataset.
type ColumnSummary struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	MissingRate float64 `json:"missing_rate"`
	UniqueCount int     `json:"unique_count"`

	// Numeric columns only.
	Mean   float64 `json:"mean,omitempty"`
	StdDev float64 `json:"std_dev,omitempty"`
	Min    float64 `json:"min,omitempty"`
	Max    float64 `json:"max,omitempty"`
	Median float64 `json:"median,omitempty"`
	Q25    float64 `json:"q25,omitempty"`
	Q75    float64 `json:"q75,omitempty"`
}

// DatasetSummary describes one loaded dataset.
type DatasetSummary struct {
	Name        string          `json:"name"`
	RowCount    int             `json:"row_count"`
	ColumnCount int             `json:"column_count"`
	NumericCols int             `json:"numeric_cols"`
	MissingRate float64         `json:"missing_rate"`
	Columns     []ColumnSummary `json:"columns"`
}

// Summarize profiles every column of a table.
func Summarize(t *table.Table) DatasetSummary {
	summary := DatasetSummary{
		Name:        t.Name(),
		RowCount:    t.RowCount(),
		ColumnCount: t.ColumnCount(),
		NumericCols: t.NumericProjection().ColumnCount(),
		MissingRate: t.MissingRate(),
	}
	for _, name := range t.ColumnNames() {
		col, _ := t.Column(name)
		summary.Columns = append(summary.Columns, summarizeColumn(col))
	}
	return summary
}

func summarizeColumn(col *table.Column) ColumnSummary {
	cs := ColumnSummary{
		Name:        col.Name,
		Type:        col.Kind.String(),
		UniqueCount: uniqueCount(col),
	}
	if n := col.Len(); n > 0 {
		cs.MissingRate = float64(col.MissingCount()) / float64(n)
	}
	if !col.Kind.IsNumeric() {
		return cs
	}

	data := presentValues(col)
	if len(data) == 0 {
		return cs
	}
	cs.Mean, _ = stats.Mean(data)
	cs.StdDev, _ = stats.StandardDeviation(data)
	cs.Min, _ = stats.Min(data)
	cs.Max, _ = stats.Max(data)
	cs.Median, _ = stats.Median(data)
	cs.Q25, _ = stats.Percentile(data, 25)
	cs.Q75, _ = stats.Percentile(data, 75)
	return cs
}

// presentValues returns the non-missing numeric values of a column.
func presentValues(col *table.Column) []float64 {
	var out []float64
	for i, v := range col.Floats {
		if !col.Missing[i] {
			out = append(out, v)
		}
	}
	return out
}

func uniqueCount(col *table.Column) int {
	if col.Kind.IsNumeric() {
		seen := make(map[float64]struct{})
		for i, v := range col.Floats {
			if !col.Missing[i] {
				seen[v] = struct{}{}
			}
		}
		return len(seen)
	}
	seen := make(map[string]struct{})
	for i, v := range col.Texts {
		if !col.Missing[i] {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}
