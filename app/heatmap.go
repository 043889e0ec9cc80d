package app

import (
	"fmt"
	"math"

	"transitdash/domain/chart"
	"transitdash/domain/selection"

	"gonum.org/v1/gonum/stat"
)

const heatmapNoDataTitle = "Correlation Data Missing or Incorrect"

// CorrelationHeatmap computes the pairwise Pearson correlation matrix
// over the selected numeric columns of the selected dataset. An empty
// column selection means every column of the dataset's numeric
// projection. Zero-variance columns produce NaN cells (marshaled as
// null) rather than a failure; fewer than two usable columns produce an
// explicit no-data spec.
func (v *Views) CorrelationHeatmap(key selection.DatasetKey, columns []string, scale selection.ColorScale) chart.Spec {
	numeric := v.store.Numeric(key)

	if len(columns) == 0 {
		columns = numeric.ColumnNames()
	} else {
		// Keep only columns that exist in the numeric projection, in
		// the order the user selected them.
		usable := columns[:0:0]
		for _, name := range columns {
			if numeric.HasColumns(name) {
				usable = append(usable, name)
			}
		}
		columns = usable
	}

	if len(columns) < 2 {
		return chart.NoData(chart.KindHeatmap, heatmapNoDataTitle)
	}

	series := make([][]float64, len(columns))
	for i, name := range columns {
		series[i], _ = numeric.NumericColumn(name)
	}

	values := make([][]chart.Float, len(columns))
	annotations := make([][]string, len(columns))
	for i := range columns {
		values[i] = make([]chart.Float, len(columns))
		annotations[i] = make([]string, len(columns))
		for j := range columns {
			r := pearson(series[i], series[j], i == j)
			values[i][j] = chart.Float(r)
			annotations[i][j] = annotate(r)
		}
	}

	return chart.Spec{
		Kind:  chart.KindHeatmap,
		Title: fmt.Sprintf("Correlation Heatmap (%s)", key),
		Heatmap: &chart.Heatmap{
			Labels:      columns,
			Values:      values,
			Annotations: annotations,
			ColorScale:  string(scale),
			ShowScale:   true,
		},
	}
}

// pearson computes the correlation of two equal-length series. The
// diagonal is exactly 1 unless the column is constant, in which case
// the correlation is undefined and reported as NaN.
func pearson(x, y []float64, diagonal bool) float64 {
	if len(x) == 0 || len(x) != len(y) {
		return math.NaN()
	}
	if diagonal {
		if stat.Variance(x, nil) == 0 {
			return math.NaN()
		}
		return 1
	}
	return stat.Correlation(x, y, nil)
}

func annotate(r float64) string {
	if math.IsNaN(r) {
		return ""
	}
	return fmt.Sprintf("%.2f", r)
}
