// Package chart defines the renderable chart specifications the view
// functions produce. A Spec is built fresh on every evaluation and
// handed to the presentation layer; nothing here is cached or mutated.
package chart

import (
	"math"
	"strconv"
)

// Kind identifies the widget type a spec renders as.
type Kind string

const (
	KindHeatmap    Kind = "heatmap"
	KindLine       Kind = "line"
	KindBar        Kind = "bar"
	KindScatterMap Kind = "scattermap"
)

// Float marshals like float64 but renders NaN as JSON null. Undefined
// correlations (zero-variance columns) travel as NaN inside the process
// and must not break encoding.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v, 'g', -1, 64)), nil
}

// Floats converts a raw float slice for marshaling.
func Floats(vals []float64) []Float {
	out := make([]Float, len(vals))
	for i, v := range vals {
		out[i] = Float(v)
	}
	return out
}

// Spec describes one renderable chart. Exactly one payload field is set
// for the matching Kind; a NoData spec carries only Kind and Title.
type Spec struct {
	Kind   Kind   `json:"kind"`
	Title  string `json:"title"`
	XTitle string `json:"x_title,omitempty"`
	YTitle string `json:"y_title,omitempty"`
	NoData bool   `json:"no_data,omitempty"`

	Heatmap    *Heatmap    `json:"heatmap,omitempty"`
	Line       *Line       `json:"line,omitempty"`
	Bar        *Bar        `json:"bar,omitempty"`
	ScatterMap *ScatterMap `json:"scattermap,omitempty"`
}

// NoData builds the placeholder spec a view returns when its required
// columns are absent or the selection produced nothing to plot. The
// title is the user-visible explanation.
func NoData(kind Kind, title string) Spec {
	return Spec{Kind: kind, Title: title, NoData: true}
}

// Heatmap carries an annotated correlation matrix. Values is square and
// indexed symmetrically by Labels; undefined cells are NaN and marshal
// as null. Annotations hold the per-cell value text.
type Heatmap struct {
	Labels      []string   `json:"labels"`
	Values      [][]Float  `json:"values"`
	Annotations [][]string `json:"annotations"`
	ColorScale  string     `json:"color_scale"`
	ShowScale   bool       `json:"show_scale"`
}

// Line is a single series plotted in data order. X holds display labels
// because the source year column is a fiscal-year string, not a number.
type Line struct {
	X []string `json:"x"`
	Y []Float  `json:"y"`
}

// Bar is a categorical bar series.
type Bar struct {
	X     []string `json:"x"`
	Y     []Float  `json:"y"`
	Color string   `json:"color,omitempty"`
}

// MapPoint is one marker on a geographic scatter map.
type MapPoint struct {
	Lat   float64           `json:"lat"`
	Lon   float64           `json:"lon"`
	Name  string            `json:"name"`
	Hover map[string]string `json:"hover,omitempty"`
}

// ScatterMap is a geographic point layer.
type ScatterMap struct {
	Points   []MapPoint `json:"points"`
	Zoom     int        `json:"zoom"`
	Height   int        `json:"height"`
	MapStyle string     `json:"map_style"`
}
