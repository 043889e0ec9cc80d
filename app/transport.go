package app

import (
	"transitdash/domain/chart"
	"transitdash/domain/selection"
)

const (
	transportYearColumn = "Fin_year"
	transportPaxColumn  = "Pax_annual"

	transportNoDataTitle = "Public Transport Data Missing or Incorrect"
)

// TransportTimeSeries plots annual passenger counts against financial
// year. Points are emitted in file order; the source data carries no
// chronological-sort guarantee, so none is imposed here.
func (v *Views) TransportTimeSeries() chart.Spec {
	t := v.store.Table(selection.DatasetTransport)

	yearCol, ok := t.Column(transportYearColumn)
	if !ok {
		return chart.NoData(chart.KindLine, transportNoDataTitle)
	}
	pax, ok := t.NumericColumn(transportPaxColumn)
	if !ok {
		return chart.NoData(chart.KindLine, transportNoDataTitle)
	}

	x := make([]string, t.RowCount())
	for i := range x {
		x[i] = yearCol.StringAt(i)
	}

	return chart.Spec{
		Kind:   chart.KindLine,
		Title:  "Public Transport Usage Over Time",
		XTitle: "Year",
		YTitle: "Passenger Count",
		Line: &chart.Line{
			X: x,
			Y: chart.Floats(pax),
		},
	}
}
