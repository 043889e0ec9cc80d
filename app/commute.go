package app

import (
	"sort"

	"transitdash/domain/chart"
	"transitdash/domain/selection"
)

const (
	journeyModeColumn      = "jtwmode"
	journeyStartHourColumn = "starthour"

	journeyPrivateVehicle = "Private Vehicle"
	commuteNoDataTitle    = "Journey to Work Data Missing or Incorrect"
)

// CommuteByStartHour counts private-vehicle commutes per trip start
// hour from the travel-survey table. Hours are plotted in ascending
// order. The journey dataset is optional; when it was not configured or
// failed to load, the view degrades to a no-data spec like the others.
func (v *Views) CommuteByStartHour() chart.Spec {
	t := v.store.Table(selection.DatasetJourney)

	modeCol, ok := t.Column(journeyModeColumn)
	if !ok {
		return chart.NoData(chart.KindBar, commuteNoDataTitle)
	}
	hourCol, ok := t.Column(journeyStartHourColumn)
	if !ok || !hourCol.Kind.IsNumeric() {
		return chart.NoData(chart.KindBar, commuteNoDataTitle)
	}

	counts := make(map[float64]int)
	for i := 0; i < t.RowCount(); i++ {
		if modeCol.StringAt(i) != journeyPrivateVehicle {
			continue
		}
		if hourCol.Missing[i] {
			continue
		}
		counts[hourCol.Floats[i]]++
	}

	if len(counts) == 0 {
		return chart.NoData(chart.KindBar, commuteNoDataTitle)
	}

	hours := make([]float64, 0, len(counts))
	for hour := range counts {
		hours = append(hours, hour)
	}
	sort.Float64s(hours)

	x := make([]string, len(hours))
	y := make([]chart.Float, len(hours))
	for i, hour := range hours {
		x[i] = hourCol.Kind.FormatValue(hour)
		y[i] = chart.Float(counts[hour])
	}

	return chart.Spec{
		Kind:   chart.KindBar,
		Title:  "Private Vehicle Usage During Commutes by Hour",
		XTitle: "Start Hour",
		YTitle: "Number of Private Vehicle Users",
		Bar: &chart.Bar{
			X: x,
			Y: y,
		},
	}
}
