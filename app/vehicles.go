package app

import (
	"fmt"

	"transitdash/domain/chart"
	"transitdash/domain/selection"
)

const (
	vehiclePostcodeColumn = "POSTCODE"
	vehicleFuelColumn     = "CD_CL_FUEL_ENG"
	vehicleTotalColumn    = "TOTAL1"

	vehicleBarColor       = "#636EFA"
	vehiclesNoDataTitle   = "Vehicle Registration Data Missing or Incorrect"
	vehiclesTitleTemplate = "Vehicle Registrations for %s"
)

// VehicleRegistrations aggregates total vehicle counts by postcode, one
// bar per distinct postcode in first-appearance order. vehicleType
// filters on the fuel/engine-class column with exact string equality;
// the "All" sentinel disables the filter. Missing columns or an empty
// filtered set produce a no-data spec.
func (v *Views) VehicleRegistrations(vehicleType string) chart.Spec {
	t := v.store.Table(selection.DatasetVehicle)

	postcodeCol, ok := t.Column(vehiclePostcodeColumn)
	if !ok {
		return chart.NoData(chart.KindBar, vehiclesNoDataTitle)
	}
	totals, ok := t.NumericColumn(vehicleTotalColumn)
	if !ok {
		return chart.NoData(chart.KindBar, vehiclesNoDataTitle)
	}
	fuelCol, hasFuel := t.Column(vehicleFuelColumn)
	if vehicleType != selection.VehicleTypeAll && !hasFuel {
		return chart.NoData(chart.KindBar, vehiclesNoDataTitle)
	}

	var order []string
	sums := make(map[string]float64)
	for i := 0; i < t.RowCount(); i++ {
		if vehicleType != selection.VehicleTypeAll && fuelCol.StringAt(i) != vehicleType {
			continue
		}
		postcode := postcodeCol.StringAt(i)
		if _, seen := sums[postcode]; !seen {
			order = append(order, postcode)
		}
		sums[postcode] += totals[i]
	}

	if len(order) == 0 {
		return chart.NoData(chart.KindBar, vehiclesNoDataTitle)
	}

	y := make([]chart.Float, len(order))
	for i, postcode := range order {
		y[i] = chart.Float(sums[postcode])
	}

	return chart.Spec{
		Kind:   chart.KindBar,
		Title:  fmt.Sprintf(vehiclesTitleTemplate, vehicleType),
		XTitle: "Postcode",
		YTitle: "Number of Vehicles",
		Bar: &chart.Bar{
			X:     order,
			Y:     y,
			Color: vehicleBarColor,
		},
	}
}
