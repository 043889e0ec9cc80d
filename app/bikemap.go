package app

import (
	"transitdash/domain/chart"
	"transitdash/domain/selection"
)

const (
	bikeLatColumn  = "Latitude"
	bikeLonColumn  = "Longitude"
	bikeNameColumn = "local_name"

	bikeFacilityLeftColumn  = "facility_left"
	bikeFacilityRightColumn = "facility_right"

	bikeNoDataTitle = "Bike Infrastructure Data Missing or Incorrect"
)

// BikeInfrastructureMap plots every bike-network facility with usable
// coordinates. Coordinates are exempt from imputation, so rows still
// missing latitude or longitude here genuinely lacked them in the
// source and are dropped. The dataset selector does not filter this view.
func (v *Views) BikeInfrastructureMap() chart.Spec {
	t := v.store.Table(selection.DatasetBike)

	latCol, ok := t.Column(bikeLatColumn)
	if !ok || !latCol.Kind.IsNumeric() {
		return chart.NoData(chart.KindScatterMap, bikeNoDataTitle)
	}
	lonCol, ok := t.Column(bikeLonColumn)
	if !ok || !lonCol.Kind.IsNumeric() {
		return chart.NoData(chart.KindScatterMap, bikeNoDataTitle)
	}
	nameCol, hasName := t.Column(bikeNameColumn)
	leftCol, hasLeft := t.Column(bikeFacilityLeftColumn)
	rightCol, hasRight := t.Column(bikeFacilityRightColumn)

	var points []chart.MapPoint
	for i := 0; i < t.RowCount(); i++ {
		if latCol.Missing[i] || lonCol.Missing[i] {
			continue
		}
		point := chart.MapPoint{
			Lat: latCol.Floats[i],
			Lon: lonCol.Floats[i],
		}
		if hasName {
			point.Name = nameCol.StringAt(i)
		}
		if hasLeft || hasRight {
			point.Hover = make(map[string]string, 2)
			if hasLeft {
				point.Hover[bikeFacilityLeftColumn] = leftCol.StringAt(i)
			}
			if hasRight {
				point.Hover[bikeFacilityRightColumn] = rightCol.StringAt(i)
			}
		}
		points = append(points, point)
	}

	return chart.Spec{
		Kind:  chart.KindScatterMap,
		Title: "Bike Infrastructure Distribution",
		ScatterMap: &chart.ScatterMap{
			Points:   points,
			Zoom:     10,
			Height:   500,
			MapStyle: "open-street-map",
		},
	}
}
