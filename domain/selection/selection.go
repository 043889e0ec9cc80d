// Package selection models the user-facing choices the dashboard views
// depend on. Each view function takes exactly the fields it reads, so
// the dependency graph is visible in the signatures rather than hidden
// in widget wiring.
package selection

import "fmt"

// DatasetKey identifies one of the loaded datasets.
type DatasetKey string

const (
	DatasetVehicle   DatasetKey = "vehicle"
	DatasetTransport DatasetKey = "transport"
	DatasetBike      DatasetKey = "bike"
	DatasetJourney   DatasetKey = "journey"
)

// HeatmapDatasets are the keys selectable for the correlation heatmap.
// The journey-to-work table feeds its own view and is not part of the
// heatmap dataset selector.
var HeatmapDatasets = []DatasetKey{DatasetVehicle, DatasetTransport, DatasetBike}

// ParseDatasetKey validates a dataset selector value.
func ParseDatasetKey(s string) (DatasetKey, error) {
	switch DatasetKey(s) {
	case DatasetVehicle, DatasetTransport, DatasetBike, DatasetJourney:
		return DatasetKey(s), nil
	case "":
		return DatasetVehicle, nil
	}
	return "", fmt.Errorf("unknown dataset %q", s)
}

// ColorScale names a heatmap color scale.
type ColorScale string

const (
	ScaleViridis ColorScale = "Viridis"
	ScaleCividis ColorScale = "Cividis"
	ScaleBluered ColorScale = "Bluered"
	ScaleRdBu    ColorScale = "RdBu"
)

// ColorScales lists the selectable scales in display order.
var ColorScales = []ColorScale{ScaleViridis, ScaleCividis, ScaleBluered, ScaleRdBu}

// ParseColorScale validates a color scale value, defaulting to Viridis.
func ParseColorScale(s string) (ColorScale, error) {
	switch ColorScale(s) {
	case ScaleViridis, ScaleCividis, ScaleBluered, ScaleRdBu:
		return ColorScale(s), nil
	case "":
		return ScaleViridis, nil
	}
	return "", fmt.Errorf("unknown color scale %q", s)
}

// VehicleTypeAll is the sentinel meaning "no fuel/vehicle type filter".
const VehicleTypeAll = "All"

// State is the full set of current selections. Initialized to defaults
// at startup, mutated only by user interaction, never persisted.
type State struct {
	Dataset     DatasetKey
	Columns     []string // empty means all numeric columns
	Scale       ColorScale
	VehicleType string
}

// Default returns the startup selection state.
func Default() State {
	return State{
		Dataset:     DatasetVehicle,
		Scale:       ScaleViridis,
		VehicleType: VehicleTypeAll,
	}
}
