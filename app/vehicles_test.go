package app

import (
	"testing"

	"transitdash/domain/chart"
	"transitdash/domain/selection"
	"transitdash/domain/table"
	"transitdash/internal/store"
)

func barTotals(spec chart.Spec) map[string]float64 {
	totals := make(map[string]float64)
	for i, postcode := range spec.Bar.X {
		totals[postcode] = float64(spec.Bar.Y[i])
	}
	return totals
}

func TestVehicleRegistrations_AllAggregatesByPostcode(t *testing.T) {
	views := NewViews(testStore(t))

	spec := views.VehicleRegistrations(selection.VehicleTypeAll)
	if spec.NoData {
		t.Fatalf("unexpected no-data spec: %s", spec.Title)
	}
	if spec.Title != "Vehicle Registrations for All" {
		t.Errorf("title = %q", spec.Title)
	}

	totals := barTotals(spec)
	if totals["3000"] != 15 || totals["3001"] != 7 {
		t.Errorf("totals = %v, want 3000:15 3001:7", totals)
	}
}

func TestVehicleRegistrations_SingleTypeFilter(t *testing.T) {
	views := NewViews(testStore(t))

	totals := barTotals(views.VehicleRegistrations("P"))
	if totals["3000"] != 10 || totals["3001"] != 7 {
		t.Errorf("P totals = %v, want 3000:10 3001:7", totals)
	}

	totals = barTotals(views.VehicleRegistrations("D"))
	if totals["3000"] != 5 {
		t.Errorf("D totals = %v, want 3000:5", totals)
	}
	if _, ok := totals["3001"]; ok {
		t.Error("postcode 3001 has no diesel rows and should have no bar")
	}
}

// Aggregation is lossless: per-postcode sums across every single-type
// filter add up to the "All" totals.
func TestVehicleRegistrations_AllEqualsSumOfTypes(t *testing.T) {
	views := NewViews(testStore(t))

	all := barTotals(views.VehicleRegistrations(selection.VehicleTypeAll))

	combined := make(map[string]float64)
	for _, vt := range views.VehicleTypeOptions() {
		if vt == selection.VehicleTypeAll {
			continue
		}
		for postcode, total := range barTotals(views.VehicleRegistrations(vt)) {
			combined[postcode] += total
		}
	}

	if len(combined) != len(all) {
		t.Fatalf("postcode sets differ: %v vs %v", combined, all)
	}
	for postcode, total := range all {
		if combined[postcode] != total {
			t.Errorf("postcode %s: sum of types %v != All %v", postcode, combined[postcode], total)
		}
	}
}

func TestVehicleRegistrations_CaseSensitiveFilter(t *testing.T) {
	views := NewViews(testStore(t))

	spec := views.VehicleRegistrations("p")
	if !spec.NoData {
		t.Error("lowercase filter must not match uppercase codes")
	}
}

func TestVehicleRegistrations_MissingColumns(t *testing.T) {
	s := store.FromTables(map[selection.DatasetKey]*table.Table{
		selection.DatasetVehicle: table.Empty("vehicle"),
	})
	views := NewViews(s)

	spec := views.VehicleRegistrations(selection.VehicleTypeAll)
	if !spec.NoData || spec.Title != "Vehicle Registration Data Missing or Incorrect" {
		t.Errorf("unexpected spec: %+v", spec)
	}
}

func TestVehicleRegistrations_EmptyFilteredSet(t *testing.T) {
	views := NewViews(testStore(t))

	spec := views.VehicleRegistrations("LPG")
	if !spec.NoData {
		t.Error("filter matching no rows should yield a no-data spec")
	}
}
