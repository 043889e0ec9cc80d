package app

import (
	"testing"

	"transitdash/domain/selection"
	"transitdash/domain/table"
	"transitdash/internal/store"
)

// testStore builds the in-memory datasets the view tests share. The
// vehicle rows mirror the postcode aggregation example the bar chart is
// specified against.
func testStore(t *testing.T) *store.Store {
	t.Helper()

	vehicle := mustTable(t, "vehicle",
		[]string{"POSTCODE", "CD_CL_FUEL_ENG", "TOTAL1", "NB_YEAR_MFC_VEH"},
		[][]string{
			{"3000", "P", "10", "2020"},
			{"3000", "D", "5", "2020"},
			{"3001", "P", "7", "2020"},
		})

	transport := mustTable(t, "transport",
		[]string{"Fin_year", "Stop_name", "Pax_annual"},
		[][]string{
			{"2021-22", "Central", "1500"},
			{"2023-24", "Central", "2100"},
			{"2022-23", "Central", "1800"},
		})

	bike := mustTable(t, "bike",
		[]string{"Latitude", "Longitude", "local_name", "facility_left", "facility_right"},
		[][]string{
			{"-37.81", "144.96", "Main St", "lane", "lane"},
			{"", "144.97", "No Coord St", "path", ""},
			{"-37.82", "", "Also No Coord", "", "path"},
			{"-37.83", "144.98", "River Trail", "path", "path"},
		})

	journey := mustTable(t, "journey",
		[]string{"jtwid", "jtwmode", "starthour"},
		[][]string{
			{"j1", "Private Vehicle", "8"},
			{"j2", "Private Vehicle", "8"},
			{"j3", "Train", "8"},
			{"j4", "Private Vehicle", "7"},
		})

	return store.FromTables(map[selection.DatasetKey]*table.Table{
		selection.DatasetVehicle:   vehicle,
		selection.DatasetTransport: transport,
		selection.DatasetBike:      bike,
		selection.DatasetJourney:   journey,
	})
}

func mustTable(t *testing.T, name string, headers []string, records [][]string) *table.Table {
	t.Helper()
	tbl, err := table.FromRecords(name, headers, records)
	if err != nil {
		t.Fatalf("building %s table: %v", name, err)
	}
	return tbl
}

func TestColumnOptions(t *testing.T) {
	views := NewViews(testStore(t))

	got := views.ColumnOptions(selection.DatasetVehicle)
	want := []string{"POSTCODE", "TOTAL1", "NB_YEAR_MFC_VEH"}
	if len(got) != len(want) {
		t.Fatalf("ColumnOptions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ColumnOptions[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestVehicleTypeOptions(t *testing.T) {
	views := NewViews(testStore(t))

	got := views.VehicleTypeOptions()
	want := []string{"All", "P", "D"}
	if len(got) != len(want) {
		t.Fatalf("VehicleTypeOptions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("VehicleTypeOptions[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestVehicleTypeOptions_MissingColumn(t *testing.T) {
	s := store.FromTables(map[selection.DatasetKey]*table.Table{
		selection.DatasetVehicle: table.Empty("vehicle"),
	})
	views := NewViews(s)

	got := views.VehicleTypeOptions()
	if len(got) != 1 || got[0] != selection.VehicleTypeAll {
		t.Errorf("options without fuel column = %v, want [All]", got)
	}
}

func TestTransportTimeSeries_PreservesFileOrder(t *testing.T) {
	views := NewViews(testStore(t))

	spec := views.TransportTimeSeries()
	if spec.NoData {
		t.Fatalf("unexpected no-data spec: %s", spec.Title)
	}
	if spec.Title != "Public Transport Usage Over Time" {
		t.Errorf("title = %q", spec.Title)
	}

	// Points appear exactly as ordered in the file, unsorted.
	wantX := []string{"2021-22", "2023-24", "2022-23"}
	for i, want := range wantX {
		if spec.Line.X[i] != want {
			t.Errorf("X[%d] = %s, want %s", i, spec.Line.X[i], want)
		}
	}
	if spec.Line.Y[1] != 2100 {
		t.Errorf("Y[1] = %v, want 2100", spec.Line.Y[1])
	}
}

func TestTransportTimeSeries_MissingColumn(t *testing.T) {
	s := store.FromTables(map[selection.DatasetKey]*table.Table{
		selection.DatasetTransport: mustTable(t, "transport",
			[]string{"Fin_year"}, [][]string{{"2023-24"}}),
	})
	views := NewViews(s)

	spec := views.TransportTimeSeries()
	if !spec.NoData {
		t.Fatal("expected no-data spec")
	}
	if spec.Title != "Public Transport Data Missing or Incorrect" {
		t.Errorf("title = %q", spec.Title)
	}
}

func TestBikeInfrastructureMap_DropsMissingCoordinates(t *testing.T) {
	views := NewViews(testStore(t))

	spec := views.BikeInfrastructureMap()
	if spec.NoData {
		t.Fatalf("unexpected no-data spec: %s", spec.Title)
	}
	// 4 rows, 2 with a missing coordinate.
	if len(spec.ScatterMap.Points) != 2 {
		t.Fatalf("points = %d, want 2", len(spec.ScatterMap.Points))
	}
	if spec.ScatterMap.Points[0].Name != "Main St" || spec.ScatterMap.Points[1].Name != "River Trail" {
		t.Errorf("unexpected points: %+v", spec.ScatterMap.Points)
	}
	if spec.ScatterMap.MapStyle != "open-street-map" {
		t.Errorf("map style = %s", spec.ScatterMap.MapStyle)
	}
	if spec.ScatterMap.Points[0].Hover["facility_left"] != "lane" {
		t.Errorf("hover data missing: %+v", spec.ScatterMap.Points[0].Hover)
	}
}

func TestBikeInfrastructureMap_MissingColumns(t *testing.T) {
	s := store.FromTables(map[selection.DatasetKey]*table.Table{
		selection.DatasetBike: table.Empty("bike"),
	})
	views := NewViews(s)

	spec := views.BikeInfrastructureMap()
	if !spec.NoData || spec.Title != "Bike Infrastructure Data Missing or Incorrect" {
		t.Errorf("unexpected spec: %+v", spec)
	}
}

func TestCommuteByStartHour(t *testing.T) {
	views := NewViews(testStore(t))

	spec := views.CommuteByStartHour()
	if spec.NoData {
		t.Fatalf("unexpected no-data spec: %s", spec.Title)
	}

	// Private Vehicle rows only, counted per hour, hours ascending.
	if len(spec.Bar.X) != 2 {
		t.Fatalf("bars = %v", spec.Bar.X)
	}
	if spec.Bar.X[0] != "7" || spec.Bar.Y[0] != 1 {
		t.Errorf("hour 7: got %s=%v", spec.Bar.X[0], spec.Bar.Y[0])
	}
	if spec.Bar.X[1] != "8" || spec.Bar.Y[1] != 2 {
		t.Errorf("hour 8: got %s=%v", spec.Bar.X[1], spec.Bar.Y[1])
	}
}

func TestCommuteByStartHour_DatasetAbsent(t *testing.T) {
	views := NewViews(store.FromTables(nil))

	spec := views.CommuteByStartHour()
	if !spec.NoData {
		t.Fatal("expected no-data spec when journey dataset absent")
	}
}

// One view's missing columns must never affect the other views.
func TestViewIsolation(t *testing.T) {
	s := store.FromTables(map[selection.DatasetKey]*table.Table{
		selection.DatasetVehicle: mustTable(t, "vehicle",
			[]string{"POSTCODE", "CD_CL_FUEL_ENG", "TOTAL1"},
			[][]string{{"3000", "P", "10"}}),
		selection.DatasetTransport: table.Empty("transport"),
		selection.DatasetBike:      table.Empty("bike"),
	})
	views := NewViews(s)

	if spec := views.TransportTimeSeries(); !spec.NoData {
		t.Error("transport view should degrade to no-data")
	}
	if spec := views.BikeInfrastructureMap(); !spec.NoData {
		t.Error("bike view should degrade to no-data")
	}
	if spec := views.VehicleRegistrations(selection.VehicleTypeAll); spec.NoData {
		t.Errorf("vehicle view should still render: %s", spec.Title)
	}
}
