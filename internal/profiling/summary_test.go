package profiling

import (
	"testing"

	"transitdash/domain/table"
)

func TestSummarize(t *testing.T) {
	tbl, err := table.FromRecords("transport",
		[]string{"Stop_name", "Pax_annual"},
		[][]string{
			{"Central", "100"},
			{"Docklands", "300"},
			{"Central", ""},
		})
	if err != nil {
		t.Fatalf("FromRecords failed: %v", err)
	}

	summary := Summarize(tbl)
	if summary.RowCount != 3 || summary.ColumnCount != 2 || summary.NumericCols != 1 {
		t.Errorf("unexpected counts: %+v", summary)
	}
	if len(summary.Columns) != 2 {
		t.Fatalf("columns = %d, want 2", len(summary.Columns))
	}

	name := summary.Columns[0]
	if name.Type != "text" || name.UniqueCount != 2 {
		t.Errorf("Stop_name summary: %+v", name)
	}

	pax := summary.Columns[1]
	if pax.Type != "integer" {
		t.Errorf("Pax_annual type = %s", pax.Type)
	}
	// Statistics run on present values only: mean of {100, 300}.
	if pax.Mean != 200 {
		t.Errorf("mean = %v, want 200", pax.Mean)
	}
	if pax.Min != 100 || pax.Max != 300 {
		t.Errorf("min/max = %v/%v", pax.Min, pax.Max)
	}
	if pax.MissingRate <= 0.33 || pax.MissingRate >= 0.34 {
		t.Errorf("missing rate = %v, want 1/3", pax.MissingRate)
	}
}

func TestSummarize_EmptyTable(t *testing.T) {
	summary := Summarize(table.Empty("vehicle"))
	if summary.RowCount != 0 || len(summary.Columns) != 0 {
		t.Errorf("unexpected summary for empty table: %+v", summary)
	}
}
