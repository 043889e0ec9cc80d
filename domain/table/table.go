// Package table provides the immutable in-memory tables the dashboard
// views read from. A table is built once from raw string records, typed
// by inference, normalized, and never mutated afterward.
package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a column's inferred value type.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return "text"
	}
}

// IsNumeric reports whether the kind participates in the numeric projection.
func (k Kind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

// FormatValue renders a numeric value as this kind's display label:
// integers without a fraction, floats in shortest form.
func (k Kind) FormatValue(f float64) string {
	if k == KindInt {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Column holds one typed column. Numeric columns keep their values in
// Floats (integers widened to float64); text columns in Texts. Missing
// marks cells that were absent in the source file.
type Column struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Texts   []string
	Missing []bool
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	return len(c.Missing)
}

// MissingCount returns how many cells are still marked missing.
func (c *Column) MissingCount() int {
	n := 0
	for _, m := range c.Missing {
		if m {
			n++
		}
	}
	return n
}

// StringAt formats the cell at row i for display (axis labels, hover text).
func (c *Column) StringAt(i int) string {
	if c.Missing[i] {
		return ""
	}
	switch c.Kind {
	case KindInt:
		return strconv.FormatInt(int64(c.Floats[i]), 10)
	case KindFloat:
		return strconv.FormatFloat(c.Floats[i], 'g', -1, 64)
	default:
		return c.Texts[i]
	}
}

// Table is a named, immutable-after-load collection of equal-length columns.
type Table struct {
	name  string
	cols  []*Column
	index map[string]int
	rows  int
}

// New assembles a table from columns. All columns must have the same length.
func New(name string, cols []*Column) (*Table, error) {
	t := &Table{name: name, index: make(map[string]int, len(cols))}
	for i, col := range cols {
		if i == 0 {
			t.rows = col.Len()
		} else if col.Len() != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name, col.Len(), t.rows)
		}
		if _, dup := t.index[col.Name]; dup {
			return nil, fmt.Errorf("duplicate column %q", col.Name)
		}
		t.index[col.Name] = i
		t.cols = append(t.cols, col)
	}
	return t, nil
}

// Empty returns a table with no columns and no rows, used as the
// substitute when a source file cannot be ingested.
func Empty(name string) *Table {
	return &Table{name: name, index: map[string]int{}}
}

func (t *Table) Name() string     { return t.name }
func (t *Table) RowCount() int    { return t.rows }
func (t *Table) ColumnCount() int { return len(t.cols) }

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, col := range t.cols {
		names[i] = col.Name
	}
	return names
}

// Column looks up a column by name.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// HasColumns reports whether every named column exists.
func (t *Table) HasColumns(names ...string) bool {
	for _, name := range names {
		if _, ok := t.index[name]; !ok {
			return false
		}
	}
	return true
}

// NumericColumn returns the float values of a numeric column.
func (t *Table) NumericColumn(name string) ([]float64, bool) {
	col, ok := t.Column(name)
	if !ok || !col.Kind.IsNumeric() {
		return nil, false
	}
	return col.Floats, true
}

// NumericProjection returns a table containing only the integer and
// float columns. Column slices are shared with the parent; both tables
// are read-only so no copy is needed. Computed once at load time.
func (t *Table) NumericProjection() *Table {
	var numeric []*Column
	for _, col := range t.cols {
		if col.Kind.IsNumeric() {
			numeric = append(numeric, col)
		}
	}
	proj := &Table{name: t.name, index: make(map[string]int, len(numeric)), rows: t.rows}
	for i, col := range numeric {
		proj.index[col.Name] = i
	}
	proj.cols = numeric
	if len(numeric) == 0 {
		proj.rows = 0
	}
	return proj
}

// MissingRate returns the fraction of cells marked missing across all columns.
func (t *Table) MissingRate() float64 {
	total := t.rows * len(t.cols)
	if total == 0 {
		return 0
	}
	missing := 0
	for _, col := range t.cols {
		missing += col.MissingCount()
	}
	return float64(missing) / float64(total)
}

// FromRecords builds a typed table from a header row plus raw string
// records, the shape both the CSV and Excel readers produce. Cell type
// inference runs per column: a column where every present value parses
// as an integer becomes KindInt, otherwise as a float KindFloat,
// otherwise KindText. Blank cells are marked missing.
func FromRecords(name string, headers []string, records [][]string) (*Table, error) {
	if len(headers) == 0 {
		return Empty(name), nil
	}
	cols := make([]*Column, len(headers))
	for j, header := range headers {
		raw := make([]string, len(records))
		missing := make([]bool, len(records))
		for i, record := range records {
			var cell string
			if j < len(record) {
				cell = strings.TrimSpace(record[j])
			}
			if cell == "" {
				missing[i] = true
			}
			raw[i] = cell
		}
		cols[j] = buildColumn(strings.TrimSpace(header), raw, missing)
	}
	return New(name, cols)
}

// buildColumn infers the column kind from the present values and stores
// them in typed form. Missing cells get the zero value of the slice but
// stay flagged until normalization decides how to fill them.
func buildColumn(name string, raw []string, missing []bool) *Column {
	kind := inferKind(raw, missing)
	col := &Column{Name: name, Kind: kind, Missing: missing}
	if kind.IsNumeric() {
		col.Floats = make([]float64, len(raw))
		for i, cell := range raw {
			if missing[i] {
				continue
			}
			f, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				// Inference said numeric but this cell disagrees; treat
				// it as missing rather than poisoning the column.
				missing[i] = true
				continue
			}
			col.Floats[i] = f
		}
		return col
	}
	col.Texts = make([]string, len(raw))
	copy(col.Texts, raw)
	return col
}

// inferKind classifies a column from its present values.
func inferKind(raw []string, missing []bool) Kind {
	present := 0
	allInt := true
	allFloat := true
	for i, cell := range raw {
		if missing[i] {
			continue
		}
		present++
		if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
			allInt = false
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			allFloat = false
		}
		if !allFloat {
			break
		}
	}
	if present == 0 {
		return KindText
	}
	if allInt {
		return KindInt
	}
	if allFloat {
		return KindFloat
	}
	return KindText
}
