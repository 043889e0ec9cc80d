package table

// FillRules controls per-dataset missing-value imputation. The blanket
// zero-fill of text columns some data exports rely on silently coerces
// categories to the number 0; imputation here is strictly per column type.
type FillRules struct {
	// UnknownText lists text columns whose missing cells become "Unknown".
	UnknownText []string
	// KeepMissing lists columns exempt from any filling. Coordinate
	// columns live here: a geographic point cannot be imputed, so the
	// bike map drops those rows instead.
	KeepMissing []string
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}

// Normalize returns a copy of the table with missing values filled:
// numeric columns get 0, text columns named in rules.UnknownText get
// "Unknown", columns in rules.KeepMissing and unlisted text columns are
// left untouched. The input table is never modified.
func Normalize(t *Table, rules FillRules) *Table {
	cols := make([]*Column, 0, len(t.cols))
	for _, col := range t.cols {
		cols = append(cols, normalizeColumn(col, rules))
	}
	out := &Table{name: t.name, index: make(map[string]int, len(cols)), rows: t.rows}
	for i, col := range cols {
		out.index[col.Name] = i
	}
	out.cols = cols
	return out
}

func normalizeColumn(col *Column, rules FillRules) *Column {
	if contains(rules.KeepMissing, col.Name) {
		return col
	}
	switch {
	case col.Kind.IsNumeric():
		return fillNumeric(col)
	case contains(rules.UnknownText, col.Name):
		return fillText(col, "Unknown")
	default:
		return col
	}
}

func fillNumeric(col *Column) *Column {
	if col.MissingCount() == 0 {
		return col
	}
	floats := make([]float64, len(col.Floats))
	copy(floats, col.Floats)
	missing := make([]bool, len(col.Missing))
	for i, m := range col.Missing {
		if m {
			floats[i] = 0
		}
	}
	return &Column{Name: col.Name, Kind: col.Kind, Floats: floats, Missing: missing}
}

func fillText(col *Column, value string) *Column {
	if col.MissingCount() == 0 {
		return col
	}
	texts := make([]string, len(col.Texts))
	copy(texts, col.Texts)
	missing := make([]bool, len(col.Missing))
	for i, m := range col.Missing {
		if m {
			texts[i] = value
		}
	}
	return &Column{Name: col.Name, Kind: col.Kind, Texts: texts, Missing: missing}
}
