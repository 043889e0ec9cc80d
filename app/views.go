// Package app contains the derived-view functions: pure functions from
// the dataset store plus the current selections to chart specifications.
// Every view recomputes from scratch on each call; nothing is cached
// between selection changes, and a missing column in one view never
// affects another.
package app

import (
	"transitdash/domain/selection"
	"transitdash/internal/store"
)

// Views evaluates chart specifications against a read-only dataset store.
type Views struct {
	store *store.Store
}

// NewViews creates the view evaluator for a loaded store.
func NewViews(s *store.Store) *Views {
	return &Views{store: s}
}

// ColumnOptions lists the numeric-projection columns of a dataset, the
// option feed of the correlation column picker.
func (v *Views) ColumnOptions(key selection.DatasetKey) []string {
	return v.store.Numeric(key).ColumnNames()
}

// VehicleTypeOptions lists the distinct fuel/vehicle-type codes in
// first-appearance order, preceded by the "All" sentinel.
func (v *Views) VehicleTypeOptions() []string {
	options := []string{selection.VehicleTypeAll}
	col, ok := v.store.Table(selection.DatasetVehicle).Column(vehicleFuelColumn)
	if !ok {
		return options
	}
	seen := make(map[string]struct{})
	for i := 0; i < col.Len(); i++ {
		value := col.StringAt(i)
		if value == "" {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		options = append(options, value)
	}
	return options
}
