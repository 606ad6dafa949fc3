package gsheet

import "strings"

// Dimension controls how a rectangular value array maps onto a range:
// whether the outer slice axis represents rows or columns.
type Dimension string

const (
	DimensionRows    Dimension = "ROWS"
	DimensionColumns Dimension = "COLUMNS"
)

// Normalize maps lowercase and empty inputs to the canonical API form.
// The empty value defaults to COLUMNS, matching the original wrapper's default.
func (d Dimension) Normalize() Dimension {
	switch strings.ToUpper(string(d)) {
	case string(DimensionRows):
		return DimensionRows
	default:
		return DimensionColumns
	}
}
