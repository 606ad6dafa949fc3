package gsheet

import (
	"context"
)

// SheetRef identifies one worksheet tab within a spreadsheet: the display
// name used as the local registry key and the numeric ID assigned by the
// remote service, needed for structural and formatting calls.
type SheetRef struct {
	Name string
	ID   int64
}

// RangeSpec pairs a range address with the values to write there and the
// orientation of the value array.
type RangeSpec struct {
	Range     string
	Values    [][]interface{}
	Dimension Dimension
}

// SpreadsheetAPI defines the interface for interacting with the Google
// Sheets service. This separates infrastructure concerns from the handle's
// logic and lets tests substitute an in-memory fake.
//
// Note on interface{} usage:
// The Google Sheets API (google.golang.org/api/sheets/v4) uses [][]interface{}
// for cell values. This is outside our control and required for API
// compatibility. Wrap values with NewCell() for type-safe access and keep
// interface{} constrained to this boundary layer.
type SpreadsheetAPI interface {
	// SheetProperties returns the name and numeric ID of every sheet in
	// the spreadsheet, in the order the service reports them.
	SheetProperties(ctx context.Context, spreadsheetID string) ([]SheetRef, error)

	// GetValues reads one range, oriented along the given dimension.
	// Returns [][]interface{} as required by the Sheets API.
	GetValues(ctx context.Context, spreadsheetID, rangeAddr string, dim Dimension) ([][]interface{}, error)

	// BatchGetValues reads several ranges in one call, preserving input
	// order in the returned sequence.
	BatchGetValues(ctx context.Context, spreadsheetID string, rangeAddrs []string, dim Dimension) ([][][]interface{}, error)

	// UpdateValues overwrites one range with the given values using
	// user-entered input interpretation.
	UpdateValues(ctx context.Context, spreadsheetID, rangeAddr string, values [][]interface{}, dim Dimension) error

	// BatchUpdateValues overwrites several ranges in one call, each with
	// its own orientation, using user-entered input interpretation.
	BatchUpdateValues(ctx context.Context, spreadsheetID string, specs []RangeSpec) error

	// ClearValues clears all values in a range.
	ClearValues(ctx context.Context, spreadsheetID, rangeAddr string) error

	// FormatCells applies cell formatting to a grid range of the sheet
	// with the given numeric ID.
	FormatCells(ctx context.Context, spreadsheetID string, sheetID int64, req FormatRequest) error
}
