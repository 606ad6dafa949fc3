package gsheet

import (
	"context"
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRegistryProperties uses property-based testing for the local sheet
// registry operations, which never touch the remote service.
func TestRegistryProperties(t *testing.T) {
	newHandle := func() *SpreadsheetHandle {
		handle, err := NewSpreadsheetHandle(context.Background(), &mockAPI{}, "s")
		if err != nil {
			t.Fatalf("Failed to create handle: %v", err)
		}
		return handle
	}

	properties := gopter.NewProperties(nil)

	// Property: after AddSheetRef, ListSheetRefs contains exactly that ref
	properties.Property("added ref is listed under its name", prop.ForAll(
		func(name string, id int64) bool {
			handle := newHandle()
			handle.AddSheetRef(SheetRef{Name: name, ID: id})

			refs := handle.ListSheetRefs()
			return len(refs) == 1 && refs[name] == (SheetRef{Name: name, ID: id})
		},
		gen.Identifier(),
		gen.Int64(),
	))

	// Property: RemoveSheetRef undoes AddSheetRef
	properties.Property("remove is the inverse of add", prop.ForAll(
		func(name string, id int64) bool {
			handle := newHandle()
			handle.AddSheetRef(SheetRef{Name: name, ID: id})

			if err := handle.RemoveSheetRef(name); err != nil {
				return false
			}
			return len(handle.ListSheetRefs()) == 0
		},
		gen.Identifier(),
		gen.Int64(),
	))

	// Property: removing from an empty registry always fails with
	// ErrSheetNotFound and leaves the registry empty
	properties.Property("remove on empty registry fails", prop.ForAll(
		func(name string) bool {
			handle := newHandle()
			err := handle.RemoveSheetRef(name)
			return errors.Is(err, ErrSheetNotFound) && len(handle.ListSheetRefs()) == 0
		},
		gen.Identifier(),
	))

	// Property: adding the same name twice keeps the registry at one entry,
	// holding the last ref
	properties.Property("same name overwrites", prop.ForAll(
		func(name string, id1, id2 int64) bool {
			handle := newHandle()
			handle.AddSheetRef(SheetRef{Name: name, ID: id1})
			handle.AddSheetRef(SheetRef{Name: name, ID: id2})

			refs := handle.ListSheetRefs()
			return len(refs) == 1 && refs[name].ID == id2
		},
		gen.Identifier(),
		gen.Int64(),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestDimensionProperties checks the orientation flag normalization
func TestDimensionProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: Normalize is idempotent
	properties.Property("normalize idempotent", prop.ForAll(
		func(raw string) bool {
			d := Dimension(raw)
			return d.Normalize() == d.Normalize().Normalize()
		},
		gen.AlphaString(),
	))

	// Property: Normalize only ever yields the two canonical values
	properties.Property("normalize yields canonical values", prop.ForAll(
		func(raw string) bool {
			d := Dimension(raw).Normalize()
			return d == DimensionRows || d == DimensionColumns
		},
		gen.AlphaString(),
	))

	// Property: case-insensitive rows spellings normalize to ROWS
	properties.Property("rows spellings normalize to ROWS", prop.ForAll(
		func(spelling string) bool {
			return Dimension(spelling).Normalize() == DimensionRows
		},
		gen.OneConstOf("rows", "ROWS", "Rows", "rOwS"),
	))

	properties.TestingRun(t)
}

// TestDimensionDefault verifies the empty dimension defaults to COLUMNS,
// matching the wrapper's documented default orientation.
func TestDimensionDefault(t *testing.T) {
	if Dimension("").Normalize() != DimensionColumns {
		t.Error("Expected empty dimension to normalize to COLUMNS")
	}
	if Dimension("columns").Normalize() != DimensionColumns {
		t.Error("Expected 'columns' to normalize to COLUMNS")
	}
}
