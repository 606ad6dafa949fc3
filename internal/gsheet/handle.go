package gsheet

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Bounding box used by ClearSheet. Kept at the original wrapper's fixed
// 100x100 ceiling for compatibility; sheets larger than this are only
// partially cleared. Use ClearSheetAll when the whole sheet must go.
const (
	clearBoxRows = 100
	clearBoxCols = 100
)

// SpreadsheetHandle mediates all reads and writes against one remote
// spreadsheet and maintains a local registry mapping sheet names to SheetRefs.
//
// The registry is populated eagerly at construction and is a cache, not
// authoritative: it goes stale if the remote spreadsheet is modified
// out-of-band and is only updated by RefreshRegistry. The handle is not safe
// for concurrent use; callers invoking it from multiple goroutines must
// supply their own serialization.
type SpreadsheetHandle struct {
	spreadsheetID string
	api           SpreadsheetAPI
	sheets        map[string]SheetRef
}

// NewSpreadsheetHandle binds a handle to one remote spreadsheet and fetches
// its sheet registry. Fails if the spreadsheet ID is invalid or the
// credentials behind the API are rejected.
func NewSpreadsheetHandle(ctx context.Context, api SpreadsheetAPI, spreadsheetID string) (*SpreadsheetHandle, error) {
	h := &SpreadsheetHandle{
		spreadsheetID: spreadsheetID,
		api:           api,
		sheets:        make(map[string]SheetRef),
	}

	if err := h.RefreshRegistry(ctx); err != nil {
		return nil, fmt.Errorf("failed to populate sheet registry: %w", err)
	}

	return h, nil
}

// SpreadsheetID returns the remote spreadsheet identifier this handle is
// bound to.
func (h *SpreadsheetHandle) SpreadsheetID() string {
	return h.spreadsheetID
}

// RefreshRegistry fetches spreadsheet metadata and replaces the sheet
// registry with the current remote state. Replacement (rather than merging
// into the old map) means entries for remotely deleted tabs do not linger;
// refs added locally via AddSheetRef are dropped as well and must be re-added
// if still wanted.
func (h *SpreadsheetHandle) RefreshRegistry(ctx context.Context) error {
	refs, err := h.api.SheetProperties(ctx, h.spreadsheetID)
	if err != nil {
		return err
	}

	sheets := make(map[string]SheetRef, len(refs))
	for _, ref := range refs {
		sheets[ref.Name] = ref
	}
	h.sheets = sheets

	log.Debug().
		Str("spreadsheet_id", h.spreadsheetID).
		Int("sheet_count", len(sheets)).
		Msg("Refreshed sheet registry")

	return nil
}

// AddSheetRef records a SheetRef in the local registry under its name,
// overwriting any existing entry. It does not create a worksheet tab
// remotely.
func (h *SpreadsheetHandle) AddSheetRef(ref SheetRef) {
	h.sheets[ref.Name] = ref
}

// RemoveSheetRef removes a SheetRef from the local registry. It does not
// delete the worksheet tab remotely. Returns an error wrapping
// ErrSheetNotFound if the name is absent; the registry is unchanged in that
// case.
func (h *SpreadsheetHandle) RemoveSheetRef(name string) error {
	if _, ok := h.sheets[name]; !ok {
		return fmt.Errorf("remove sheet ref %q: %w", name, ErrSheetNotFound)
	}
	delete(h.sheets, name)
	return nil
}

// ListSheetRefs returns a snapshot copy of the current registry. Mutating the
// returned map does not affect the handle.
func (h *SpreadsheetHandle) ListSheetRefs() map[string]SheetRef {
	snapshot := make(map[string]SheetRef, len(h.sheets))
	for name, ref := range h.sheets {
		snapshot[name] = ref
	}
	return snapshot
}

// ClearSheet clears a fixed 100x100 cell box anchored at the sheet's origin,
// addressed by sheet name. An unknown sheet name is rejected by the remote
// service, not locally.
func (h *SpreadsheetHandle) ClearSheet(ctx context.Context, sheetName string) error {
	rangeAddr := fmt.Sprintf("%s!R1C1:R%dC%d", sheetName, clearBoxRows, clearBoxCols)
	return h.api.ClearValues(ctx, h.spreadsheetID, rangeAddr)
}

// ClearSheetAll clears every value in the sheet by addressing the bare sheet
// name, which the remote service interprets as the sheet's full extent.
func (h *SpreadsheetHandle) ClearSheetAll(ctx context.Context, sheetName string) error {
	return h.api.ClearValues(ctx, h.spreadsheetID, sheetName)
}

// ReadRange reads one range, oriented along dim, and returns a rectangular
// array of values. A range with no values yields an empty, non-nil array.
// Range address syntax is not validated locally; malformed addresses surface
// as a RemoteServiceError.
func (h *SpreadsheetHandle) ReadRange(ctx context.Context, rangeAddr string, dim Dimension) ([][]interface{}, error) {
	values, err := h.api.GetValues(ctx, h.spreadsheetID, rangeAddr, dim)
	if err != nil {
		return nil, err
	}
	if values == nil {
		values = [][]interface{}{}
	}
	return values, nil
}

// ReadRangesBatch reads several ranges in one remote call. The returned
// sequence preserves input order; a range with no values yields an empty,
// non-nil array at its position.
func (h *SpreadsheetHandle) ReadRangesBatch(ctx context.Context, rangeAddrs []string, dim Dimension) ([][][]interface{}, error) {
	valuesByRange, err := h.api.BatchGetValues(ctx, h.spreadsheetID, rangeAddrs, dim)
	if err != nil {
		return nil, err
	}
	for i, values := range valuesByRange {
		if values == nil {
			valuesByRange[i] = [][]interface{}{}
		}
	}
	return valuesByRange, nil
}

// WriteRange overwrites one range with the given rectangular array, oriented
// along dim, using user-entered input interpretation: formulas beginning with
// "=" are evaluated and numeric-looking strings become numbers.
func (h *SpreadsheetHandle) WriteRange(ctx context.Context, rangeAddr string, values [][]interface{}, dim Dimension) error {
	return h.api.UpdateValues(ctx, h.spreadsheetID, rangeAddr, values, dim)
}

// WriteRangesBatch overwrites several ranges in one remote call, each spec
// with its own orientation, using user-entered input interpretation. Whether
// a failed batch was applied partially is determined by the remote service.
func (h *SpreadsheetHandle) WriteRangesBatch(ctx context.Context, specs []RangeSpec) error {
	return h.api.BatchUpdateValues(ctx, h.spreadsheetID, specs)
}

// FormatRange applies cell formatting over a grid region of the named sheet.
// The sheet's numeric ID is resolved from the local registry, so the name
// must be present there; returns an error wrapping ErrSheetNotFound
// otherwise.
func (h *SpreadsheetHandle) FormatRange(ctx context.Context, sheetName string, req FormatRequest) error {
	ref, ok := h.sheets[sheetName]
	if !ok {
		return fmt.Errorf("format range on sheet %q: %w", sheetName, ErrSheetNotFound)
	}
	return h.api.FormatCells(ctx, h.spreadsheetID, ref.ID, req)
}
