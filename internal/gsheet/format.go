package gsheet

// RGB is an 8-bit-per-channel color. The Sheets API wants channels as floats
// in [0,1]; conversion happens at the API boundary.
type RGB struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// FormatRequest describes cell formatting to apply over a half-open grid
// region of a sheet. Row and column indexes are zero-based, end-exclusive,
// as the Sheets API defines grid ranges.
type FormatRequest struct {
	StartRowIndex    int64
	EndRowIndex      int64
	StartColumnIndex int64
	EndColumnIndex   int64

	Background          *RGB
	TextColor           *RGB
	Bold                bool
	HorizontalAlignment string // CENTER when empty
}

func (r FormatRequest) alignment() string {
	if r.HorizontalAlignment == "" {
		return "CENTER"
	}
	return r.HorizontalAlignment
}
