package gsheet

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client implements the SpreadsheetAPI interface using the Google Sheets API.
//
// Note: This client uses [][]interface{} as required by the Google Sheets API.
// This is the only layer where interface{} should appear. All other code should
// use the Cell type wrapper for type-safe access to cell values.
type Client struct {
	service *sheets.Service
}

// NewClient creates a Sheets client from a service-account key file. When
// scopes are given, the key is loaded as a JWT config restricted to exactly
// those scopes; otherwise the library's default credential handling applies.
func NewClient(ctx context.Context, credentialsFile string, scopes ...Scope) (*Client, error) {
	if len(scopes) == 0 {
		service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
		if err != nil {
			return nil, fmt.Errorf("failed to create sheets service: %w", err)
		}
		return &Client{service: service}, nil
	}

	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", credentialsFile, err)
	}
	return NewClientFromJSON(ctx, data, scopes...)
}

// NewClientFromJSON creates a Sheets client from inline service-account key
// JSON, scoped to the given authorization scopes.
func NewClientFromJSON(ctx context.Context, credsJSON []byte, scopes ...Scope) (*Client, error) {
	if len(scopes) == 0 {
		service, err := sheets.NewService(ctx, option.WithCredentialsJSON(credsJSON))
		if err != nil {
			return nil, fmt.Errorf("failed to create sheets service: %w", err)
		}
		return &Client{service: service}, nil
	}

	scopeURLs := make([]string, len(scopes))
	for i, s := range scopes {
		scopeURLs[i] = string(s)
	}

	config, err := google.JWTConfigFromJSON(credsJSON, scopeURLs...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{service: service}, nil
}

// SheetProperties fetches spreadsheet metadata and returns one SheetRef per
// worksheet tab, in the order the service reports them.
func (c *Client) SheetProperties(ctx context.Context, spreadsheetID string) ([]SheetRef, error) {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapRemoteErr("get spreadsheet metadata", err)
	}

	refs := make([]SheetRef, 0, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		refs = append(refs, SheetRef{
			Name: sheet.Properties.Title,
			ID:   sheet.Properties.SheetId,
		})
	}

	return refs, nil
}

// GetValues reads values from the specified range.
// Returns [][]interface{} as mandated by the Google Sheets API.
// Wrap returned values with NewCell() for type-safe access.
func (c *Client) GetValues(ctx context.Context, spreadsheetID, rangeAddr string, dim Dimension) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, rangeAddr).
		MajorDimension(string(dim.Normalize())).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapRemoteErr("read range", err)
	}

	return resp.Values, nil
}

// BatchGetValues reads several ranges in one remote call. The i-th element of
// the result holds the values of rangeAddrs[i]; a range without values yields
// a nil slice at its position.
func (c *Client) BatchGetValues(ctx context.Context, spreadsheetID string, rangeAddrs []string, dim Dimension) ([][][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.BatchGet(spreadsheetID).
		Ranges(rangeAddrs...).
		MajorDimension(string(dim.Normalize())).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapRemoteErr("batch read ranges", err)
	}

	valuesByRange := make([][][]interface{}, 0, len(resp.ValueRanges))
	for _, vr := range resp.ValueRanges {
		valuesByRange = append(valuesByRange, vr.Values)
	}

	return valuesByRange, nil
}

// UpdateValues overwrites the specified range with the provided values.
// Accepts [][]interface{} as mandated by the Google Sheets API.
func (c *Client) UpdateValues(ctx context.Context, spreadsheetID, rangeAddr string, values [][]interface{}, dim Dimension) error {
	valueRange := &sheets.ValueRange{
		MajorDimension: string(dim.Normalize()),
		Values:         values,
	}

	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, rangeAddr, valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return wrapRemoteErr("update range", err)
	}

	return nil
}

// BatchUpdateValues overwrites several ranges in one remote call, each range
// with its own orientation. Whether a failed batch is applied partially is
// decided by the remote service.
func (c *Client) BatchUpdateValues(ctx context.Context, spreadsheetID string, specs []RangeSpec) error {
	data := make([]*sheets.ValueRange, 0, len(specs))
	for _, spec := range specs {
		data = append(data, &sheets.ValueRange{
			Range:          spec.Range,
			MajorDimension: string(spec.Dimension.Normalize()),
			Values:         spec.Values,
		})
	}

	req := &sheets.BatchUpdateValuesRequest{
		Data:             data,
		ValueInputOption: "USER_ENTERED",
	}

	_, err := c.service.Spreadsheets.Values.BatchUpdate(spreadsheetID, req).
		Context(ctx).
		Do()
	if err != nil {
		return wrapRemoteErr("batch update ranges", err)
	}

	return nil
}

// ClearValues clears all values in the specified range
func (c *Client) ClearValues(ctx context.Context, spreadsheetID, rangeAddr string) error {
	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, rangeAddr, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return wrapRemoteErr("clear range", err)
	}

	return nil
}

// FormatCells applies cell formatting over a grid range of one sheet via a
// repeatCell structural update.
func (c *Client) FormatCells(ctx context.Context, spreadsheetID string, sheetID int64, req FormatRequest) error {
	cellFormat := &sheets.CellFormat{
		HorizontalAlignment: req.alignment(),
		TextFormat: &sheets.TextFormat{
			Bold: req.Bold,
		},
	}
	if req.Background != nil {
		cellFormat.BackgroundColor = toColor(req.Background)
	}
	if req.TextColor != nil {
		cellFormat.TextFormat.ForegroundColor = toColor(req.TextColor)
	}

	batchUpdate := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: &sheets.GridRange{
						SheetId:          sheetID,
						StartRowIndex:    req.StartRowIndex,
						EndRowIndex:      req.EndRowIndex,
						StartColumnIndex: req.StartColumnIndex,
						EndColumnIndex:   req.EndColumnIndex,
					},
					Cell: &sheets.CellData{
						UserEnteredFormat: cellFormat,
					},
					Fields: "userEnteredFormat(backgroundColor,textFormat,horizontalAlignment)",
				},
			},
		},
	}

	_, err := c.service.Spreadsheets.BatchUpdate(spreadsheetID, batchUpdate).
		Context(ctx).
		Do()
	if err != nil {
		return wrapRemoteErr("format cells", err)
	}

	log.Debug().
		Int64("sheet_id", sheetID).
		Int64("start_row", req.StartRowIndex).
		Int64("end_row", req.EndRowIndex).
		Msg("Applied cell formatting")

	return nil
}

func toColor(c *RGB) *sheets.Color {
	return &sheets.Color{
		Red:   float64(c.Red) / 255,
		Green: float64(c.Green) / 255,
		Blue:  float64(c.Blue) / 255,
	}
}
