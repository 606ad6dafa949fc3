package gsheet

import (
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// Scope is one of the five OAuth2 authorization scopes accepted by the
// Sheets API. At least one scope granting the needed access level must be
// present on the credential for an operation to succeed.
// https://developers.google.com/identity/protocols/oauth2/scopes#sheets
type Scope string

const (
	// ScopeDrive grants full access to all Drive files.
	ScopeDrive Scope = sheets.DriveScope
	// ScopeDriveFile grants access only to Drive files used with this app.
	ScopeDriveFile Scope = sheets.DriveFileScope
	// ScopeDriveReadonly grants read-only access to all Drive files.
	ScopeDriveReadonly Scope = sheets.DriveReadonlyScope
	// ScopeSpreadsheets grants full access to all spreadsheets.
	ScopeSpreadsheets Scope = sheets.SpreadsheetsScope
	// ScopeSpreadsheetsReadonly grants read-only access to all spreadsheets.
	ScopeSpreadsheetsReadonly Scope = sheets.SpreadsheetsReadonlyScope
)

// ParseScope resolves a short scope name (as used in configuration) to its
// full scope URL.
func ParseScope(name string) (Scope, error) {
	switch name {
	case "drive":
		return ScopeDrive, nil
	case "drive.file":
		return ScopeDriveFile, nil
	case "drive.readonly":
		return ScopeDriveReadonly, nil
	case "spreadsheets":
		return ScopeSpreadsheets, nil
	case "spreadsheets.readonly":
		return ScopeSpreadsheetsReadonly, nil
	default:
		return "", fmt.Errorf("unknown sheets scope %q", name)
	}
}
