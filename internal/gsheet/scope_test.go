package gsheet

import "testing"

func TestParseScope(t *testing.T) {
	testCases := []struct {
		name     string
		expected Scope
	}{
		{"drive", ScopeDrive},
		{"drive.file", ScopeDriveFile},
		{"drive.readonly", ScopeDriveReadonly},
		{"spreadsheets", ScopeSpreadsheets},
		{"spreadsheets.readonly", ScopeSpreadsheetsReadonly},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scope, err := ParseScope(tc.name)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if scope != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, scope)
			}
		})
	}

	t.Run("unknown scope", func(t *testing.T) {
		if _, err := ParseScope("everything"); err == nil {
			t.Error("Expected an error for an unknown scope name")
		}
	})
}

func TestScopeURLs(t *testing.T) {
	// The five scopes must match the published Sheets API scope URLs
	expected := map[Scope]string{
		ScopeDrive:                "https://www.googleapis.com/auth/drive",
		ScopeDriveFile:            "https://www.googleapis.com/auth/drive.file",
		ScopeDriveReadonly:        "https://www.googleapis.com/auth/drive.readonly",
		ScopeSpreadsheets:         "https://www.googleapis.com/auth/spreadsheets",
		ScopeSpreadsheetsReadonly: "https://www.googleapis.com/auth/spreadsheets.readonly",
	}

	for scope, url := range expected {
		if string(scope) != url {
			t.Errorf("Expected %s, got %s", url, scope)
		}
	}
}
