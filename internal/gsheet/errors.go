package gsheet

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// ErrSheetNotFound is returned by local registry operations that reference a
// sheet name absent from the registry. It never involves a remote call.
var ErrSheetNotFound = errors.New("sheet not found in registry")

// AuthorizationError indicates the credential was rejected by the remote
// service: invalid, expired, or missing a required scope. It is never
// retried locally.
type AuthorizationError struct {
	Op  string
	Err error
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s: authorization rejected: %v", e.Op, e.Err)
}

func (e *AuthorizationError) Unwrap() error { return e.Err }

// RemoteServiceError wraps any other failure returned by the remote service:
// invalid spreadsheet ID, malformed range address, quota exceeded, or a
// transport fault. It is surfaced verbatim, without local interpretation.
type RemoteServiceError struct {
	Op  string
	Err error
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("%s: remote service error: %v", e.Op, e.Err)
}

func (e *RemoteServiceError) Unwrap() error { return e.Err }

// wrapRemoteErr classifies a failure from the Sheets client. HTTP 401 and 403
// responses indicate a credential or scope problem; everything else is a
// generic remote service failure.
func wrapRemoteErr(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			return &AuthorizationError{Op: op, Err: err}
		}
	}
	return &RemoteServiceError{Op: op, Err: err}
}
