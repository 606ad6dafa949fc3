package gsheet

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestWrapRemoteErr(t *testing.T) {
	t.Run("UnauthorizedBecomesAuthorizationError", func(t *testing.T) {
		for _, code := range []int{401, 403} {
			err := wrapRemoteErr("read range", &googleapi.Error{Code: code, Message: "denied"})

			var authErr *AuthorizationError
			if !errors.As(err, &authErr) {
				t.Errorf("Code %d: expected AuthorizationError, got %v", code, err)
			}
		}
	})

	t.Run("OtherAPICodesBecomeRemoteServiceError", func(t *testing.T) {
		for _, code := range []int{400, 404, 429, 500} {
			err := wrapRemoteErr("read range", &googleapi.Error{Code: code, Message: "nope"})

			var remoteErr *RemoteServiceError
			if !errors.As(err, &remoteErr) {
				t.Errorf("Code %d: expected RemoteServiceError, got %v", code, err)
			}
		}
	})

	t.Run("TransportFaultBecomesRemoteServiceError", func(t *testing.T) {
		base := errors.New("connection reset")
		err := wrapRemoteErr("update range", base)

		var remoteErr *RemoteServiceError
		if !errors.As(err, &remoteErr) {
			t.Fatalf("Expected RemoteServiceError, got %v", err)
		}
		if !errors.Is(err, base) {
			t.Error("Expected the underlying error to be reachable via Unwrap")
		}
	})

	t.Run("WrappedAPIErrorIsStillClassified", func(t *testing.T) {
		inner := fmt.Errorf("while calling: %w", &googleapi.Error{Code: 403, Message: "scope missing"})
		err := wrapRemoteErr("clear range", inner)

		var authErr *AuthorizationError
		if !errors.As(err, &authErr) {
			t.Errorf("Expected AuthorizationError through the wrapping, got %v", err)
		}
	})
}

func TestErrorMessages(t *testing.T) {
	authErr := &AuthorizationError{Op: "read range", Err: errors.New("token expired")}
	if authErr.Error() != "read range: authorization rejected: token expired" {
		t.Errorf("Unexpected message: %s", authErr.Error())
	}

	remoteErr := &RemoteServiceError{Op: "clear range", Err: errors.New("quota exceeded")}
	if remoteErr.Error() != "clear range: remote service error: quota exceeded" {
		t.Errorf("Unexpected message: %s", remoteErr.Error())
	}
}
