package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Error is a transport-level failure: a non-2xx status, an unsuccessful
// envelope, or a malformed response body. Status is zero when the request
// never reached the server.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api: %s", e.Message)
	}
	if e.Code != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is a 401 transport error.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsTimeout reports whether err is a client-side timeout (the bounded
// request window elapsed before the server answered).
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// ServerMessage extracts the server-provided message from err, or returns
// fallback when none is available. Used for user-facing notifications.
func ServerMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
