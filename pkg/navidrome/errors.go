package navidrome

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a non-2xx response from the Navidrome server.
//
// Body holds the raw response text so callers can surface whatever the
// server said.
type Error struct {
	StatusCode int    // HTTP status code
	Status     string // HTTP status line, e.g. "401 Unauthorized"
	Body       string // Raw response body
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("navidrome: %s", e.status())
	}
	return fmt.Sprintf("navidrome: %s: %s", e.status(), e.Body)
}

func (e *Error) status() string {
	if e.Status != "" {
		return e.Status
	}
	return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Is reports whether target is an *Error with the same status code.
//
// This allows errors.Is(err, &navidrome.Error{StatusCode: 401}) to work.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// SubsonicError is the error element of a failed Subsonic response envelope.
type SubsonicError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error returns the error message.
func (e *SubsonicError) Error() string {
	return fmt.Sprintf("navidrome: subsonic error %d: %s", e.Code, e.Message)
}

// Predefined errors for common cases.
var (
	// ErrInvalidConfig is returned when client configuration is invalid.
	ErrInvalidConfig = errors.New("navidrome: invalid configuration")

	// ErrNoToken is returned when a native API call is made before a
	// session with a bearer token has been set.
	ErrNoToken = errors.New("navidrome: bearer token required")

	// ErrNoSubsonicCredentials is returned when a Subsonic API call is made
	// before a session with Subsonic credentials has been set.
	ErrNoSubsonicCredentials = errors.New("navidrome: subsonic credentials required")

	// ErrDecode is wrapped by errors caused by a response body that could
	// not be decoded.
	ErrDecode = errors.New("navidrome: malformed response")
)
