// Package apierror classifies upstream API failures by HTTP status so callers
// can branch on a structured class instead of inspecting error messages.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Class is the coarse failure category of an upstream API call.
type Class int

const (
	// ClassUnknown covers statuses outside the known taxonomy. Non-fatal,
	// but must always be surfaced to the user rather than swallowed.
	ClassUnknown Class = iota
	// ClassAuth is 401: the bearer token was rejected. Recoverable, the
	// user is warned and may re-enter the token.
	ClassAuth
	// ClassAccessDenied is 403: the subscription does not grant access.
	ClassAccessDenied
	// ClassNotFound is 404: the identifier does not exist.
	ClassNotFound
	// ClassThrottled is 500/503: the upstream is throttling the subscription.
	ClassThrottled
)

func (c Class) String() string {
	switch c {
	case ClassAuth:
		return "auth"
	case ClassAccessDenied:
		return "access_denied"
	case ClassNotFound:
		return "not_found"
	case ClassThrottled:
		return "throttled"
	default:
		return "unknown"
	}
}

// StatusError is a non-2xx response from an upstream API. The numeric status
// is carried explicitly through the call chain.
type StatusError struct {
	API        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.API, e.StatusCode)
}

// Class maps the status code onto the failure taxonomy.
func (e *StatusError) Class() Class {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ClassAuth
	case http.StatusForbidden:
		return ClassAccessDenied
	case http.StatusNotFound:
		return ClassNotFound
	case http.StatusInternalServerError, http.StatusServiceUnavailable:
		return ClassThrottled
	default:
		return ClassUnknown
	}
}

// Fatal reports whether the failure should terminate the process: a denied
// subscription or an unknown identifier cannot be recovered from within the
// session.
func (e *StatusError) Fatal() bool {
	c := e.Class()
	return c == ClassAccessDenied || c == ClassNotFound
}

// Guidance returns the user-facing hint for the failure class.
func (e *StatusError) Guidance() string {
	switch e.Class() {
	case ClassAuth:
		return "Incorrect authentication: please check your API token"
	case ClassAccessDenied:
		return "Access restricted: your token does not grant access to " + e.API
	case ClassNotFound:
		return "Not found: the student ID you entered is incorrect"
	case ClassThrottled:
		return "Throttling error: check your API subscription level"
	default:
		return fmt.Sprintf("Unexpected response from %s (status %d)", e.API, e.StatusCode)
	}
}

// New builds a StatusError for the named API.
func New(api string, statusCode int) *StatusError {
	return &StatusError{API: api, StatusCode: statusCode}
}

// FromStatus returns nil for 2xx statuses and a StatusError otherwise.
func FromStatus(api string, statusCode int) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}
	return New(api, statusCode)
}

// AsStatus unwraps err into a StatusError when possible.
func AsStatus(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
