package localapi

import (
	"errors"
	"fmt"
)

// ErrorKind classifies daemon-reported failures so callers can branch on
// them without parsing response bodies.
type ErrorKind int

const (
	KindGeneric ErrorKind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	default:
		return "generic"
	}
}

// ConfigError reports that no usable daemon transport could be resolved.
type ConfigError struct {
	Path    string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolve daemon transport (%s): %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("resolve daemon transport (%s): %s", e.Path, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ValidationError reports a caller-supplied argument rejected before any
// request is issued.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// RequestError reports a transport-level failure: the connection could not
// be opened, the request could not be written, or the response could not be
// read in full.
type RequestError struct {
	Method string
	Path   string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("localapi request %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// APIError reports a request the daemon answered with a non-success status,
// such as an unauthorized cert domain or an unknown whois address.
type APIError struct {
	StatusCode int
	Kind       ErrorKind
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("daemon rejected request (%d %s): %s", e.StatusCode, e.Kind, e.Message)
	}
	return fmt.Sprintf("daemon rejected request (%d %s)", e.StatusCode, e.Kind)
}

// DecodeError reports a response body that did not parse as the expected
// shape. Body carries the raw payload for diagnostics.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode daemon response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a daemon-side not-found rejection.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

func kindForStatus(status int) ErrorKind {
	switch status {
	case 400:
		return KindBadRequest
	case 401, 403:
		return KindUnauthorized
	case 404:
		return KindNotFound
	default:
		return KindGeneric
	}
}
