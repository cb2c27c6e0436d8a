package catalog

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tjfontaine/bdfd-catalog/internal/api/bdfd"
)

// ErrorType represents the category of a catalog error.
type ErrorType string

const (
	// ErrorTypeConfiguration indicates a client was used outside its bound domain.
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeInvalidArgument indicates a malformed call, such as an empty tag.
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"

	// ErrorTypeNotFound indicates no tag matched a partial tag.
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeTransport indicates the HTTP exchange or response decoding failed.
	ErrorTypeTransport ErrorType = "transport"
)

// ErrEmptyTag is returned by Info when called with an empty tag.
var ErrEmptyTag = errors.New("tag must not be empty")

// ConfigurationError is returned when an accessor does not match the domain
// the Wrapper was built for, or when the domain itself is unknown.
type ConfigurationError struct {
	Accessor string
	Target   Domain
	Message  string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Type returns ErrorTypeConfiguration.
func (e *ConfigurationError) Type() ErrorType { return ErrorTypeConfiguration }

// NotFoundError is returned when no tag in the domain's tag list contains
// the partial tag.
type NotFoundError struct {
	Domain     Domain
	PartialTag string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("failed to find %s by partial tag %q", e.Domain, e.PartialTag)
}

// Type returns ErrorTypeNotFound.
func (e *NotFoundError) Type() ErrorType { return ErrorTypeNotFound }

// TransportError wraps a failed request: network failure, non-2xx status or
// malformed JSON.
type TransportError struct {
	Domain    Domain
	Operation Operation
	// StatusCode is set when the server answered with a non-2xx status.
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Domain, e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Type returns ErrorTypeTransport.
func (e *TransportError) Type() ErrorType { return ErrorTypeTransport }

// TypeOf returns the category of err, or "" for errors this package did
// not produce.
func TypeOf(err error) ErrorType {
	if errors.Is(err, ErrEmptyTag) {
		return ErrorTypeInvalidArgument
	}
	var typed interface{ Type() ErrorType }
	if errors.As(err, &typed) {
		return typed.Type()
	}
	return ""
}

// HTTPStatusCode suggests a status for serving err over HTTP.
func HTTPStatusCode(err error) int {
	switch TypeOf(err) {
	case ErrorTypeInvalidArgument, ErrorTypeConfiguration:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// IsNotFound reports whether err is a partial tag resolution failure.
func IsNotFound(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}

// IsConfiguration reports whether err is a domain mismatch.
func IsConfiguration(err error) bool {
	return TypeOf(err) == ErrorTypeConfiguration
}

// IsTransport reports whether err came from the HTTP exchange.
func IsTransport(err error) bool {
	return TypeOf(err) == ErrorTypeTransport
}

func newTransportError(domain Domain, op Operation, err error) error {
	te := &TransportError{Domain: domain, Operation: op, Err: err}
	var statusErr *bdfd.StatusError
	if errors.As(err, &statusErr) {
		te.StatusCode = statusErr.StatusCode
	}
	return te
}
