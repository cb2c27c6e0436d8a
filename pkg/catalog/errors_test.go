package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/tjfontaine/bdfd-catalog/internal/api/bdfd"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantType   ErrorType
		wantStatus int
	}{
		{"nil", nil, "", http.StatusInternalServerError},
		{"plain", errors.New("x"), "", http.StatusInternalServerError},
		{"empty tag", ErrEmptyTag, ErrorTypeInvalidArgument, http.StatusBadRequest},
		{"configuration", &ConfigurationError{Message: "x"}, ErrorTypeConfiguration, http.StatusBadRequest},
		{"not found", &NotFoundError{PartialTag: "x"}, ErrorTypeNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("cli: %w", &NotFoundError{PartialTag: "x"}), ErrorTypeNotFound, http.StatusNotFound},
		{"transport", &TransportError{Err: errors.New("refused")}, ErrorTypeTransport, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeOf(tt.err); got != tt.wantType {
				t.Errorf("TypeOf() = %q, want %q", got, tt.wantType)
			}
			if got := HTTPStatusCode(tt.err); got != tt.wantStatus {
				t.Errorf("HTTPStatusCode() = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}

func TestNewTransportError(t *testing.T) {
	statusErr := &bdfd.StatusError{StatusCode: http.StatusServiceUnavailable, Body: "down"}
	err := newTransportError(DomainCallback, OperationList, fmt.Errorf("wrapped: %w", statusErr))

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("newTransportError() = %T, want *TransportError", err)
	}
	if te.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want %d", te.StatusCode, http.StatusServiceUnavailable)
	}
	if !errors.Is(err, statusErr) {
		t.Error("expected cause to stay reachable through Unwrap")
	}

	cancelled := newTransportError(DomainFunction, OperationTagList, context.Canceled)
	if !errors.Is(cancelled, context.Canceled) {
		t.Error("expected context.Canceled to stay reachable")
	}
}
