package catalog

import (
	"context"
	"fmt"
)

// Wrapper is a client bound to a single domain chosen at runtime, for
// callers that pick "function" or "callback" from input. Code that knows
// its domain statically should use NewFunctionClient or NewCallbackClient.
type Wrapper struct {
	target    Domain
	functions *FunctionClient
	callbacks *CallbackClient
}

// New creates a Wrapper bound to target.
func New(target Domain, opts ...Option) (*Wrapper, error) {
	w := &Wrapper{target: target}
	switch target {
	case DomainFunction:
		w.functions = NewFunctionClient(opts...)
	case DomainCallback:
		w.callbacks = NewCallbackClient(opts...)
	default:
		return nil, &ConfigurationError{
			Target:  target,
			Message: fmt.Sprintf("target %q does not exist, available targets: %q, %q", target, DomainFunction, DomainCallback),
		}
	}
	return w, nil
}

// Target returns the domain the Wrapper is bound to.
func (w *Wrapper) Target() Domain {
	return w.target
}

// Functions returns the function client. It fails with a
// ConfigurationError when the Wrapper is bound to callbacks.
func (w *Wrapper) Functions() (*FunctionClient, error) {
	if w.functions == nil {
		return nil, w.mismatch("Functions")
	}
	return w.functions, nil
}

// Callbacks returns the callback client. It fails with a
// ConfigurationError when the Wrapper is bound to functions.
func (w *Wrapper) Callbacks() (*CallbackClient, error) {
	if w.callbacks == nil {
		return nil, w.mismatch("Callbacks")
	}
	return w.callbacks, nil
}

// TagList fetches the tag list of the bound domain.
func (w *Wrapper) TagList(ctx context.Context) ([]string, error) {
	if w.functions != nil {
		return w.functions.TagList(ctx)
	}
	return w.callbacks.TagList(ctx)
}

func (w *Wrapper) mismatch(accessor string) error {
	return &ConfigurationError{
		Accessor: accessor,
		Target:   w.target,
		Message:  fmt.Sprintf("cannot use %q when target is %q", accessor, w.target),
	}
}
