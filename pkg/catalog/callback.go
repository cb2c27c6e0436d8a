package catalog

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/tjfontaine/bdfd-catalog/internal/api/bdfd"
)

// CallbackClient queries the callback side of the catalog. Callbacks are
// identified by name where functions use a tag.
type CallbackClient struct {
	base
}

// NewCallbackClient creates a client for callbacks.
func NewCallbackClient(opts ...Option) *CallbackClient {
	return &CallbackClient{base: newBase(DomainCallback, opts)}
}

// Info resolves name, which may be partial, against the callback name list
// and returns the first matching callback.
func (c *CallbackClient) Info(ctx context.Context, name string) (_ *Callback, err error) {
	ctx, span := c.startSpan(ctx, DomainCallback, OperationInfo, attribute.String("catalog.partial_tag", name))
	defer func() { endSpan(span, err) }()

	if name == "" {
		return nil, ErrEmptyTag
	}

	resolved, err := c.resolver.resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("catalog.tag", resolved))

	resp, err := c.api.CallbackInfo(ctx, resolved)
	if err != nil {
		return nil, newTransportError(DomainCallback, OperationInfo, err)
	}

	cb := callbackFromResponse(*resp)
	return &cb, nil
}

// List returns every callback in server order.
func (c *CallbackClient) List(ctx context.Context) (_ []Callback, err error) {
	ctx, span := c.startSpan(ctx, DomainCallback, OperationList)
	defer func() { endSpan(span, err) }()

	resp, err := c.api.CallbackList(ctx)
	if err != nil {
		return nil, newTransportError(DomainCallback, OperationList, err)
	}

	list := make([]Callback, 0, len(resp))
	for _, r := range resp {
		list = append(list, callbackFromResponse(r))
	}
	span.SetAttributes(attribute.Int("catalog.count", len(list)))
	return list, nil
}

// TagList returns the callback names exactly as the server lists them.
func (c *CallbackClient) TagList(ctx context.Context) (_ []string, err error) {
	ctx, span := c.startSpan(ctx, DomainCallback, OperationTagList)
	defer func() { endSpan(span, err) }()

	tags, err := c.api.TagList(ctx, DomainCallback)
	if err != nil {
		return nil, newTransportError(DomainCallback, OperationTagList, err)
	}
	return tags, nil
}

func callbackFromResponse(r bdfd.CallbackResponse) Callback {
	return Callback{
		Name:        r.Name,
		Description: r.Description,
		Args:        callbackArgumentsFromResponse(r.Arguments),
		Intents:     HumanizeIntents(RawIntents(r.Intents)),
		Premium:     r.IsPremium,
	}
}

func callbackArgumentsFromResponse(args []bdfd.Argument) []CallbackArgument {
	if args == nil {
		return nil
	}
	out := make([]CallbackArgument, 0, len(args))
	for _, a := range args {
		arg := CallbackArgument{
			Name:     a.Name,
			Type:     ArgumentType(a.Type),
			Required: a.Required,
		}
		if a.Description != nil {
			arg.Description = *a.Description
		}
		out = append(out, arg)
	}
	return out
}
