package catalog

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/tjfontaine/bdfd-catalog/internal/api/bdfd"
)

// FunctionClient queries the function side of the catalog.
type FunctionClient struct {
	base
}

// NewFunctionClient creates a client for functions.
func NewFunctionClient(opts ...Option) *FunctionClient {
	return &FunctionClient{base: newBase(DomainFunction, opts)}
}

// Info resolves tag, which may be partial, against the function tag list
// and returns the first matching function.
func (c *FunctionClient) Info(ctx context.Context, tag string) (_ *Function, err error) {
	ctx, span := c.startSpan(ctx, DomainFunction, OperationInfo, attribute.String("catalog.partial_tag", tag))
	defer func() { endSpan(span, err) }()

	if tag == "" {
		return nil, ErrEmptyTag
	}

	resolved, err := c.resolver.resolve(ctx, tag)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("catalog.tag", resolved))

	resp, err := c.api.FunctionInfo(ctx, resolved)
	if err != nil {
		return nil, newTransportError(DomainFunction, OperationInfo, err)
	}

	fn := functionFromResponse(*resp)
	return &fn, nil
}

// List returns every function in server order.
func (c *FunctionClient) List(ctx context.Context) (_ []Function, err error) {
	ctx, span := c.startSpan(ctx, DomainFunction, OperationList)
	defer func() { endSpan(span, err) }()

	resp, err := c.api.FunctionList(ctx)
	if err != nil {
		return nil, newTransportError(DomainFunction, OperationList, err)
	}

	list := make([]Function, 0, len(resp))
	for _, r := range resp {
		list = append(list, functionFromResponse(r))
	}
	span.SetAttributes(attribute.Int("catalog.count", len(list)))
	return list, nil
}

// TagList returns the function tags exactly as the server lists them.
func (c *FunctionClient) TagList(ctx context.Context) (_ []string, err error) {
	ctx, span := c.startSpan(ctx, DomainFunction, OperationTagList)
	defer func() { endSpan(span, err) }()

	tags, err := c.api.TagList(ctx, DomainFunction)
	if err != nil {
		return nil, newTransportError(DomainFunction, OperationTagList, err)
	}
	return tags, nil
}

func functionFromResponse(r bdfd.FunctionResponse) Function {
	return Function{
		Tag:         r.Tag,
		Description: r.ShortDescription,
		Args:        argumentsFromResponse(r.Arguments),
		Intents:     HumanizeIntents(RawIntents(r.Intents)),
		Premium:     r.Premium,
	}
}

func argumentsFromResponse(args []bdfd.Argument) []Argument {
	if args == nil {
		return nil
	}
	out := make([]Argument, 0, len(args))
	for _, a := range args {
		out = append(out, Argument{
			Name:        a.Name,
			Description: a.Description,
			Type:        ArgumentType(a.Type),
			Required:    a.Required,
			Repeatable:  a.Repeatable,
			Empty:       a.Empty,
			EnumData:    ParseEnumData(a.EnumData),
		})
	}
	return out
}
