/*
Package catalog is a client for the BDFD public catalog of functions and
callbacks.

# Clients

FunctionClient and CallbackClient expose the same three operations:

  - Info resolves a possibly partial tag and fetches that record
  - List fetches every record, in server order
  - TagList fetches the tag (or callback name) enumeration verbatim

Wrapper binds one of them to a domain chosen at runtime; asking it for the
other domain's client returns a ConfigurationError without any request.

# Partial tags

Info fetches the tag list on every call and picks the first entry that
contains the given string (see MatchPartialTag). When nothing matches it
returns a NotFoundError and the info endpoint is not called.

# Normalization

Records are reshaped from the wire format:

	function: shortDescription -> Description, arguments -> Args
	callback: is_premium -> Premium, arguments -> Args
	both:     intents -> HumanizeIntents(intents)

longDescription and color are deprecated by the service and dropped.

# Errors

Failures are ConfigurationError, NotFoundError, TransportError or
ErrEmptyTag. Nothing is retried and nothing is logged at error level; use
TypeOf or the Is* helpers to branch.

# Example Usage

	functions := catalog.NewFunctionClient(
	    catalog.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}),
	)
	fn, err := functions.Info(ctx, "addButton")
	if catalog.IsNotFound(err) {
	    // no such function
	}
*/
package catalog
