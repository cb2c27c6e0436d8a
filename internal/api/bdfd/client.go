package bdfd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultUserAgent = "bdfd-catalog/1.0"
	defaultTimeout   = 30 * time.Second

	// maxErrorBody bounds how much of a failed response is kept in StatusError.
	maxErrorBody = 512
)

// Request outcomes reported to Metrics.
const (
	OutcomeSuccess      = "success"
	OutcomeHTTPError    = "http_error"
	OutcomeNetworkError = "network_error"
	OutcomeDecodeError  = "decode_error"
)

// Metrics receives one observation per catalog request.
type Metrics interface {
	ObserveRequest(domain Domain, op Operation, outcome string, duration time.Duration)
}

// StatusError is returned when the catalog answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	URL        string
	Message    string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithBaseURL sets a custom API root.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = normalizeBaseURL(baseURL)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics installs a request observer.
func WithMetrics(m Metrics) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// Client is a thin HTTP client for the catalog API. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    Metrics
}

// NewClient creates a new catalog API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root every endpoint path is joined onto.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL returns the absolute URL for an endpoint.
func (c *Client) URL(domain Domain, op Operation, tag string) string {
	return c.baseURL + EndpointPath(domain, op, tag)
}

// TagList fetches the ordered tag (or callback name) enumeration of a domain.
func (c *Client) TagList(ctx context.Context, domain Domain) ([]string, error) {
	var tags []string
	if err := c.get(ctx, domain, OperationTagList, "", &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// FunctionInfo fetches one function by its full tag.
func (c *Client) FunctionInfo(ctx context.Context, tag string) (*FunctionResponse, error) {
	var result FunctionResponse
	if err := c.get(ctx, DomainFunction, OperationInfo, tag, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FunctionList fetches every function record.
func (c *Client) FunctionList(ctx context.Context) ([]FunctionResponse, error) {
	var result []FunctionResponse
	if err := c.get(ctx, DomainFunction, OperationList, "", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CallbackInfo fetches one callback by its full name.
func (c *Client) CallbackInfo(ctx context.Context, name string) (*CallbackResponse, error) {
	var result CallbackResponse
	if err := c.get(ctx, DomainCallback, OperationInfo, name, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CallbackList fetches every callback record.
func (c *Client) CallbackList(ctx context.Context) ([]CallbackResponse, error) {
	var result []CallbackResponse
	if err := c.get(ctx, DomainCallback, OperationList, "", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, domain Domain, op Operation, tag string, out any) error {
	start := time.Now()
	outcome := OutcomeSuccess
	endpoint := c.URL(domain, op, tag)
	defer func() {
		duration := time.Since(start)
		if c.metrics != nil {
			c.metrics.ObserveRequest(domain, op, outcome, duration)
		}
		c.logger.LogAttrs(ctx, slog.LevelDebug, "catalog request",
			slog.String("domain", string(domain)),
			slog.String("operation", string(op)),
			slog.String("url", endpoint),
			slog.String("outcome", outcome),
			slog.Duration("duration", duration),
		)
	}()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		outcome = OutcomeNetworkError
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		outcome = OutcomeNetworkError
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		outcome = OutcomeNetworkError
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = OutcomeHTTPError
		body := string(respBody)
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return &StatusError{
			StatusCode: resp.StatusCode,
			URL:        endpoint,
			Message:    ParseErrorResponse(respBody),
			Body:       body,
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		outcome = OutcomeDecodeError
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}
