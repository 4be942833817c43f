package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"golang.org/x/net/html/charset"

	"github.com/ivakit/iva/logger"
	"github.com/ivakit/iva/observability"
)

// HeaderRequestID carries the per-request correlation id.
const HeaderRequestID = "X-Request-Id"

// errorBodyLimit caps how much of a non-2xx body is kept on the Error.
const errorBodyLimit = 4 << 10

// Client performs GET requests and decodes their bodies.
type Client struct {
	httpClient *http.Client
	config     Config
	maxBody    int64
	log        *logger.Logger
	metrics    *observability.FetchMetrics
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. Config.Timeout is
// not applied to a supplied client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithMetrics records fetches on m instead of the instruments created from
// the global meter.
func WithMetrics(m *observability.FetchMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a Client from cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config:  cfg,
		maxBody: cfg.maxBodyBytes(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Timeout:   cfg.Timeout,
		}
	}
	if c.log == nil {
		c.log = logger.Get("fetch")
	}
	if c.metrics == nil {
		m, err := observability.NewFetchMetrics(observability.Meter("github.com/ivakit/iva/fetch"))
		if err != nil {
			return nil, err
		}
		c.metrics = m
	}
	return c, nil
}

// Config returns the effective configuration.
func (c *Client) Config() Config {
	return c.config
}

// Basic GETs url and decodes the body as format. JSON bodies decode into
// map[string]any, []any, string, float64, bool or nil; text bodies are
// returned as a UTF-8 string. An empty format means FormatJSON. For any
// other format the request is still made and its errors reported, but the
// result is nil.
func (c *Client) Basic(ctx context.Context, url string, format Format) (any, error) {
	if format == "" {
		format = FormatJSON
	}
	switch format {
	case FormatJSON:
		var v any
		if err := c.getJSON(ctx, url, &v); err != nil {
			return nil, err
		}
		return v, nil
	case FormatText:
		return c.Text(ctx, url)
	default:
		if _, err := c.get(ctx, url, format); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

// Text GETs url and returns its body decoded to UTF-8 from the charset
// declared in Content-Type, or sniffed from the body when absent.
func (c *Client) Text(ctx context.Context, url string) (string, error) {
	resp, err := c.get(ctx, url, FormatText)
	if err != nil {
		return "", err
	}
	r, err := charset.NewReader(bytes.NewReader(resp.body), resp.contentType)
	if err != nil {
		return "", newDecodeError(url, resp.status, FormatText, err)
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return "", newDecodeError(url, resp.status, FormatText, err)
	}
	return string(text), nil
}

// JSON GETs url and decodes the body into a T.
func JSON[T any](ctx context.Context, c *Client, url string) (T, error) {
	var v T
	err := c.getJSON(ctx, url, &v)
	return v, err
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	resp, err := c.get(ctx, url, FormatJSON)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.body, v); err != nil {
		return newDecodeError(url, resp.status, FormatJSON, err)
	}
	return nil
}

type response struct {
	status      int
	contentType string
	body        []byte
}

// get performs the traced GET and reads the whole body. Non-2xx responses
// are read like any other unless FailOnStatus is set, in which case they
// become status errors.
func (c *Client) get(ctx context.Context, url string, format Format) (resp *response, err error) {
	requestID := c.config.Headers[HeaderRequestID]
	if requestID == "" {
		requestID = uuid.NewString()
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanFetch)
	span.SetAttributes(
		attribute.String(observability.AttrURL, url),
		attribute.String(observability.AttrFormat, string(format)),
		attribute.String(observability.AttrRequestID, requestID),
	)
	start := time.Now()
	c.metrics.RecordStart(ctx)
	defer func() {
		outcome, n := observability.OutcomeOK, int64(0)
		if resp != nil {
			n = int64(len(resp.body))
			span.SetAttributes(attribute.Int64(observability.AttrBytes, n))
		}
		if err != nil {
			outcome = observability.OutcomeError
			observability.SetSpanError(ctx, err)
		}
		c.metrics.RecordFetch(ctx, string(format), outcome, n, time.Since(start))
		span.End()
		c.logResult(url, requestID, format, resp, err, time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newRequestError(url, err)
	}
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", accept(format))
	observability.InjectHeaders(ctx, propagation.HeaderCarrier(req.Header))

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newTransportError(ctx, url, err)
	}
	defer func() { _ = httpResp.Body.Close() }()
	span.SetAttributes(attribute.Int(observability.AttrStatusCode, httpResp.StatusCode))

	if c.config.FailOnStatus && (httpResp.StatusCode < 200 || httpResp.StatusCode > 299) {
		body, _ := io.ReadAll(io.LimitReader(httpResp.Body, errorBodyLimit))
		return nil, newStatusError(url, httpResp.StatusCode, body)
	}

	body, err := c.readBody(httpResp.Body)
	if err != nil {
		return nil, newTransportError(ctx, url, err)
	}
	return &response{
		status:      httpResp.StatusCode,
		contentType: httpResp.Header.Get("Content-Type"),
		body:        body,
	}, nil
}

func (c *Client) readBody(r io.Reader) ([]byte, error) {
	if c.maxBody <= 0 {
		return io.ReadAll(r)
	}
	body, err := io.ReadAll(io.LimitReader(r, c.maxBody+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > c.maxBody {
		return nil, errBodyTooLarge
	}
	return body, nil
}

func (c *Client) logResult(url, requestID string, format Format, resp *response, err error, d time.Duration) {
	fields := logger.Fields(
		logger.FieldURL, url,
		logger.FieldRequestID, requestID,
		logger.FieldFormat, string(format),
		logger.FieldDuration, d.Milliseconds(),
	)
	if err != nil {
		fields[logger.FieldError] = err
		if status := StatusCode(err); status > 0 {
			fields[logger.FieldStatus] = status
		}
		c.log.Debug("fetch failed", fields)
		return
	}
	fields[logger.FieldStatus] = resp.status
	fields[logger.FieldBytes] = len(resp.body)
	c.log.Debug("fetch completed", fields)
}

func accept(format Format) string {
	switch format {
	case FormatJSON:
		return "application/json"
	case FormatText:
		return "text/*, */*;q=0.8"
	default:
		return "*/*"
	}
}
