package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/streamkit/broadcast"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
	"github.com/kbukum/streamkit/sse"
	"github.com/kbukum/streamkit/version"
)

// Client is an HTTP client that classifies every completed exchange and
// publishes the result to its broadcast channels.
//
// Network and protocol errors are not retried or recovered here: they
// terminate the exchange and surface to the caller as a typed *Error, while
// protocol errors are simultaneously broadcast for observers.
type Client struct {
	httpClient    *http.Client
	config        Config
	logs          *broadcast.Broker[LogEntry]
	notifications *broadcast.Broker[Notification]
	log           *logger.Logger
}

// New creates a new HTTP client with the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	log := cfg.Logger
	if log == nil {
		log = logger.WithComponent("httpclient")
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config:        cfg,
		logs:          broadcast.NewBroker[LogEntry](),
		notifications: broadcast.NewBroker[Notification](),
		log:           log,
	}, nil
}

// Logs returns the broker carrying one LogEntry per completed exchange, plus
// decoding entries from typed streams.
func (c *Client) Logs() *broadcast.Broker[LogEntry] {
	return c.logs
}

// Notifications returns the broker carrying status notifications (401, 403,
// 429, 503, and other 5xx exchanges).
func (c *Client) Notifications() *broadcast.Broker[Notification] {
	return c.notifications
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Do executes one HTTP exchange and classifies the outcome. The log entry is
// always published; a notification is published for the status codes that
// carry one. On a non-success status the response is returned alongside the
// typed error so callers can still inspect it.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	ctx, span := observability.StartSpan(ctx, "httpclient.do",
		attribute.String(observability.AttrHTTPMethod, req.Method),
		attribute.String(observability.AttrHTTPPath, req.Path),
	)
	defer span.End()

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		terr := c.transportError(ctx, err)
		span.RecordError(terr)
		c.log.Warn("exchange failed", logger.ErrorFields("do", terr))
		return nil, terr
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		terr := NewNetworkError(fmt.Errorf("read response body: %w", err))
		span.RecordError(terr)
		return nil, terr
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}
	span.SetAttributes(attribute.Int(observability.AttrHTTPStatus, resp.StatusCode))

	entry, note, classErr := Classify(req, result)
	c.publish(entry, note)

	if classErr != nil {
		span.RecordError(classErr)
		c.log.Debug("exchange rejected", logger.Fields(
			logger.FieldMethod, req.Method,
			logger.FieldPath, req.Path,
			logger.FieldStatusCode, resp.StatusCode,
		))
		return result, classErr
	}

	c.log.Debug("exchange completed", logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldPath, req.Path,
		logger.FieldStatusCode, resp.StatusCode,
	))
	return result, nil
}

// DoStream executes a streaming HTTP exchange. The request is sent with
// Accept: text/event-stream unless the caller set Accept explicitly. Any
// non-2xx initial status is drained, classified, and published exactly like a
// plain exchange, and returned as the typed error before any frame is parsed.
//
// The caller must close the returned StreamResponse when done.
func (c *Client) DoStream(ctx context.Context, req Request) (*StreamResponse, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "text/event-stream")
	}

	// No global timeout for streams; the context governs their lifetime.
	streamClient := &http.Client{Transport: c.httpClient.Transport}

	resp, err := streamClient.Do(httpReq)
	if err != nil {
		terr := c.transportError(ctx, err)
		c.log.Warn("stream connect failed", logger.ErrorFields("do_stream", terr))
		return nil, terr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		result := &Response{
			StatusCode: resp.StatusCode,
			Headers:    flattenHeaders(resp.Header),
			Body:       body,
		}
		entry, note, classErr := Classify(req, result)
		c.publish(entry, note)
		return nil, classErr
	}

	stream := &StreamResponse{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		rawResp:    resp,
	}
	if strings.Contains(resp.Header.Get("Content-Type"), "text/event-stream") {
		stream.Events = sse.NewReader(resp.Body)
	}

	c.log.Debug("stream opened", logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldPath, req.Path,
		logger.FieldStatusCode, resp.StatusCode,
	))
	return stream, nil
}

// publish pushes the classified outcome to the broadcast channels.
func (c *Client) publish(entry LogEntry, note *Notification) {
	c.logs.Publish(entry)
	if note != nil {
		c.notifications.Publish(*note)
	}
}

// transportError distinguishes context-driven timeouts from other transport
// failures.
func (c *Client) transportError(ctx context.Context, err error) *Error {
	if ctx.Err() != nil {
		return NewTimeoutError(err)
	}
	return NewNetworkError(err)
}

// buildRequest constructs an *http.Request from the client config and request.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	url := req.Path
	if c.config.BaseURL != "" && !strings.HasPrefix(req.Path, "http://") && !strings.HasPrefix(req.Path, "https://") {
		url = strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, NewInvalidURLError(fmt.Sprintf("encode body: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, NewInvalidURLError(fmt.Sprintf("create request: %v", err))
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	httpReq.Header.Set("User-Agent", version.UserAgent())
	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	// Request-level auth overrides client-level.
	auth := c.config.Auth
	if req.Auth != nil {
		auth = req.Auth
	}
	auth.apply(httpReq)

	return httpReq, nil
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
