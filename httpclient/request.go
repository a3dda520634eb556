package httpclient

import (
	"net/http"

	"github.com/kbukum/streamkit/sse"
)

// Request describes an outbound HTTP request. It doubles as the exchange
// descriptor carried by log entries and notifications.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string
	// Path is appended to the client's BaseURL. Can be a full URL if BaseURL
	// is empty.
	Path string
	// Headers are request-specific headers (merged with client defaults).
	Headers map[string]string
	// Query are URL query parameters.
	Query map[string]string
	// Body is the request body. Accepts io.Reader, []byte, string, or any
	// value that will be JSON-encoded.
	Body any
	// Auth overrides the client-level auth for this request.
	Auth *AuthConfig
}

// Response is the result of one completed HTTP exchange.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Header returns the named response header, or "".
func (r *Response) Header(name string) string {
	return r.Headers[http.CanonicalHeaderKey(name)]
}

// StreamResponse wraps a streaming HTTP response.
type StreamResponse struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Events is the SSE frame reader (text/event-stream responses only).
	Events sse.Reader
	// rawResp holds the original response for cleanup.
	rawResp *http.Response
}

// Header returns the named response header, or "".
func (r *StreamResponse) Header(name string) string {
	return r.Headers[http.CanonicalHeaderKey(name)]
}

// Close releases all resources associated with the stream.
func (r *StreamResponse) Close() error {
	if r.Events != nil {
		return r.Events.Close()
	}
	if r.rawResp != nil && r.rawResp.Body != nil {
		return r.rawResp.Body.Close()
	}
	return nil
}
