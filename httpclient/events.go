package httpclient

// LogKind discriminates log entry variants.
type LogKind int

const (
	// LogSuccess records a 2xx exchange.
	LogSuccess LogKind = iota
	// LogHTTPError records a non-2xx exchange.
	LogHTTPError
	// LogDecodingError records a payload that failed to decode into the
	// caller's declared type.
	LogDecodingError
)

// String returns the log kind name.
func (k LogKind) String() string {
	switch k {
	case LogSuccess:
		return "success"
	case LogHTTPError:
		return "http_error"
	case LogDecodingError:
		return "decoding_error"
	default:
		return "unknown"
	}
}

// LogEntry describes one observed exchange (or one decode failure). Exactly
// one LogEntry is published per completed exchange; decoding entries are
// published additionally when a typed stream fails to decode a frame.
type LogEntry struct {
	// Kind discriminates the variant.
	Kind LogKind
	// Request is the originating request descriptor.
	Request Request
	// StatusCode is the HTTP status code (0 for decoding entries).
	StatusCode int
	// Body is the response body, or the undecodable payload for decoding
	// entries.
	Body []byte
	// Err is the decode error (LogDecodingError only).
	Err error
	// TargetType names the type the payload failed to decode into
	// (LogDecodingError only).
	TargetType string
}

// NotificationKind discriminates notification variants.
type NotificationKind int

const (
	// NotificationUnauthorized is published for status 401.
	NotificationUnauthorized NotificationKind = iota
	// NotificationForbidden is published for status 403.
	NotificationForbidden
	// NotificationRateLimited is published for status 429.
	NotificationRateLimited
	// NotificationServiceUnavailable is published for status 503.
	NotificationServiceUnavailable
	// NotificationServerError is published for any other 5xx status.
	NotificationServerError
)

// String returns the notification kind name.
func (k NotificationKind) String() string {
	switch k {
	case NotificationUnauthorized:
		return "unauthorized"
	case NotificationForbidden:
		return "forbidden"
	case NotificationRateLimited:
		return "rate_limited"
	case NotificationServiceUnavailable:
		return "service_unavailable"
	case NotificationServerError:
		return "server_error"
	default:
		return "unknown"
	}
}

// Notification is a status event published for exchanges whose status code
// warrants global attention (401, 403, 429, 503, and other 5xx).
type Notification struct {
	// Kind discriminates the variant.
	Kind NotificationKind
	// Request is the originating request descriptor.
	Request Request
	// StatusCode is the HTTP status code of the exchange.
	StatusCode int
	// Body is the response body.
	Body []byte
	// RetryAfter is the parsed Retry-After header in seconds
	// (NotificationRateLimited only). Nil when the header is missing,
	// unparseable, or an HTTP-date in the past.
	RetryAfter *float64
}
