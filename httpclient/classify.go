package httpclient

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Classify maps a completed exchange to its log entry, optional notification,
// and caller-visible error. The dispatch is order-sensitive and exact:
//
//	200-299          Success log, no notification, nil error
//	401              HTTPError log, Unauthorized notification, unauthorized error
//	403              HTTPError log, Forbidden notification, unauthorized error
//	404              HTTPError log, no notification, http error
//	429              HTTPError log, RateLimited notification, http error
//	503              HTTPError log, ServiceUnavailable notification, http error
//	500-599 (no 503) HTTPError log, ServerError notification, http error
//	anything else    HTTPError log, no notification, http error
//
// 401 and 403 deliberately collapse into one error code while keeping
// distinct notification variants.
func Classify(req Request, resp *Response) (LogEntry, *Notification, error) {
	status, body := resp.StatusCode, resp.Body

	if status >= 200 && status < 300 {
		return LogEntry{
			Kind:       LogSuccess,
			Request:    req,
			StatusCode: status,
			Body:       body,
		}, nil, nil
	}

	entry := LogEntry{
		Kind:       LogHTTPError,
		Request:    req,
		StatusCode: status,
		Body:       body,
	}
	note := Notification{
		Request:    req,
		StatusCode: status,
		Body:       body,
	}

	switch {
	case status == 401:
		note.Kind = NotificationUnauthorized
		return entry, &note, NewUnauthorizedError(status, body)

	case status == 403:
		note.Kind = NotificationForbidden
		return entry, &note, NewUnauthorizedError(status, body)

	case status == 404:
		return entry, nil, NewHTTPError(status, body)

	case status == 429:
		note.Kind = NotificationRateLimited
		note.RetryAfter = parseRetryAfter(resp.Header("Retry-After"), time.Now())
		return entry, &note, NewHTTPError(status, body)

	case status == 503:
		note.Kind = NotificationServiceUnavailable
		return entry, &note, NewHTTPError(status, body)

	case status >= 500 && status < 600:
		note.Kind = NotificationServerError
		return entry, &note, NewHTTPError(status, body)

	default:
		return entry, nil, NewHTTPError(status, body)
	}
}

// parseRetryAfter interprets a Retry-After header value as a delay in
// seconds. It accepts a numeric seconds value or an HTTP-date; an HTTP-date
// in the past yields nil rather than a negative delay.
func parseRetryAfter(value string, now time.Time) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	if secs, err := strconv.ParseFloat(value, 64); err == nil {
		if secs < 0 {
			return nil
		}
		return &secs
	}

	if t, err := http.ParseTime(value); err == nil {
		secs := t.Sub(now).Seconds()
		if secs < 0 {
			return nil
		}
		return &secs
	}

	return nil
}
