package httpclient

import (
	"net/http"
	"testing"
	"time"
)

func classifyStatus(t *testing.T, status int, headers map[string]string) (LogEntry, *Notification, error) {
	t.Helper()
	req := Request{Method: http.MethodGet, Path: "/things"}
	resp := &Response{StatusCode: status, Headers: headers, Body: []byte("payload")}
	return Classify(req, resp)
}

func TestClassifyDispatchTable(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		logKind  LogKind
		noteKind *NotificationKind
		errCode  *ErrorCode
	}{
		{"200 success", 200, LogSuccess, nil, nil},
		{"204 success", 204, LogSuccess, nil, nil},
		{"401 unauthorized", 401, LogHTTPError, kindPtr(NotificationUnauthorized), codePtr(ErrCodeUnauthorized)},
		{"403 forbidden", 403, LogHTTPError, kindPtr(NotificationForbidden), codePtr(ErrCodeUnauthorized)},
		{"404 not found", 404, LogHTTPError, nil, codePtr(ErrCodeHTTP)},
		{"429 rate limited", 429, LogHTTPError, kindPtr(NotificationRateLimited), codePtr(ErrCodeHTTP)},
		{"503 unavailable", 503, LogHTTPError, kindPtr(NotificationServiceUnavailable), codePtr(ErrCodeHTTP)},
		{"500 server error", 500, LogHTTPError, kindPtr(NotificationServerError), codePtr(ErrCodeHTTP)},
		{"599 server error", 599, LogHTTPError, kindPtr(NotificationServerError), codePtr(ErrCodeHTTP)},
		{"400 plain http error", 400, LogHTTPError, nil, codePtr(ErrCodeHTTP)},
		{"405 plain http error", 405, LogHTTPError, nil, codePtr(ErrCodeHTTP)},
		{"418 plain http error", 418, LogHTTPError, nil, codePtr(ErrCodeHTTP)},
		{"301 plain http error", 301, LogHTTPError, nil, codePtr(ErrCodeHTTP)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entry, note, err := classifyStatus(t, tc.status, nil)

			if entry.Kind != tc.logKind {
				t.Errorf("log kind = %v, want %v", entry.Kind, tc.logKind)
			}
			if entry.StatusCode != tc.status {
				t.Errorf("log status = %d, want %d", entry.StatusCode, tc.status)
			}
			if string(entry.Body) != "payload" {
				t.Errorf("log body = %q", entry.Body)
			}

			if tc.noteKind == nil {
				if note != nil {
					t.Errorf("unexpected notification %v", note.Kind)
				}
			} else {
				if note == nil {
					t.Fatalf("expected notification %v", *tc.noteKind)
				}
				if note.Kind != *tc.noteKind {
					t.Errorf("notification kind = %v, want %v", note.Kind, *tc.noteKind)
				}
				if note.StatusCode != tc.status {
					t.Errorf("notification status = %d, want %d", note.StatusCode, tc.status)
				}
			}

			if tc.errCode == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			} else {
				e, ok := err.(*Error)
				if !ok {
					t.Fatalf("expected *Error, got %T (%v)", err, err)
				}
				if e.Code != *tc.errCode {
					t.Errorf("error code = %v, want %v", e.Code, *tc.errCode)
				}
				if e.StatusCode != tc.status {
					t.Errorf("error status = %d, want %d", e.StatusCode, tc.status)
				}
			}
		})
	}
}

func TestClassifyRateLimitedParsesRetryAfter(t *testing.T) {
	entry, note, err := classifyStatus(t, 429, map[string]string{"Retry-After": "120"})

	if entry.Kind != LogHTTPError || entry.StatusCode != 429 {
		t.Errorf("log = %v/%d", entry.Kind, entry.StatusCode)
	}
	if note == nil || note.Kind != NotificationRateLimited {
		t.Fatalf("expected rate limited notification, got %v", note)
	}
	if note.RetryAfter == nil || *note.RetryAfter != 120 {
		t.Errorf("retry after = %v, want 120", note.RetryAfter)
	}
	if !IsHTTP(err) {
		t.Errorf("expected http error, got %v", err)
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("integer seconds", func(t *testing.T) {
		got := parseRetryAfter("90", now)
		if got == nil || *got != 90 {
			t.Errorf("got %v, want 90", got)
		}
	})

	t.Run("http date in the future", func(t *testing.T) {
		value := now.Add(2 * time.Minute).Format(http.TimeFormat)
		got := parseRetryAfter(value, now)
		if got == nil || *got != 120 {
			t.Errorf("got %v, want 120", got)
		}
	})

	t.Run("http date in the past is absent", func(t *testing.T) {
		value := now.Add(-time.Hour).Format(http.TimeFormat)
		if got := parseRetryAfter(value, now); got != nil {
			t.Errorf("got %v, want nil", *got)
		}
	})

	t.Run("negative seconds is absent", func(t *testing.T) {
		if got := parseRetryAfter("-5", now); got != nil {
			t.Errorf("got %v, want nil", *got)
		}
	})

	t.Run("garbage is absent", func(t *testing.T) {
		if got := parseRetryAfter("soon", now); got != nil {
			t.Errorf("got %v, want nil", *got)
		}
	})

	t.Run("empty is absent", func(t *testing.T) {
		if got := parseRetryAfter("", now); got != nil {
			t.Errorf("got %v, want nil", *got)
		}
	})
}

func kindPtr(k NotificationKind) *NotificationKind { return &k }
func codePtr(c ErrorCode) *ErrorCode               { return &c }
