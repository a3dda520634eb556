package httpclient

import (
	"errors"
	"net"
	"strings"
	"testing"
)

func TestErrorCodeString(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeNetwork, "network"},
		{ErrCodeTimeout, "timeout"},
		{ErrCodeInvalidURL, "invalid_url"},
		{ErrCodeInvalidResponse, "invalid_response"},
		{ErrCodeHTTP, "http"},
		{ErrCodeUnauthorized, "unauthorized"},
		{ErrCodeDecoding, "decoding"},
	}
	for _, tc := range tests {
		if got := tc.code.String(); got != tc.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := &net.OpError{Op: "dial", Err: errors.New("connection refused")}
	err := NewNetworkError(cause)

	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		t.Error("expected to unwrap to *net.OpError")
	}
}

func TestErrorMessageIncludesStatus(t *testing.T) {
	err := NewHTTPError(404, []byte("missing"))
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error message %q missing status code", err.Error())
	}
	if string(err.Body) != "missing" {
		t.Errorf("body = %q", err.Body)
	}
}

func TestPredicatesMatchOnlyTheirCode(t *testing.T) {
	network := NewNetworkError(errors.New("boom"))
	timeout := NewTimeoutError(errors.New("deadline"))
	unauthorized := NewUnauthorizedError(401, nil)
	httpErr := NewHTTPError(500, nil)
	decoding := NewDecodingError(errors.New("bad json"), "progress")

	if !IsNetwork(network) || IsNetwork(timeout) {
		t.Error("IsNetwork mismatch")
	}
	if !IsTimeout(timeout) || IsTimeout(network) {
		t.Error("IsTimeout mismatch")
	}
	if !IsUnauthorized(unauthorized) || IsUnauthorized(httpErr) {
		t.Error("IsUnauthorized mismatch")
	}
	if !IsHTTP(httpErr) || IsHTTP(unauthorized) {
		t.Error("IsHTTP mismatch")
	}
	if !IsDecoding(decoding) || IsDecoding(httpErr) {
		t.Error("IsDecoding mismatch")
	}
	if IsNetwork(nil) || IsHTTP(errors.New("plain")) {
		t.Error("predicates must reject nil and untyped errors")
	}
}
