// Package sse implements an incremental parser for the Server-Sent Events
// wire protocol, consumed line by line from a streaming HTTP response body.
//
// Unlike the WHATWG eventsource algorithm, frame boundaries are not derived
// from blank lines: a frame is considered complete as soon as a new "event"
// or "data" field arrives after a finished frame. Several upstream APIs emit
// streams that rely on this behavior, so it is kept intentionally.
//
// Parser is the line-level state machine; Reader drives a Parser from an
// io.ReadCloser and is what httpclient hands out for streaming responses.
package sse
