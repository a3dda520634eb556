package sse

import (
	"bufio"
	"io"
)

const (
	initialLineBuffer = 64 * 1024
	maxLineBuffer     = 1024 * 1024
)

// Reader reads server-sent event frames from a stream.
type Reader interface {
	// Next returns the next frame. Returns io.EOF when the stream ends and
	// any pending frame has been flushed.
	Next() (*Frame, error)
	// Close releases the underlying stream.
	Close() error
}

type reader struct {
	scanner *bufio.Scanner
	parser  *Parser
	body    io.ReadCloser
}

// NewReader creates an SSE frame reader from a readable stream. Both LF and
// CRLF line endings are accepted.
func NewReader(body io.ReadCloser) Reader {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineBuffer)
	return &reader{
		scanner: scanner,
		parser:  NewParser(),
		body:    body,
	}
}

// Next feeds lines to the parser until a frame completes. At end of stream
// the parser is flushed once, then io.EOF is returned.
func (r *reader) Next() (*Frame, error) {
	for r.scanner.Scan() {
		if frame, ok := r.parser.Feed(r.scanner.Text()); ok {
			return frame, nil
		}
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	if frame, ok := r.parser.Flush(); ok {
		return frame, nil
	}
	return nil, io.EOF
}

// Close releases the underlying stream.
func (r *reader) Close() error {
	return r.body.Close()
}
