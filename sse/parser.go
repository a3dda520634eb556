package sse

import (
	"strconv"
	"strings"
)

// Parser is the incremental SSE state machine. Feed it one line at a time in
// arrival order; it emits at most one complete Frame per line. Call Flush
// after the stream ends to obtain a pending unterminated frame.
//
// The zero value is not usable; construct with NewParser. A Parser is bound
// to a single connection and is not safe for concurrent use.
type Parser struct {
	data  *string
	event *string
	id    *string
	retry *int64
}

// NewParser returns a parser with no accumulated state.
func NewParser() *Parser {
	return &Parser{}
}

// Feed consumes one line and returns a completed frame, if this line finished
// one. Frame boundaries are inferred from new "event"/"data" fields arriving
// after a complete prior frame, not from blank lines.
func (p *Parser) Feed(line string) (*Frame, bool) {
	// Comment line, no state change.
	if strings.HasPrefix(line, ":") {
		return nil, false
	}

	field, value := splitField(line)
	switch field {
	case "event":
		if p.data != nil {
			// A prior frame is complete; emit it before starting the next.
			frame := p.take()
			v := value
			p.event = &v
			return frame, true
		}
		v := value
		p.event = &v

	case "data":
		switch {
		case p.data != nil && p.event != nil:
			// New data after a complete (event, data) pair starts the next frame.
			frame := p.take()
			v := value
			p.data = &v
			return frame, true
		case p.data == nil:
			v := value
			p.data = &v
		default:
			// Multi-line data concatenation.
			*p.data += "\n" + value
		}

	case "id":
		v := value
		p.id = &v

	case "retry":
		if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
			p.retry = &ms
		}
		// Non-numeric retry values are silently dropped.
	}
	// Unknown fields (including blank lines) are ignored.

	return nil, false
}

// Flush emits any pending unterminated frame after the stream has ended.
// Calling Flush on a parser with no accumulated state emits nothing, so it
// is safe to call more than once.
func (p *Parser) Flush() (*Frame, bool) {
	if p.data == nil && p.event == nil && p.id == nil && p.retry == nil {
		return nil, false
	}
	return p.take(), true
}

// take snapshots the accumulated state into a frame and resets the parser.
func (p *Parser) take() *Frame {
	frame := &Frame{
		Data:  p.data,
		Event: p.event,
		ID:    p.id,
		Retry: p.retry,
	}
	p.data, p.event, p.id, p.retry = nil, nil, nil, nil
	return frame
}

// splitField splits an SSE line into field name and value on the first colon.
// Colons inside the value are preserved verbatim. A line without a colon is a
// field with an empty value.
func splitField(line string) (field, value string) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return line, ""
	}
	field = line[:idx]
	value = line[idx+1:]
	// At most one leading space after the colon is stripped.
	if value != "" && value[0] == ' ' {
		value = value[1:]
	}
	return field, value
}
