package sse

// Frame is one complete server-sent event as accumulated from one or more
// wire lines. Fields are pointers because "absent" and "empty" are different
// things on this protocol: `data:` with nothing after the colon yields an
// empty string, while a frame without any data line has Data == nil.
type Frame struct {
	// Data is the event payload. Multiple data lines within one frame are
	// joined with "\n" in arrival order.
	Data *string
	// Event is the event type (from "event:" lines).
	Event *string
	// ID is the last seen event ID (from "id:" lines).
	ID *string
	// Retry is the reconnection hint in milliseconds (from "retry:" lines).
	// Non-numeric retry values are dropped and leave Retry nil.
	Retry *int64
}

// DataString returns the payload, or "" when no data field is present.
func (f *Frame) DataString() string {
	if f.Data == nil {
		return ""
	}
	return *f.Data
}

// EventString returns the event type, or "" when no event field is present.
func (f *Frame) EventString() string {
	if f.Event == nil {
		return ""
	}
	return *f.Event
}
