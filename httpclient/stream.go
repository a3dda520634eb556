package httpclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/sse"
)

// EventStream is a lazy sequence of typed events decoded from a server-sent
// event stream. A frame whose payload fails to decode is logged, published as
// a decoding entry on the client's log channel, and skipped; one malformed
// event does not terminate a long-lived stream.
type EventStream[T any] struct {
	client *Client
	req    Request
	resp   *StreamResponse
	events sse.Reader
	log    *logger.Logger
}

// Stream opens a server-sent event connection for req and decodes each
// frame's payload into T. A non-2xx initial status is returned as the
// classified error before any frame is read.
func Stream[T any](ctx context.Context, c *Client, req Request) (*EventStream[T], error) {
	resp, err := c.DoStream(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Events == nil {
		_ = resp.Close()
		return nil, NewInvalidResponseError(fmt.Sprintf(
			"expected text/event-stream, got %q", resp.Header("Content-Type")))
	}

	return &EventStream[T]{
		client: c,
		req:    req,
		resp:   resp,
		events: resp.Events,
		log:    c.log,
	}, nil
}

// Next returns the next decoded event. Frames without a data field are
// skipped; frames that fail to decode are reported and skipped. Returns
// io.EOF when the stream ends.
func (s *EventStream[T]) Next() (T, error) {
	var zero T
	for {
		frame, err := s.events.Next()
		if err != nil {
			return zero, err
		}
		if frame.Data == nil {
			continue
		}

		var v T
		if err := json.Unmarshal([]byte(*frame.Data), &v); err != nil {
			target := fmt.Sprintf("%T", zero)
			s.client.logs.Publish(LogEntry{
				Kind:       LogDecodingError,
				Request:    s.req,
				Body:       []byte(*frame.Data),
				Err:        err,
				TargetType: target,
			})
			s.log.Warn("skipping undecodable event", logger.Fields(
				"target_type", target,
				logger.FieldError, err.Error(),
			))
			continue
		}
		return v, nil
	}
}

// Close releases the underlying connection.
func (s *EventStream[T]) Close() error {
	return s.resp.Close()
}
