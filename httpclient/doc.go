// Package httpclient provides a streaming-capable HTTP client with typed
// error classification and broadcast observability channels.
//
// Every completed exchange is classified by status code into a log entry
// (always published on Logs) and, for specific codes, a notification
// (published on Notifications). Both channels are fan-out brokers: any number
// of subscribers can observe exchanges without coordinating with the caller
// or with each other.
//
// Streaming responses are decoded as Server-Sent Events via the sse package;
// Stream wraps them into a typed event sequence that survives individual
// undecodable frames.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Auth:    httpclient.BearerAuth("my-token"),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/users/123",
//	})
//
// # Observing Exchanges
//
//	go func() {
//	    for note := range client.Notifications().Subscribe(ctx) {
//	        if note.Kind == httpclient.NotificationRateLimited {
//	            ...
//	        }
//	    }
//	}()
//
// # Typed Event Streams
//
//	events, err := httpclient.Stream[Progress](ctx, client, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/jobs/42/events",
//	})
//	for {
//	    p, err := events.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
package httpclient
