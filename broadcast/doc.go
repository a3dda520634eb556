// Package broadcast provides a generic fan-out broker that distributes each
// published value to every currently registered subscriber.
//
// Subscribers are independent: each Subscribe call creates a private,
// unboundedly buffered sequence, so a slow or stalled subscriber never blocks
// the publisher or other subscribers. Subscriptions are removed when the
// subscriber's context is canceled.
//
// # Usage
//
//	broker := broadcast.NewBroker[string]()
//	ch := broker.Subscribe(ctx)
//	broker.Publish("hello")
package broadcast
