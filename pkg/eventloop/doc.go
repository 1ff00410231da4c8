// Package eventloop provides the event dispatch service used both as the
// system loop (driver and IP events) and as the application-facing channel
// (normalized link events).
//
// Handlers are registered per event base and ID (or AnyID for the whole
// base). Each Loop runs one dispatch goroutine, so handlers of one loop are
// invoked serially, one event at a time, in post order.
//
// # Blocking posts
//
// Post takes a timeout. WaitForever blocks the caller until queue space is
// available (or the context is cancelled); NoWait fails immediately with
// ErrQueueFull. A handler that posts onto another loop with WaitForever
// stalls its own loop while the target queue is full.
//
//	loop := eventloop.New(eventloop.Config{Name: "app", QueueSize: 32})
//	if err := loop.Start(); err != nil {
//	    return err
//	}
//	defer loop.Stop()
//
//	reg, _ := loop.Register("NETWORK_EVENTS", eventloop.AnyID, func(base eventloop.Base, id eventloop.ID, data any) {
//	    // ...
//	})
//	defer loop.Unregister(reg)
package eventloop
