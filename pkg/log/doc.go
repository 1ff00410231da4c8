// Package log captures link lifecycle events for later inspection.
//
// Capture is separate from operational logging (slog): every controller state
// transition, every normalized link event and every classified error is
// recorded as an Event tagged with the session that produced it. A session
// starts with each successful or attempted Start of a link controller.
//
// # Basic Usage
//
//	// Console output during development
//	cfg.Capture = log.NewSlogAdapter(slog.Default())
//
//	// Binary capture file
//	fl, _ := log.NewFileLogger("/var/log/ethlink/eth0.elog")
//	cfg.Capture = fl
//
//	// Both
//	cfg.Capture = log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl)
//
// # Event Types
//
// Events are captured at four layers (driver, netif, events, lifecycle) and
// carry one of three payloads: StateChangeEvent, LinkEvent or ErrorEventData.
//
// # File Format
//
// Capture files are a stream of CBOR-encoded events with integer keys
// (.elog extension). The ethlink-log tool views, summarizes and exports them.
package log
