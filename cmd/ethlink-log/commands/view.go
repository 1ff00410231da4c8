// Package commands implements the ethlink-log CLI commands.
package commands

import (
	"fmt"
	"io"

	"github.com/ethlink/ethlink-go/pkg/log"
)

const timeFormat = "2006-01-02T15:04:05.000000Z"

// RunView prints the matching events of path in human-readable form.
func RunView(path string, opts FilterOptions, w io.Writer) error {
	filter, err := opts.Build()
	if err != nil {
		return err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	_, err = forEach(reader, func(event log.Event) error {
		formatEvent(w, event)
		return nil
	})
	return err
}

// formatEvent writes one event: a header line, then indented details.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format(timeFormat)
	fmt.Fprintf(w, "%s [%s] %s %s %s\n",
		ts, shortenSessionID(event.SessionID), event.Layer, event.Category, typeLabel(event))

	switch {
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Link != nil:
		formatLinkDetails(w, event.Link)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

func typeLabel(event log.Event) string {
	switch {
	case event.StateChange != nil:
		return event.StateChange.Entity.String()
	case event.Link != nil:
		return event.Link.Kind
	case event.Error != nil:
		if event.Error.Code != "" {
			return event.Error.Code
		}
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}
	return id
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatLinkDetails(w io.Writer, ev *log.LinkEvent) {
	if ev.Addr != "" {
		fmt.Fprintf(w, "  Address: %s mask %s gw %s\n", ev.Addr, ev.Mask, ev.Gateway)
	}
	if ev.PostError != "" {
		fmt.Fprintf(w, "  Not delivered: %s\n", ev.PostError)
	}
}

func formatErrorDetails(w io.Writer, ev *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", ev.Layer)
	if ev.Op != "" {
		fmt.Fprintf(w, "  Op: %s\n", ev.Op)
	}
	fmt.Fprintf(w, "  Message: %s\n", ev.Message)
	if ev.DriverStatus != nil {
		fmt.Fprintf(w, "  Driver status: 0x%x\n", *ev.DriverStatus)
	}
	if ev.Fatal {
		fmt.Fprintln(w, "  Fatal: start aborted")
	}
}
