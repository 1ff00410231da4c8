package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ethlink/ethlink-go/pkg/log"
)

// FilterOptions holds the filter flags shared by every command.
type FilterOptions struct {
	SessionID string
	Layer     string
	Category  string
	Kind      string
	TimeStart string
	TimeEnd   string
}

// Build converts the flag values into a log.Filter.
func (o FilterOptions) Build() (log.Filter, error) {
	filter := log.Filter{
		SessionID: o.SessionID,
		Kind:      strings.ToUpper(o.Kind),
	}

	if o.Layer != "" {
		l, ok := log.ParseLayer(strings.ToUpper(o.Layer))
		if !ok {
			return log.Filter{}, fmt.Errorf("invalid layer: %s (valid: driver, netif, events, lifecycle)", o.Layer)
		}
		filter.Layer = &l
	}

	if o.Category != "" {
		c, ok := log.ParseCategory(strings.ToUpper(o.Category))
		if !ok {
			return log.Filter{}, fmt.Errorf("invalid category: %s (valid: state, link, error)", o.Category)
		}
		filter.Category = &c
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	return filter, nil
}

// RunFilter copies the events of path matching opts into output.
func RunFilter(path, output string, opts FilterOptions, w io.Writer) error {
	filter, err := opts.Build()
	if err != nil {
		return err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	count, err := forEach(reader, func(event log.Event) error {
		logger.Log(event)
		return nil
	})
	if cerr := logger.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Filtered %d events to %s\n", count, output)
	return nil
}

// forEach calls fn for every event until EOF and returns the event count.
func forEach(reader *log.Reader, fn func(log.Event) error) (int, error) {
	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("failed to read event: %w", err)
		}
		if err := fn(event); err != nil {
			return count, err
		}
		count++
	}
}
