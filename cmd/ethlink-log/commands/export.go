package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ethlink/ethlink-go/pkg/log"
)

// RunExport writes the matching events of path as JSON lines or CSV.
// An empty output writes to stdout.
func RunExport(path, format, output string, opts FilterOptions) error {
	filter, err := opts.Build()
	if err != nil {
		return err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return export(reader, format, w)
}

func export(reader *log.Reader, format string, w io.Writer) error {
	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	_, err := forEach(reader, func(event log.Event) error {
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
		return nil
	})
	return err
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"timestamp", "session_id", "layer", "category", "interface", "type", "detail", "driver_status"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	_, err := forEach(reader, func(event log.Event) error {
		detail, drvStatus := "", ""
		switch {
		case event.StateChange != nil:
			detail = event.StateChange.NewState
		case event.Link != nil:
			detail = event.Link.Addr
		case event.Error != nil:
			detail = event.Error.Message
			if event.Error.DriverStatus != nil {
				drvStatus = strconv.Itoa(*event.Error.DriverStatus)
			}
		}
		row := []string{
			event.Timestamp.UTC().Format(timeFormat),
			event.SessionID,
			event.Layer.String(),
			event.Category.String(),
			event.Interface,
			typeLabel(event),
			detail,
			drvStatus,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		return nil
	})
	cw.Flush()
	if err != nil {
		return err
	}
	return cw.Error()
}
