package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethlink/ethlink-go/pkg/log"
)

func TestExportJSONL(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	out := filepath.Join(t.TempDir(), "out.jsonl")

	if err := RunExport(path, "jsonl", out, FilterOptions{Category: "link"}); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	var ev log.Event
	if err := json.Unmarshal([]byte(lines[2]), &ev); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if ev.Link == nil || ev.Link.Addr != "192.0.2.10" {
		t.Errorf("unexpected last event: %+v", ev)
	}
}

func TestExportCSV(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if err := export(reader, "csv", &buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("csv parse failed: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("expected header + 6 rows, got %d", len(rows))
	}
	if rows[0][0] != "timestamp" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	errRow := rows[2]
	if errRow[5] != "DRIVER_INSTALL_FAILED" || errRow[7] != "257" {
		t.Errorf("unexpected error row: %v", errRow)
	}
	if rows[6][4] != "ETH" {
		t.Errorf("expected interface ETH, got %q", rows[6][4])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	if err := RunExport(path, "xml", "", FilterOptions{}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRunFilterWritesCapture(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	out := filepath.Join(t.TempDir(), "errors.elog")

	var buf bytes.Buffer
	if err := RunFilter(path, out, FilterOptions{Category: "error"}, &buf); err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Filtered 1 events") {
		t.Errorf("unexpected output: %q", buf.String())
	}

	events, err := log.ReadAll(out, log.Filter{})
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 1 || events[0].Error == nil {
		t.Fatalf("expected one error event, got %+v", events)
	}
}
