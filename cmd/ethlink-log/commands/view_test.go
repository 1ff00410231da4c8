package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestViewFormatsEveryPayload(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())

	var buf bytes.Buffer
	if err := RunView(path, FilterOptions{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	want := []string{
		"2026-03-02T09:00:00.000000Z [aaaaaaaa] LIFECYCLE STATE CONTROLLER",
		"  STOPPED -> STARTING",
		"  Reason: start",
		"DRIVER ERROR DRIVER_INSTALL_FAILED",
		"  Op: install",
		"  Driver status: 0x101",
		"  Fatal: start aborted",
		"[bbbbbbbb] EVENTS LINK LINK_CONNECTED",
		"  Address: 192.0.2.10 mask 255.255.255.0 gw 192.0.2.1",
		"  Not delivered: queue full",
	}
	for _, s := range want {
		if !strings.Contains(output, s) {
			t.Errorf("expected %q in output:\n%s", s, output)
		}
	}
}

func TestViewFiltersByKind(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())

	var buf bytes.Buffer
	if err := RunView(path, FilterOptions{Kind: "link_connected"}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "LINK_CONNECTED") {
		t.Error("expected LINK_CONNECTED in output")
	}
	if strings.Contains(output, "LINK_STARTED") || strings.Contains(output, "CONTROLLER") {
		t.Errorf("unexpected events in output:\n%s", output)
	}
}

func TestViewFiltersBySessionAndLayer(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())

	var buf bytes.Buffer
	opts := FilterOptions{SessionID: "aaaaaaaa-1111", Layer: "lifecycle"}
	if err := RunView(path, opts, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	if n := strings.Count(buf.String(), "LIFECYCLE STATE"); n != 2 {
		t.Errorf("expected 2 lifecycle events, got %d", n)
	}
	if strings.Contains(buf.String(), "DRIVER ERROR") {
		t.Error("driver event should be filtered out")
	}
}

func TestViewRejectsBadFilter(t *testing.T) {
	path := createTestLogFile(t, nil)

	if err := RunView(path, FilterOptions{Layer: "wire"}, &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown layer")
	}
	if err := RunView(path, FilterOptions{Category: "frame"}, &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown category")
	}
	if err := RunView(path, FilterOptions{TimeStart: "yesterday"}, &bytes.Buffer{}); err == nil {
		t.Error("expected error for bad time-start")
	}
}

func TestViewMissingFile(t *testing.T) {
	if err := RunView("/nonexistent/capture.elog", FilterOptions{}, &bytes.Buffer{}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestShortenSessionID(t *testing.T) {
	tests := map[string]string{
		"":                 "-",
		"abc":              "abc",
		"0123456789abcdef": "01234567",
	}
	for in, want := range tests {
		if got := shortenSessionID(in); got != want {
			t.Errorf("shortenSessionID(%q) = %q, want %q", in, got, want)
		}
	}
}
