package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ethlink/ethlink-go/pkg/log"
)

// createTestLogFile writes events to a capture file in a temp directory.
func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.elog")
	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

// sessionEvents is a start that failed at install, followed by a clean run.
func sessionEvents() []log.Event {
	ts := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	status := 0x101
	return []log.Event{
		{Timestamp: ts, SessionID: "aaaaaaaa-1111", Layer: log.LayerLifecycle, Category: log.CategoryState,
			StateChange: &log.StateChangeEvent{Entity: log.StateEntityController, OldState: "STOPPED", NewState: "STARTING", Reason: "start"}},
		{Timestamp: ts.Add(time.Millisecond), SessionID: "aaaaaaaa-1111", Layer: log.LayerDriver, Category: log.CategoryError,
			Error: &log.ErrorEventData{Layer: log.LayerDriver, Message: "install: DRIVER_INSTALL_FAILED (status 257)", Code: "DRIVER_INSTALL_FAILED", DriverStatus: &status, Op: "install", Fatal: true}},
		{Timestamp: ts.Add(2 * time.Millisecond), SessionID: "aaaaaaaa-1111", Layer: log.LayerLifecycle, Category: log.CategoryState,
			StateChange: &log.StateChangeEvent{Entity: log.StateEntityController, OldState: "STARTING", NewState: "STOPPED", Reason: "start failed"}},
		{Timestamp: ts.Add(time.Second), SessionID: "bbbbbbbb-2222", Layer: log.LayerEvents, Category: log.CategoryLink, Interface: "ETH",
			Link: &log.LinkEvent{Kind: "LINK_STARTED"}},
		{Timestamp: ts.Add(time.Second + time.Millisecond), SessionID: "bbbbbbbb-2222", Layer: log.LayerEvents, Category: log.CategoryLink, Interface: "ETH",
			Link: &log.LinkEvent{Kind: "LINK_CONNECTED"}},
		{Timestamp: ts.Add(2 * time.Second), SessionID: "bbbbbbbb-2222", Layer: log.LayerEvents, Category: log.CategoryLink, Interface: "ETH",
			Link: &log.LinkEvent{Kind: "ADDRESS_ACQUIRED", Addr: "192.0.2.10", Mask: "255.255.255.0", Gateway: "192.0.2.1", PostError: "queue full"}},
	}
}
