package ethlink_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethlink/ethlink-go/pkg/board"
	"github.com/ethlink/ethlink-go/pkg/eventloop"
	"github.com/ethlink/ethlink-go/pkg/events"
	"github.com/ethlink/ethlink-go/pkg/link"
	linklog "github.com/ethlink/ethlink-go/pkg/log"
	"github.com/ethlink/ethlink-go/pkg/netstack"
	"github.com/ethlink/ethlink-go/pkg/sim"
	"github.com/ethlink/ethlink-go/pkg/status"
)

// node is a complete simulated device: loops, driver library, network
// stack, controller and capture file.
type node struct {
	sys     *eventloop.Loop
	app     *eventloop.Loop
	lib     *sim.Library
	stack   *netstack.Stack
	ctrl    *link.Controller
	capture *linklog.FileLogger
	events  chan events.Event
}

func newNode(t *testing.T) *node {
	t.Helper()

	n := &node{
		sys:    eventloop.New(eventloop.Config{Name: "sys"}),
		app:    eventloop.New(eventloop.Config{Name: "app"}),
		events: make(chan events.Event, 32),
	}
	require.NoError(t, n.app.Start())
	t.Cleanup(func() {
		_ = n.app.Stop()
		_ = n.sys.Stop()
	})

	_, err := n.app.Register(events.Topic, eventloop.AnyID, func(_ eventloop.Base, _ eventloop.ID, data any) {
		n.events <- data.(events.Event)
	})
	require.NoError(t, err)

	n.capture, err = linklog.NewFileLogger(filepath.Join(t.TempDir(), "link.elog"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = n.capture.Close() })

	cfg := board.Default()
	cfg.Netif.StaticAddress = "192.0.2.10/24"
	cfg.Netif.Gateway = "192.0.2.1"

	n.lib = sim.NewLibrary(n.sys, sim.LibraryConfig{AutoCarrier: true})
	n.stack = netstack.New(n.sys, netstack.Config{})
	n.ctrl, err = link.NewController(link.Config{
		Board:   cfg,
		Library: n.lib,
		Stack:   n.stack,
		System:  n.sys,
		App:     n.app,
		Capture: n.capture,
	})
	require.NoError(t, err)
	return n
}

func (n *node) next(t *testing.T) events.Event {
	t.Helper()
	select {
	case ev := <-n.events:
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for network event")
		return events.Event{}
	}
}

func (n *node) captured(t *testing.T, cat linklog.Category) []linklog.Event {
	t.Helper()
	evs, err := linklog.ReadAll(n.capture.Path(), linklog.Filter{Category: &cat})
	require.NoError(t, err)
	return evs
}

// TestE2E_LinkLifecycle runs a full start, cable pull, cable reinsert and
// stop against the simulated driver and the userspace stack.
func TestE2E_LinkLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	n := newNode(t)

	require.NoError(t, n.ctrl.Start())
	assert.Equal(t, link.StateRunning, n.ctrl.State())
	session := n.ctrl.Session()
	require.NotEmpty(t, session)

	assert.Equal(t, events.LinkStarted, n.next(t).Kind)
	assert.Equal(t, events.LinkConnected, n.next(t).Kind)

	got := n.next(t)
	require.Equal(t, events.AddressAcquired, got.Kind)
	assert.Equal(t, "192.0.2.10", got.IP.Addr.String())
	assert.Equal(t, "255.255.255.0", got.IP.Mask.String())
	assert.Equal(t, "192.0.2.1", got.IP.Gateway.String())

	simLink, ok := n.ctrl.Link().(*sim.Link)
	require.True(t, ok)

	simLink.SetCarrier(false)
	assert.Equal(t, events.LinkDisconnected, n.next(t).Kind)

	simLink.SetCarrier(true)
	assert.Equal(t, events.LinkConnected, n.next(t).Kind)
	assert.Equal(t, events.AddressAcquired, n.next(t).Kind)

	require.NoError(t, n.ctrl.Stop())
	assert.Equal(t, events.LinkStopped, n.next(t).Kind)
	assert.Equal(t, link.StateStopped, n.ctrl.State())
	assert.Nil(t, n.ctrl.Link())
	assert.False(t, n.stack.Initialized())

	// Nothing is forwarded once stopped.
	select {
	case ev := <-n.events:
		t.Fatalf("unexpected event after stop: %s", ev.Kind)
	case <-time.After(50 * time.Millisecond):
	}

	var kinds []string
	for _, ev := range n.captured(t, linklog.CategoryLink) {
		assert.Equal(t, session, ev.SessionID)
		kinds = append(kinds, ev.Link.Kind)
	}
	assert.Equal(t, []string{
		"LINK_STARTED", "LINK_CONNECTED", "ADDRESS_ACQUIRED",
		"LINK_DISCONNECTED", "LINK_CONNECTED", "ADDRESS_ACQUIRED",
		"LINK_STOPPED",
	}, kinds)
}

// TestE2E_InstallFailureThenRestart checks that a failed start releases
// everything and a later start succeeds under a new session.
func TestE2E_InstallFailureThenRestart(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	n := newNode(t)
	n.lib.InjectFault(sim.OpInstall, nil)

	err := n.ctrl.Start()
	require.Error(t, err)
	assert.Equal(t, status.DriverInstallFailed, status.CodeOf(err))
	assert.Equal(t, link.StateStopped, n.ctrl.State())
	assert.False(t, n.stack.Initialized())
	failed := n.ctrl.Session()

	errs := n.captured(t, linklog.CategoryError)
	require.Len(t, errs, 1)
	assert.Equal(t, "DRIVER_INSTALL_FAILED", errs[0].Error.Code)
	require.NotNil(t, errs[0].Error.DriverStatus)
	assert.Equal(t, sim.StatusInvalidState, *errs[0].Error.DriverStatus)

	require.NoError(t, n.ctrl.Start())
	assert.NotEqual(t, failed, n.ctrl.Session())
	assert.Equal(t, events.LinkStarted, n.next(t).Kind)
	assert.Equal(t, events.LinkConnected, n.next(t).Kind)
	assert.Equal(t, events.AddressAcquired, n.next(t).Kind)

	require.NoError(t, n.ctrl.Stop())
	assert.Equal(t, events.LinkStopped, n.next(t).Kind)
}

// TestE2E_StopWithoutStart checks that stopping an idle controller is
// rejected without touching the driver or the stack.
func TestE2E_StopWithoutStart(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	n := newNode(t)
	err := n.ctrl.Stop()
	assert.Equal(t, status.InvalidState, status.CodeOf(err))
	assert.False(t, n.stack.Initialized())
	assert.Empty(t, n.captured(t, linklog.CategoryLink))
}
