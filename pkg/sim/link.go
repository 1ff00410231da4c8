package sim

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/ethlink/ethlink-go/pkg/driver"
	"github.com/ethlink/ethlink-go/pkg/eventloop"
	"github.com/ethlink/ethlink-go/pkg/status"
)

// Link errors.
var (
	ErrLinkDown  = errors.New("link is down")
	ErrUninstall = errors.New("link driver uninstalled")
)

// Link is a simulated installed link driver.
type Link struct {
	lib  *Library
	mac  *MAC
	phy  *PHY
	addr net.HardwareAddr

	mu          sync.Mutex
	started     bool
	plugged     bool
	uninstalled bool
	peer        *Link
	receiver    func(frame []byte) error

	txFrames, rxFrames, dropped int
}

func newLink(lib *Library, mac *MAC, phy *PHY, addr net.HardwareAddr) *Link {
	return &Link{lib: lib, mac: mac, phy: phy, addr: addr}
}

// Start starts the driver state machine and posts EventStart.
func (l *Link) Start() error {
	if err := l.lib.takeFault(OpStart); err != nil {
		return err
	}
	l.mu.Lock()
	if l.uninstalled {
		l.mu.Unlock()
		return ErrUninstall
	}
	if l.started {
		l.mu.Unlock()
		return &status.DriverError{Status: StatusInvalidState, Msg: "link already started"}
	}
	l.started = true
	if l.lib.config.AutoCarrier {
		l.plugged = true
	}
	connect := l.plugged
	l.mu.Unlock()

	l.lib.debugLog("sim link started", "mac", l.addr.String(), "phy", l.phy.Type().String())
	l.post(driver.EventStart)
	if connect {
		l.post(driver.EventConnected)
	}
	return nil
}

// Stop stops the driver state machine and posts EventStop. No disconnect
// event is posted for a plugged link.
func (l *Link) Stop() error {
	if err := l.lib.takeFault(OpStop); err != nil {
		return err
	}
	l.mu.Lock()
	if !l.started {
		l.mu.Unlock()
		return &status.DriverError{Status: StatusInvalidState, Msg: "link not started"}
	}
	l.started = false
	l.mu.Unlock()

	l.post(driver.EventStop)
	return nil
}

// Uninstall releases the driver. A started link cannot be uninstalled.
func (l *Link) Uninstall() error {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return &status.DriverError{Status: StatusInvalidState, Msg: "link still started"}
	}
	if l.uninstalled {
		l.mu.Unlock()
		return ErrUninstall
	}
	l.uninstalled = true
	l.receiver = nil
	peer := l.peer
	l.peer = nil
	l.mu.Unlock()

	if peer != nil {
		peer.disconnectPeer(l)
	}
	return nil
}

// HardwareAddr returns the MAC address.
func (l *Link) HardwareAddr() (net.HardwareAddr, error) {
	out := make(net.HardwareAddr, len(l.addr))
	copy(out, l.addr)
	return out, nil
}

// SetReceiver installs the inbound frame callback.
func (l *Link) SetReceiver(fn func(frame []byte) error) {
	l.mu.Lock()
	l.receiver = fn
	l.mu.Unlock()
}

// SetCarrier plugs or unplugs the medium. On a started link a change posts
// EventConnected or EventDisconnected.
func (l *Link) SetCarrier(up bool) {
	l.mu.Lock()
	changed := l.plugged != up
	l.plugged = up
	started := l.started
	l.mu.Unlock()

	if !changed || !started {
		return
	}
	if up {
		l.post(driver.EventConnected)
	} else {
		l.post(driver.EventDisconnected)
	}
}

// Carrier reports whether the medium is plugged.
func (l *Link) Carrier() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.plugged
}

// Up reports whether the link is started with the medium plugged.
func (l *Link) Up() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.started && l.plugged
}

// Started reports whether the driver state machine runs.
func (l *Link) Started() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.started
}

// Transmit sends frame to the cabled peer. Frames are dropped silently when
// no peer is connected or the peer is down.
func (l *Link) Transmit(frame []byte) error {
	l.mu.Lock()
	if !l.started || !l.plugged {
		l.mu.Unlock()
		return ErrLinkDown
	}
	peer := l.peer
	l.txFrames++
	l.mu.Unlock()

	if peer == nil {
		l.mu.Lock()
		l.dropped++
		l.mu.Unlock()
		return nil
	}
	buf := make([]byte, len(frame))
	copy(buf, frame)
	peer.deliver(buf)
	return nil
}

// Counters returns transmitted, received and dropped frame counts.
func (l *Link) Counters() (tx, rx, dropped int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.txFrames, l.rxFrames, l.dropped
}

func (l *Link) deliver(frame []byte) {
	l.mu.Lock()
	fn := l.receiver
	up := l.started && l.plugged
	if !up || fn == nil {
		l.dropped++
		l.mu.Unlock()
		return
	}
	l.rxFrames++
	l.mu.Unlock()

	if err := fn(frame); err != nil {
		l.lib.debugLog("sim link receiver rejected frame", "mac", l.addr.String(), "error", err)
	}
}

func (l *Link) disconnectPeer(p *Link) {
	l.mu.Lock()
	if l.peer == p {
		l.peer = nil
	}
	l.mu.Unlock()
}

func (l *Link) post(id eventloop.ID) {
	err := l.lib.sys.Post(context.Background(), driver.EventBase, id, driver.Link(l), eventloop.WaitForever)
	if err != nil && l.lib.config.Logger != nil {
		l.lib.config.Logger.Error("sim link failed to post event", "event", driver.EventName(id), "error", err)
	}
}

// Connect cables a and b together and plugs both. Unplug removes the cable.
func Connect(a, b *Link) {
	a.mu.Lock()
	a.peer = b
	a.mu.Unlock()
	b.mu.Lock()
	b.peer = a
	b.mu.Unlock()

	a.SetCarrier(true)
	b.SetCarrier(true)
}

// Unplug removes the cable from l and its peer and drops both carriers.
func Unplug(l *Link) {
	l.mu.Lock()
	peer := l.peer
	l.peer = nil
	l.mu.Unlock()

	l.SetCarrier(false)
	if peer != nil {
		peer.disconnectPeer(l)
		peer.SetCarrier(false)
	}
}

// Compile-time interface satisfaction check.
var _ driver.Link = (*Link)(nil)
