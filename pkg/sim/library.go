package sim

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/ethlink/ethlink-go/pkg/board"
	"github.com/ethlink/ethlink-go/pkg/driver"
	"github.com/ethlink/ethlink-go/pkg/eventloop"
	"github.com/ethlink/ethlink-go/pkg/status"
)

// Driver status codes reported through status.DriverError.
const (
	StatusNoMem        = 0x101
	StatusInvalidArg   = 0x102
	StatusInvalidState = 0x103
)

// Library errors.
var (
	ErrForeignHandle = errors.New("handle was not built by this library")
	ErrFaultInjected = errors.New("injected fault")
)

// Op names a library operation for fault injection.
type Op string

const (
	OpNewMAC  Op = "new_mac"
	OpNewPHY  Op = "new_phy"
	OpInstall Op = "install"
	OpStart   Op = "start"
	OpStop    Op = "stop"
)

// Poster is the system event loop links post on.
type Poster interface {
	Post(ctx context.Context, base eventloop.Base, id eventloop.ID, data any, timeout time.Duration) error
}

// LibraryConfig configures a Library.
type LibraryConfig struct {
	// HardwareAddr is the MAC address of the first installed link. Later
	// links increment the last octet. Default: random locally administered.
	HardwareAddr net.HardwareAddr

	// AutoCarrier brings the carrier up when a link starts.
	AutoCarrier bool

	// Logger receives driver log output. Nil disables logging.
	Logger *slog.Logger
}

// Library is a simulated vendor driver library.
type Library struct {
	sys    Poster
	config LibraryConfig

	mu        sync.Mutex
	installed int
	faults    map[Op]error
}

// NewLibrary creates a library whose links post on sys.
func NewLibrary(sys Poster, cfg LibraryConfig) *Library {
	if len(cfg.HardwareAddr) != 6 {
		cfg.HardwareAddr = randomHardwareAddr()
	}
	return &Library{sys: sys, config: cfg, faults: make(map[Op]error)}
}

// InjectFault makes the next call of op fail with err. A nil err injects a
// driver status error wrapping the ErrFaultInjected message.
func (l *Library) InjectFault(op Op, err error) {
	if err == nil {
		err = &status.DriverError{Status: StatusInvalidState, Msg: ErrFaultInjected.Error()}
	}
	l.mu.Lock()
	l.faults[op] = err
	l.mu.Unlock()
}

// takeFault returns and clears the pending fault for op.
func (l *Library) takeFault(op Op) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.faults[op]
	delete(l.faults, op)
	return err
}

// NewMAC builds a MAC instance.
func (l *Library) NewMAC(cfg board.MACConfig) (driver.MAC, error) {
	if err := l.takeFault(OpNewMAC); err != nil {
		return nil, err
	}
	if cfg.Interface != board.InterfaceRMII && cfg.Interface != board.InterfaceMII {
		return nil, &status.DriverError{Status: StatusInvalidArg, Msg: fmt.Sprintf("data interface %q", cfg.Interface)}
	}
	return &MAC{config: cfg}, nil
}

// NewPHY builds a transceiver instance.
func (l *Library) NewPHY(cfg board.PHYConfig) (driver.PHY, error) {
	if err := l.takeFault(OpNewPHY); err != nil {
		return nil, err
	}
	if cfg.Type < board.PHYIP101 || cfg.Type > board.PHYKSZ80XX {
		return nil, &status.DriverError{Status: StatusInvalidArg, Msg: "unsupported transceiver"}
	}
	return &PHY{config: cfg}, nil
}

// Install combines mac and phy into a Link.
func (l *Library) Install(mac driver.MAC, phy driver.PHY) (driver.Link, error) {
	if err := l.takeFault(OpInstall); err != nil {
		return nil, err
	}
	m, ok := mac.(*MAC)
	if !ok {
		return nil, fmt.Errorf("mac: %w", ErrForeignHandle)
	}
	p, ok := phy.(*PHY)
	if !ok {
		return nil, fmt.Errorf("phy: %w", ErrForeignHandle)
	}
	if m.deleted() || p.deleted() {
		return nil, &status.DriverError{Status: StatusInvalidState, Msg: "sub-driver already deleted"}
	}

	l.mu.Lock()
	addr := make(net.HardwareAddr, 6)
	copy(addr, l.config.HardwareAddr)
	addr[5] += byte(l.installed)
	l.installed++
	l.mu.Unlock()

	return newLink(l, m, p, addr), nil
}

func (l *Library) debugLog(msg string, args ...any) {
	if l.config.Logger != nil {
		l.config.Logger.Debug(msg, args...)
	}
}

func randomHardwareAddr() net.HardwareAddr {
	addr := make(net.HardwareAddr, 6)
	_, _ = rand.Read(addr)
	addr[0] = (addr[0] | 0x02) &^ 0x01 // locally administered, unicast
	addr[5] = 0
	return addr
}

// MAC is a simulated MAC instance.
type MAC struct {
	config board.MACConfig

	mu  sync.Mutex
	del bool
}

// Config returns the configuration the MAC was built with.
func (m *MAC) Config() board.MACConfig {
	return m.config
}

// Del releases the instance. Deleting twice fails.
func (m *MAC) Del() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.del {
		return &status.DriverError{Status: StatusInvalidState, Msg: "mac already deleted"}
	}
	m.del = true
	return nil
}

func (m *MAC) deleted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.del
}

// PHY is a simulated transceiver instance.
type PHY struct {
	config board.PHYConfig

	mu  sync.Mutex
	del bool
}

// Type returns the transceiver variant.
func (p *PHY) Type() board.PHYType {
	return p.config.Type
}

// Del releases the instance. Deleting twice fails.
func (p *PHY) Del() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.del {
		return &status.DriverError{Status: StatusInvalidState, Msg: "phy already deleted"}
	}
	p.del = true
	return nil
}

func (p *PHY) deleted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.del
}

// Compile-time interface satisfaction checks.
var (
	_ driver.Library = (*Library)(nil)
	_ driver.MAC     = (*MAC)(nil)
	_ driver.PHY     = (*PHY)(nil)
)
