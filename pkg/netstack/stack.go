package netstack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/netip"
	"sync"
	"time"

	"github.com/ethlink/ethlink-go/pkg/board"
	"github.com/ethlink/ethlink-go/pkg/driver"
	"github.com/ethlink/ethlink-go/pkg/eventloop"
	"github.com/ethlink/ethlink-go/pkg/netif"
)

// Stack errors.
var (
	ErrNotInitialized = errors.New("network stack not initialized")
	ErrForeignHandle  = errors.New("handle was not created by this stack")
	ErrAttached       = errors.New("handle is attached")
	ErrBadAddress     = errors.New("invalid static address")
)

// Ethernet MTU handed to the port stack.
const mtu = 1500

// Loop is the system event loop: the stack follows link events on it and
// posts IP events to it.
type Loop interface {
	Register(base eventloop.Base, id eventloop.ID, handler eventloop.Handler) (*eventloop.Registration, error)
	Unregister(reg *eventloop.Registration) error
	Post(ctx context.Context, base eventloop.Base, id eventloop.ID, data any, timeout time.Duration) error
}

// Config configures a Stack.
type Config struct {
	// UDPPorts and TCPPorts size the port stack. One extra UDP port is
	// always opened for the DHCP client. Default: 1 each.
	UDPPorts int
	TCPPorts int

	// DHCPTimeout bounds address acquisition. Default: 10s.
	DHCPTimeout time.Duration

	// PollInterval is the idle sleep of the frame poll goroutine.
	// Default: 20ms.
	PollInterval time.Duration

	// Logger receives stack log output. Nil disables logging.
	Logger *slog.Logger
}

func (c *Config) applyDefaults() {
	if c.UDPPorts <= 0 {
		c.UDPPorts = 1
	}
	if c.TCPPorts <= 0 {
		c.TCPPorts = 1
	}
	if c.DHCPTimeout <= 0 {
		c.DHCPTimeout = 10 * time.Second
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 20 * time.Millisecond
	}
}

// Stack is a netif.Stack backed by seqs port stacks.
type Stack struct {
	sys    Loop
	config Config
	logger *slog.Logger

	mu     sync.Mutex
	refs   int
	ifaces map[*Interface]struct{}
}

// New creates a stack that follows and posts events on sys.
func New(sys Loop, cfg Config) *Stack {
	cfg.applyDefaults()
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)}))
	}
	return &Stack{
		sys:    sys,
		config: cfg,
		logger: logger,
		ifaces: make(map[*Interface]struct{}),
	}
}

// Init takes a reference on the stack.
func (s *Stack) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refs++
	if s.refs > 1 {
		return netif.ErrAlreadyInitialized
	}
	s.logger.Debug("network stack initialized")
	return nil
}

// Deinit drops a reference. The last reference fails while interfaces exist.
func (s *Stack) Deinit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refs == 0 {
		return ErrNotInitialized
	}
	if s.refs == 1 && len(s.ifaces) > 0 {
		return fmt.Errorf("%w: %d interfaces remain", ErrAttached, len(s.ifaces))
	}
	s.refs--
	if s.refs == 0 {
		s.logger.Debug("network stack released")
	}
	return nil
}

// Initialized reports whether any reference is held.
func (s *Stack) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refs > 0
}

// NewInterface creates an interface. A configured static address must parse.
func (s *Stack) NewInterface(cfg board.NetifConfig) (netif.Interface, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refs == 0 {
		return nil, ErrNotInitialized
	}

	iface := &Interface{stack: s, config: cfg}
	if cfg.StaticAddress != "" {
		prefix, err := netip.ParsePrefix(cfg.StaticAddress)
		if err != nil || !prefix.Addr().Is4() {
			return nil, fmt.Errorf("%w: %q", ErrBadAddress, cfg.StaticAddress)
		}
		iface.static = prefix
		if cfg.Gateway != "" {
			gw, err := netip.ParseAddr(cfg.Gateway)
			if err != nil {
				return nil, fmt.Errorf("%w: gateway %q", ErrBadAddress, cfg.Gateway)
			}
			iface.gateway = gw
		}
	}
	s.ifaces[iface] = struct{}{}
	return iface, nil
}

// NewGlue creates the glue for link.
func (s *Stack) NewGlue(link driver.Link) (netif.Glue, error) {
	if link == nil {
		return nil, fmt.Errorf("%w: nil link", ErrForeignHandle)
	}
	return &Glue{link: link}, nil
}

// Attach binds glue to iface and starts following the link's events.
func (s *Stack) Attach(ni netif.Interface, ng netif.Glue) error {
	iface, ok := ni.(*Interface)
	if !ok || iface.stack != s {
		return fmt.Errorf("interface: %w", ErrForeignHandle)
	}
	glue, ok := ng.(*Glue)
	if !ok {
		return fmt.Errorf("glue: %w", ErrForeignHandle)
	}
	return iface.attach(glue)
}

// DeleteGlue detaches glue from its interface.
func (s *Stack) DeleteGlue(ng netif.Glue) error {
	glue, ok := ng.(*Glue)
	if !ok {
		return fmt.Errorf("glue: %w", ErrForeignHandle)
	}
	if iface := glue.interfaceOf(); iface != nil {
		return iface.detach(glue)
	}
	return nil
}

// Destroy releases iface. Its glue must have been deleted.
func (s *Stack) Destroy(ni netif.Interface) error {
	iface, ok := ni.(*Interface)
	if !ok || iface.stack != s {
		return fmt.Errorf("interface: %w", ErrForeignHandle)
	}
	if iface.Attached() {
		return ErrAttached
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ifaces[iface]; !ok {
		return fmt.Errorf("interface: %w", ErrForeignHandle)
	}
	delete(s.ifaces, iface)
	return nil
}

func (s *Stack) postIP(ctx context.Context, id eventloop.ID, data any) {
	if err := s.sys.Post(ctx, netif.IPEventBase, id, data, eventloop.WaitForever); err != nil {
		s.logger.Debug("IP event not posted", "id", id, "error", err)
	}
}

// Compile-time interface satisfaction check.
var _ netif.Stack = (*Stack)(nil)
