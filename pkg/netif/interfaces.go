package netif

import (
	"errors"
	"net/netip"

	"github.com/ethlink/ethlink-go/pkg/board"
	"github.com/ethlink/ethlink-go/pkg/driver"
	"github.com/ethlink/ethlink-go/pkg/eventloop"
)

// ErrAlreadyInitialized is returned by Stack.Init when the stack is already up.
var ErrAlreadyInitialized = errors.New("network stack already initialized")

// IPEventBase is the event family posted by the network stack.
const IPEventBase eventloop.Base = "IP_EVENT"

// IP event IDs.
const (
	EventEthGotIP  eventloop.ID = 0
	EventEthLostIP eventloop.ID = 1
)

// IPInfo is the IPv4 configuration of an interface.
type IPInfo struct {
	Addr    netip.Addr
	Netmask netip.Addr
	Gateway netip.Addr
}

// GotIPEvent is the payload of EventEthGotIP.
type GotIPEvent struct {
	// Key is the key of the interface that acquired the address.
	Key string

	// IP is the acquired configuration.
	IP IPInfo

	// Changed reports whether the address differs from the previous one.
	Changed bool
}

// Interface is a network-stack interface instance.
type Interface interface {
	// Key returns the logical interface key.
	Key() string
}

// Glue connects a link driver to an interface: it moves frames both ways.
type Glue interface {
	// Link returns the driver the glue is bound to.
	Link() driver.Link
}

// EventLoop is the system event loop the stack and drivers post on.
type EventLoop interface {
	// Start starts the loop. It returns eventloop.ErrAlreadyStarted when the
	// loop is already running.
	Start() error
}

// Stack is the TCP/IP network stack.
type Stack interface {
	// Init brings the stack up. It returns ErrAlreadyInitialized when it is
	// already up.
	Init() error

	// Deinit releases the stack.
	Deinit() error

	// NewInterface creates an interface.
	NewInterface(cfg board.NetifConfig) (Interface, error)

	// NewGlue creates the glue for link.
	NewGlue(link driver.Link) (Glue, error)

	// Attach binds glue to iface. From then on the interface follows the
	// link's state events.
	Attach(iface Interface, glue Glue) error

	// DeleteGlue releases glue.
	DeleteGlue(glue Glue) error

	// Destroy releases iface.
	Destroy(iface Interface) error
}
