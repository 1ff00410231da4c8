package events

import (
	"fmt"
	"net/netip"

	"github.com/ethlink/ethlink-go/pkg/eventloop"
)

// Topic is the application event base normalized events are posted under.
const Topic eventloop.Base = "NETWORK_EVENTS"

// Kind identifies a normalized event. It is the event ID on Topic.
type Kind eventloop.ID

const (
	LinkStarted      Kind = 1
	LinkStopped      Kind = 2
	LinkConnected    Kind = 3
	LinkDisconnected Kind = 4
	AddressAcquired  Kind = 5
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case LinkStarted:
		return "LINK_STARTED"
	case LinkStopped:
		return "LINK_STOPPED"
	case LinkConnected:
		return "LINK_CONNECTED"
	case LinkDisconnected:
		return "LINK_DISCONNECTED"
	case AddressAcquired:
		return "ADDRESS_ACQUIRED"
	default:
		return fmt.Sprintf("KIND_%d", int32(k))
	}
}

// ID returns the event ID the kind is posted with.
func (k Kind) ID() eventloop.ID {
	return eventloop.ID(k)
}

// IPInfo is the IPv4 configuration carried by AddressAcquired.
type IPInfo struct {
	Addr    netip.Addr
	Mask    netip.Addr
	Gateway netip.Addr
}

// String formats the triple as "addr mask gateway".
func (i IPInfo) String() string {
	return fmt.Sprintf("%s mask %s gw %s", i.Addr, i.Mask, i.Gateway)
}

// Event is the payload posted on Topic.
type Event struct {
	Kind Kind

	// IP is set for AddressAcquired only.
	IP IPInfo
}
