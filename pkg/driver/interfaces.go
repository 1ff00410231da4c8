package driver

import (
	"net"

	"github.com/ethlink/ethlink-go/pkg/board"
	"github.com/ethlink/ethlink-go/pkg/eventloop"
)

// EventBase is the event family posted by link drivers.
const EventBase eventloop.Base = "ETH_EVENT"

// Link driver event IDs.
const (
	EventStart        eventloop.ID = 0
	EventStop         eventloop.ID = 1
	EventConnected    eventloop.ID = 2
	EventDisconnected eventloop.ID = 3
)

// EventName returns a readable name for a link driver event ID.
func EventName(id eventloop.ID) string {
	switch id {
	case EventStart:
		return "START"
	case EventStop:
		return "STOP"
	case EventConnected:
		return "CONNECTED"
	case EventDisconnected:
		return "DISCONNECTED"
	default:
		return "UNKNOWN"
	}
}

// MAC is a media access controller instance.
type MAC interface {
	// Del releases the instance.
	Del() error
}

// PHY is a transceiver instance.
type PHY interface {
	// Type returns the transceiver variant.
	Type() board.PHYType

	// Del releases the instance.
	Del() error
}

// Link is an installed link driver combining one MAC and one PHY.
type Link interface {
	// Start starts the driver state machine. The driver posts EventStart and,
	// once the PHY negotiates, EventConnected.
	Start() error

	// Stop stops the driver state machine and posts EventStop.
	Stop() error

	// Uninstall releases the driver. The MAC and PHY stay owned by the caller.
	Uninstall() error

	// HardwareAddr queries the MAC address.
	HardwareAddr() (net.HardwareAddr, error)

	// Transmit sends one frame.
	Transmit(frame []byte) error

	// SetReceiver installs the callback that receives inbound frames.
	// A nil receiver drops inbound frames.
	SetReceiver(fn func(frame []byte) error)
}

// Library is the vendor link driver library.
type Library interface {
	// NewMAC builds a MAC instance.
	NewMAC(cfg board.MACConfig) (MAC, error)

	// NewPHY builds a transceiver instance of cfg.Type.
	NewPHY(cfg board.PHYConfig) (PHY, error)

	// Install combines mac and phy into a link driver.
	Install(mac MAC, phy PHY) (Link, error)
}
