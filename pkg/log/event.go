package log

import (
	"time"
)

// Event is one captured lifecycle record.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the controller session (UUID) that produced the event.
	SessionID string `cbor:"2,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"3,keyasint"`

	// Category classifies the payload.
	Category Category `cbor:"4,keyasint"`

	// Interface is the network interface key (e.g. "ETH").
	Interface string `cbor:"5,keyasint,omitempty"`

	// PHY is the transceiver variant name.
	PHY string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	StateChange *StateChangeEvent `cbor:"10,keyasint,omitempty"`
	Link        *LinkEvent        `cbor:"11,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"12,keyasint,omitempty"`
}

// Layer indicates which component captured the event.
type Layer uint8

const (
	// LayerDriver is the MAC/PHY driver binding.
	LayerDriver Layer = 0
	// LayerNetif is the network interface attachment.
	LayerNetif Layer = 1
	// LayerEvents is the event translator.
	LayerEvents Layer = 2
	// LayerLifecycle is the link controller.
	LayerLifecycle Layer = 3
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerDriver:
		return "DRIVER"
	case LayerNetif:
		return "NETIF"
	case LayerEvents:
		return "EVENTS"
	case LayerLifecycle:
		return "LIFECYCLE"
	default:
		return "UNKNOWN"
	}
}

// ParseLayer parses a layer name as returned by String.
func ParseLayer(s string) (Layer, bool) {
	for l := LayerDriver; l <= LayerLifecycle; l++ {
		if l.String() == s {
			return l, true
		}
	}
	return 0, false
}

// Category classifies the event payload.
type Category uint8

const (
	// CategoryState indicates a state change.
	CategoryState Category = 0
	// CategoryLink indicates a normalized link event.
	CategoryLink Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryState:
		return "STATE"
	case CategoryLink:
		return "LINK"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name as returned by String.
func ParseCategory(s string) (Category, bool) {
	for c := CategoryState; c <= CategoryError; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// StateChangeEvent captures a controller state transition.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityController indicates a link controller state change.
	StateEntityController StateEntity = 0
	// StateEntityCarrier indicates a physical link up/down change.
	StateEntityCarrier StateEntity = 1
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityController:
		return "CONTROLLER"
	case StateEntityCarrier:
		return "CARRIER"
	default:
		return "UNKNOWN"
	}
}

// LinkEvent captures a normalized event re-dispatched to the application.
type LinkEvent struct {
	// Kind is the normalized event name (e.g. "LINK_CONNECTED").
	Kind string `cbor:"1,keyasint"`

	// Addr, Mask and Gateway are set for address acquisition.
	Addr    string `cbor:"2,keyasint,omitempty"`
	Mask    string `cbor:"3,keyasint,omitempty"`
	Gateway string `cbor:"4,keyasint,omitempty"`

	// PostError is set when the event could not be delivered.
	PostError string `cbor:"5,keyasint,omitempty"`
}

// ErrorEventData captures a classified failure.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Code is the failure class name (e.g. "DRIVER_INSTALL_FAILED").
	Code string `cbor:"3,keyasint,omitempty"`

	// DriverStatus is the underlying driver status (if known).
	DriverStatus *int `cbor:"4,keyasint,omitempty"`

	// Op names the failed operation.
	Op string `cbor:"5,keyasint,omitempty"`

	// Fatal reports whether the failure aborted a start sequence.
	Fatal bool `cbor:"6,keyasint,omitempty"`
}
