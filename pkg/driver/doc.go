// Package driver binds the MAC and PHY sub-drivers into an installed link
// driver and owns their lifetimes.
//
// The vendor driver library is consumed through the Library interface: it
// builds MAC and PHY instances from board configuration and installs them as a
// Link. Binding keeps construct/destroy symmetric:
//
//	b := driver.NewBinding(lib, logger)
//	link, err := b.Construct(cfg)
//	if err != nil {
//	    return err // nothing leaked: partial MAC/PHY instances were deleted
//	}
//	defer b.Destroy()
//
// # Events
//
// An installed Link posts its state changes on the system event loop under
// EventBase: EventStart and EventStop when the driver state machine starts
// or stops, EventConnected and EventDisconnected when the PHY reports link
// up or down. The event data is the Link that emitted the event.
package driver
