// Package link implements the wired link lifecycle controller.
//
// A Controller owns one physical link. Start brings it up in a fixed order:
//
//  1. construct the MAC/PHY link driver (driver.Binding)
//  2. start the system event loop, initialize the network stack, create and
//     attach the interface (netif.Attachment)
//  3. subscribe the event translator (events.Translator)
//  4. start the link driver state machine
//
// If any step fails the completed steps are undone in reverse order, the
// first error is returned and the controller is Stopped again. Stop runs the
// reverse sequence best-effort: every failure is logged and recorded, none
// aborts the teardown, and the controller always ends Stopped.
//
//	ctrl, err := link.NewController(link.Config{
//	    Board:   cfg,
//	    Library: sim.NewLibrary(sysLoop, sim.LibraryConfig{}),
//	    Stack:   netstack.New(sysLoop, netstack.Config{}),
//	    System:  sysLoop,
//	    App:     appLoop,
//	})
//	if err != nil {
//	    return err
//	}
//	if err := ctrl.Start(); err != nil {
//	    return err
//	}
//	defer ctrl.Stop()
//
// Start and Stop must not be called concurrently. State may be read from any
// goroutine.
package link
