// Package events re-dispatches link driver and IP events as normalized
// application events.
//
// A Translator subscribes to the system event loop (driver.EventBase, every
// ID, and netif.EventEthGotIP) and posts one Event per underlying event on
// the application loop under Topic, in arrival order:
//
//	tr := events.NewTranslator(sysLoop, appLoop, events.DefaultConfig())
//	if err := tr.Subscribe(); err != nil {
//	    return err
//	}
//	defer tr.Unsubscribe()
//
// Application code registers on Topic and switches on Kind:
//
//	appLoop.Register(events.Topic, eventloop.AnyID, func(_ eventloop.Base, _ eventloop.ID, data any) {
//	    ev := data.(events.Event)
//	    if ev.Kind == events.AddressAcquired {
//	        fmt.Println(ev.IP.Addr)
//	    }
//	})
//
// With the default PostTimeout (eventloop.WaitForever) a full application
// queue stalls the system loop until space frees up.
package events
