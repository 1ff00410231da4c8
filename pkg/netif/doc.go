// Package netif attaches an installed link driver to a network-stack
// interface.
//
// The network stack is consumed through the Stack interface. Attachment
// performs the attach sequence (system event loop start, stack init,
// interface creation, glue creation, attach) and its reverse:
//
//	att := netif.NewAttachment(stack, sysLoop, netif.Config{Netif: cfg.Netif})
//	iface, glue, err := att.Attach(link)
//	if err != nil {
//	    return err // partial interface/glue handles were released
//	}
//	defer att.Detach()
//
// Both the system loop and the stack are shared: "already started" and
// "already initialized" results are treated as success.
//
// # IP events
//
// Once the interface acquires an address the stack posts EventEthGotIP under
// IPEventBase with a *GotIPEvent payload.
package netif
