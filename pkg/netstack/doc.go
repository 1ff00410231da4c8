// Package netstack implements netif.Stack over the seqs userspace TCP/IP
// stack.
//
// Each attached interface owns a stacks.PortStack fed by its link driver:
// inbound frames go to PortStack.RecvEth through the link's receiver, and a
// poll goroutine drains PortStack.HandleEth into Link.Transmit while the link
// is up. When the link reports EventConnected the interface acquires an
// address (the configured static address, or DHCP) and posts
// netif.EventEthGotIP on the system loop. EventDisconnected and EventStop
// release the address and post netif.EventEthLostIP.
//
// Init and Deinit are reference counted: the first Init brings the stack up,
// later calls return netif.ErrAlreadyInitialized, and the stack goes down
// with the last Deinit.
package netstack
