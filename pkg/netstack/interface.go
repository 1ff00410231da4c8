package netstack

import (
	"context"
	"errors"
	"net/netip"
	"sync"
	"time"

	"github.com/soypat/seqs/eth/dhcp"
	"github.com/soypat/seqs/stacks"

	"github.com/ethlink/ethlink-go/pkg/board"
	"github.com/ethlink/ethlink-go/pkg/driver"
	"github.com/ethlink/ethlink-go/pkg/eventloop"
	"github.com/ethlink/ethlink-go/pkg/netif"
)

// ErrNoAddress is reported when DHCP does not complete and no static address
// is configured.
var ErrNoAddress = errors.New("no address acquired")

// Glue binds a link driver to an Interface.
type Glue struct {
	link driver.Link

	mu    sync.Mutex
	iface *Interface
}

// Link returns the bound driver.
func (g *Glue) Link() driver.Link {
	return g.link
}

func (g *Glue) interfaceOf() *Interface {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.iface
}

// Interface is a network interface backed by a seqs port stack.
type Interface struct {
	stack   *Stack
	config  board.NetifConfig
	static  netip.Prefix
	gateway netip.Addr

	mu     sync.Mutex
	glue   *Glue
	reg    *eventloop.Registration
	ports  *stacks.PortStack
	cancel context.CancelFunc
	done   chan struct{}
	ip     netif.IPInfo
}

// Key returns the interface key.
func (i *Interface) Key() string {
	return i.config.Key
}

// Description returns the human readable name.
func (i *Interface) Description() string {
	return i.config.Description
}

// RoutePriority returns the default route priority.
func (i *Interface) RoutePriority() int {
	return i.config.RoutePriority
}

// Attached reports whether a glue is attached.
func (i *Interface) Attached() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.glue != nil
}

// IP returns the current address configuration (zero when down).
func (i *Interface) IP() netif.IPInfo {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.ip
}

// PortStack returns the port stack of the running link, or nil when down.
func (i *Interface) PortStack() *stacks.PortStack {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.ports
}

func (i *Interface) attach(glue *Glue) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.glue != nil {
		return ErrAttached
	}
	glue.mu.Lock()
	if glue.iface != nil {
		glue.mu.Unlock()
		return ErrAttached
	}
	glue.iface = i
	glue.mu.Unlock()

	reg, err := i.stack.sys.Register(driver.EventBase, eventloop.AnyID, i.handleLink)
	if err != nil {
		glue.mu.Lock()
		glue.iface = nil
		glue.mu.Unlock()
		return err
	}
	i.glue, i.reg = glue, reg
	i.stack.logger.Debug("glue attached", "key", i.config.Key)
	return nil
}

func (i *Interface) detach(glue *Glue) error {
	i.mu.Lock()
	if i.glue != glue {
		i.mu.Unlock()
		return ErrForeignHandle
	}
	reg := i.reg
	i.glue, i.reg = nil, nil
	i.mu.Unlock()

	i.down(false)
	glue.link.SetReceiver(nil)
	glue.mu.Lock()
	glue.iface = nil
	glue.mu.Unlock()
	return i.stack.sys.Unregister(reg)
}

// handleLink follows the bound link's state. Runs on the system loop.
func (i *Interface) handleLink(_ eventloop.Base, id eventloop.ID, data any) {
	i.mu.Lock()
	glue := i.glue
	i.mu.Unlock()
	if glue == nil {
		return
	}
	if src, ok := data.(driver.Link); ok && src != glue.link {
		return
	}

	switch id {
	case driver.EventConnected:
		i.up(glue.link)
	case driver.EventDisconnected, driver.EventStop:
		i.down(true)
	}
}

// up creates the port stack and starts frame polling and address acquisition.
func (i *Interface) up(link driver.Link) {
	hw, err := link.HardwareAddr()
	if err != nil || len(hw) != 6 {
		i.stack.logger.Error("link has no usable hardware address", "key", i.config.Key, "error", err)
		return
	}
	var mac [6]byte
	copy(mac[:], hw)

	i.mu.Lock()
	if i.ports != nil {
		i.mu.Unlock()
		return
	}
	ports := stacks.NewPortStack(stacks.PortStackConfig{
		MAC:             mac,
		MaxOpenPortsUDP: i.stack.config.UDPPorts + 1,
		MaxOpenPortsTCP: i.stack.config.TCPPorts,
		MTU:             mtu,
		Logger:          i.stack.logger,
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	i.ports, i.cancel, i.done = ports, cancel, done
	i.mu.Unlock()

	link.SetReceiver(ports.RecvEth)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		i.poll(ctx, link, ports)
	}()
	go func() {
		defer wg.Done()
		i.acquire(ctx, ports)
	}()
	go func() {
		wg.Wait()
		close(done)
	}()
}

// down stops polling and releases the address. With notify set and an
// address held, EventEthLostIP is posted.
func (i *Interface) down(notify bool) {
	i.mu.Lock()
	cancel, done := i.cancel, i.done
	hadIP := i.ip.Addr.IsValid()
	i.ports, i.cancel, i.done = nil, nil, nil
	i.ip = netif.IPInfo{}
	i.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	if notify && hadIP {
		go i.stack.postIP(context.Background(), netif.EventEthLostIP, &netif.GotIPEvent{Key: i.config.Key})
	}
}

// poll moves outbound frames from the port stack to the link.
func (i *Interface) poll(ctx context.Context, link driver.Link, ports *stacks.PortStack) {
	buf := make([]byte, mtu+14)
	ticker := time.NewTicker(i.stack.config.PollInterval)
	defer ticker.Stop()

	for {
		n, err := ports.HandleEth(buf)
		if err != nil {
			i.stack.logger.Debug("port stack error", "key", i.config.Key, "error", err)
			n = 0
		}
		if n > 0 {
			if err := link.Transmit(buf[:n]); err != nil {
				i.stack.logger.Debug("transmit failed", "key", i.config.Key, "error", err)
			}
			if ctx.Err() != nil {
				return
			}
			continue
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// acquire assigns the static address or runs DHCP, then posts EventEthGotIP.
func (i *Interface) acquire(ctx context.Context, ports *stacks.PortStack) {
	info, err := i.resolve(ctx, ports)
	if err != nil {
		if ctx.Err() == nil {
			i.stack.logger.Warn("address acquisition failed", "key", i.config.Key, "error", err)
		}
		return
	}
	ports.SetAddr(info.Addr)

	// down clears ports before cancelling ctx; either check catches a carrier
	// drop that raced with resolution. Post rejects a ctx cancelled after this.
	i.mu.Lock()
	if i.ports != ports || ctx.Err() != nil {
		i.mu.Unlock()
		return
	}
	changed := i.ip != info
	i.ip = info
	i.mu.Unlock()

	i.stack.postIP(ctx, netif.EventEthGotIP, &netif.GotIPEvent{Key: i.config.Key, IP: info, Changed: changed})
}

func (i *Interface) resolve(ctx context.Context, ports *stacks.PortStack) (netif.IPInfo, error) {
	if i.static.IsValid() {
		return netif.IPInfo{
			Addr:    i.static.Addr(),
			Netmask: maskFromBits(i.static.Bits()),
			Gateway: i.gateway,
		}, nil
	}

	client := stacks.NewDHCPClient(ports, dhcp.DefaultClientPort)
	err := client.BeginRequest(stacks.DHCPRequestConfig{
		Xid:      uint32(time.Now().UnixNano()),
		Hostname: i.config.Hostname,
	})
	if err != nil {
		return netif.IPInfo{}, err
	}

	deadline := time.NewTimer(i.stack.config.DHCPTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(i.stack.config.PollInterval)
	defer ticker.Stop()
	for client.State() != dhcp.StateBound {
		select {
		case <-ctx.Done():
			return netif.IPInfo{}, ctx.Err()
		case <-deadline.C:
			return netif.IPInfo{}, ErrNoAddress
		case <-ticker.C:
		}
	}

	gw := client.Gateway()
	if !gw.IsValid() {
		gw = client.Router()
	}
	return netif.IPInfo{
		Addr:    client.Offer(),
		Netmask: maskFromBits(int(client.CIDRBits())),
		Gateway: gw,
	}, nil
}

// maskFromBits returns the IPv4 netmask of a prefix length.
func maskFromBits(bits int) netip.Addr {
	if bits < 0 {
		bits = 0
	}
	if bits > 32 {
		bits = 32
	}
	m := ^uint32(0) << (32 - bits)
	return netip.AddrFrom4([4]byte{byte(m >> 24), byte(m >> 16), byte(m >> 8), byte(m)})
}

// Compile-time interface satisfaction checks.
var (
	_ netif.Interface = (*Interface)(nil)
	_ netif.Glue      = (*Glue)(nil)
)
