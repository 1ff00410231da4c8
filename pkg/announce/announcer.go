package announce

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/enbility/zeroconf/v3"

	"github.com/ethlink/ethlink-go/pkg/eventloop"
	"github.com/ethlink/ethlink-go/pkg/events"
)

// mDNS service parameters.
const (
	ServiceType = "_ethlink._tcp"
	Domain      = "local."
	DefaultPort = 7400
)

// TXT record keys.
const (
	TXTInterface = "iface"
	TXTAddr      = "ip"
	TXTMask      = "mask"
	TXTGateway   = "gw"
)

var (
	// ErrAttached is returned by Attach when the announcer already listens.
	ErrAttached = errors.New("announcer already attached")

	// ErrNotAttached is returned by Detach when there is nothing to remove.
	ErrNotAttached = errors.New("announcer not attached")
)

// Config configures an Announcer.
type Config struct {
	// Instance is the service instance name. Defaults to the host name.
	Instance string

	// Key is the interface key published in the TXT records.
	Key string

	// Port is the advertised port. Defaults to DefaultPort.
	Port int

	// Interface restricts advertising to one host interface.
	// Empty means all interfaces.
	Interface string

	// TTL overrides the record TTL when positive.
	TTL time.Duration

	Logger *slog.Logger
}

// server is the part of *zeroconf.Server the announcer uses.
type server interface {
	Shutdown()
}

type registerFunc func(instance, service, domain string, port int, txt []string, ifaces []net.Interface, opts ...zeroconf.ServerOption) (server, error)

func zeroconfRegister(instance, service, domain string, port int, txt []string, ifaces []net.Interface, opts ...zeroconf.ServerOption) (server, error) {
	s, err := zeroconf.Register(instance, service, domain, port, txt, ifaces, opts...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Announcer publishes the acquired address of a link over mDNS.
type Announcer struct {
	config   Config
	register registerFunc

	mu     sync.Mutex
	loop   events.Dispatcher
	reg    *eventloop.Registration
	server server
	last   events.IPInfo
}

// New creates an Announcer. It does nothing until attached to a loop.
func New(cfg Config) *Announcer {
	if cfg.Instance == "" {
		if h, err := os.Hostname(); err == nil {
			cfg.Instance = h
		} else {
			cfg.Instance = "ethlink"
		}
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	return &Announcer{config: cfg, register: zeroconfRegister}
}

// Attach registers the announcer on the application loop.
func (a *Announcer) Attach(loop events.Dispatcher) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.reg != nil {
		return ErrAttached
	}
	reg, err := loop.Register(events.Topic, eventloop.AnyID, a.handle)
	if err != nil {
		return fmt.Errorf("register announcer: %w", err)
	}
	a.loop = loop
	a.reg = reg
	return nil
}

// Detach unregisters the announcer and withdraws any active service.
func (a *Announcer) Detach() error {
	a.mu.Lock()
	loop, reg := a.loop, a.reg
	a.loop, a.reg = nil, nil
	a.mu.Unlock()

	if reg == nil {
		return ErrNotAttached
	}
	err := loop.Unregister(reg)
	a.withdraw("detach")
	return err
}

// Active reports whether a service is currently registered.
func (a *Announcer) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.server != nil
}

// Announced returns the address triple of the active service.
func (a *Announcer) Announced() (events.IPInfo, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last, a.server != nil
}

func (a *Announcer) handle(_ eventloop.Base, _ eventloop.ID, data any) {
	ev, ok := data.(events.Event)
	if !ok {
		return
	}
	switch ev.Kind {
	case events.AddressAcquired:
		if err := a.announce(ev.IP); err != nil {
			a.warnLog("mDNS announce failed", "addr", ev.IP.Addr, "error", err)
		}
	case events.LinkDisconnected, events.LinkStopped:
		a.withdraw(ev.Kind.String())
	}
}

func (a *Announcer) announce(ip events.IPInfo) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
	}

	var opts []zeroconf.ServerOption
	if a.config.TTL > 0 {
		opts = append(opts, zeroconf.TTL(uint32(a.config.TTL.Seconds())))
	}

	s, err := a.register(
		a.config.Instance,
		ServiceType,
		Domain,
		a.config.Port,
		TXTRecords(a.config.Key, ip),
		a.interfaces(),
		opts...,
	)
	if err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceType, err)
	}
	a.server = s
	a.last = ip
	a.infoLog("mDNS service registered", "instance", a.config.Instance, "addr", ip.Addr)
	return nil
}

func (a *Announcer) withdraw(reason string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server == nil {
		return
	}
	a.server.Shutdown()
	a.server = nil
	a.last = events.IPInfo{}
	a.infoLog("mDNS service withdrawn", "reason", reason)
}

// interfaces returns the host interfaces to advertise on, nil meaning all.
func (a *Announcer) interfaces() []net.Interface {
	if a.config.Interface == "" {
		return nil
	}
	iface, err := net.InterfaceByName(a.config.Interface)
	if err != nil {
		a.warnLog("mDNS interface not found, using all", "interface", a.config.Interface)
		return nil
	}
	return []net.Interface{*iface}
}

// TXTRecords encodes the interface key and address triple as key=value strings.
func TXTRecords(key string, ip events.IPInfo) []string {
	txt := make([]string, 0, 4)
	if key != "" {
		txt = append(txt, TXTInterface+"="+key)
	}
	txt = append(txt, TXTAddr+"="+ip.Addr.String())
	if ip.Mask.IsValid() {
		txt = append(txt, TXTMask+"="+ip.Mask.String())
	}
	if ip.Gateway.IsValid() {
		txt = append(txt, TXTGateway+"="+ip.Gateway.String())
	}
	return txt
}

func (a *Announcer) infoLog(msg string, args ...any) {
	if a.config.Logger != nil {
		a.config.Logger.Info(msg, args...)
	}
}

func (a *Announcer) warnLog(msg string, args ...any) {
	if a.config.Logger != nil {
		a.config.Logger.Warn(msg, args...)
	}
}
