package events

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ethlink/ethlink-go/pkg/driver"
	"github.com/ethlink/ethlink-go/pkg/eventloop"
	"github.com/ethlink/ethlink-go/pkg/netif"
	"github.com/ethlink/ethlink-go/pkg/status"
)

// ErrAlreadySubscribed is returned by Subscribe when handlers are registered.
var ErrAlreadySubscribed = errors.New("translator already subscribed")

// Dispatcher is the system event loop the translator listens on.
type Dispatcher interface {
	Register(base eventloop.Base, id eventloop.ID, handler eventloop.Handler) (*eventloop.Registration, error)
	Unregister(reg *eventloop.Registration) error
}

// Publisher is the application event loop normalized events are posted to.
type Publisher interface {
	Post(ctx context.Context, base eventloop.Base, id eventloop.ID, data any, timeout time.Duration) error
}

// flusher is implemented by dispatchers that can drain their queue.
type flusher interface {
	Flush(ctx context.Context) error
}

// Config configures a Translator.
type Config struct {
	// PostTimeout bounds each post on the application loop.
	// eventloop.WaitForever blocks the system loop until there is room.
	PostTimeout time.Duration

	// Notify, if set, is called after each post attempt with the event and
	// the post result.
	Notify func(ev Event, err error)

	// Logger receives translation log output. Nil disables logging.
	Logger *slog.Logger
}

// DefaultConfig returns a configuration that waits forever on a full
// application queue.
func DefaultConfig() Config {
	return Config{PostTimeout: eventloop.WaitForever}
}

// Translator forwards driver and IP events to the application loop.
type Translator struct {
	sys    Dispatcher
	app    Publisher
	config Config

	linkReg *eventloop.Registration
	ipReg   *eventloop.Registration

	// linkDown is set by DISCONNECTED/STOP and cleared by CONNECTED.
	// Only touched on the system loop's dispatch goroutine.
	linkDown bool
}

// NewTranslator creates an unsubscribed translator.
func NewTranslator(sys Dispatcher, app Publisher, cfg Config) *Translator {
	return &Translator{sys: sys, app: app, config: cfg}
}

// Subscribed reports whether the handlers are registered.
func (t *Translator) Subscribed() bool {
	return t.linkReg != nil
}

// Subscribe registers the link and IP handlers. If the second registration
// fails the first is removed.
func (t *Translator) Subscribe() error {
	if t.linkReg != nil {
		return status.New(status.InvalidState, "subscribe", ErrAlreadySubscribed)
	}

	t.linkDown = false
	linkReg, err := t.sys.Register(driver.EventBase, eventloop.AnyID, t.handleLink)
	if err != nil {
		t.errorLog("failed to register link event handler", "error", err)
		return status.New(status.HandlerRegistrationFailed, "register_link", err)
	}

	ipReg, err := t.sys.Register(netif.IPEventBase, netif.EventEthGotIP, t.handleGotIP)
	if err != nil {
		t.errorLog("failed to register IP event handler", "error", err)
		if uerr := t.sys.Unregister(linkReg); uerr != nil {
			t.errorLog("failed to unregister link event handler", "error", uerr)
		}
		return status.New(status.HandlerRegistrationFailed, "register_ip", err)
	}

	t.linkReg, t.ipReg = linkReg, ipReg
	return nil
}

// Unsubscribe removes both handlers in reverse registration order. Events
// already queued on the system loop are forwarded first when the loop
// supports flushing. Both removals are attempted; the first failure is
// returned with code HandlerUnregistrationFailed.
func (t *Translator) Unsubscribe() error {
	if f, ok := t.sys.(flusher); ok && t.linkReg != nil {
		if err := f.Flush(context.Background()); err != nil && !errors.Is(err, eventloop.ErrNotStarted) {
			t.debugLog("system loop flush failed", "error", err)
		}
	}

	var first error
	for _, r := range []struct {
		op  string
		reg *eventloop.Registration
	}{
		{"unregister_ip", t.ipReg},
		{"unregister_link", t.linkReg},
	} {
		if err := t.sys.Unregister(r.reg); err != nil {
			t.warnLog("event handler was not registered", "op", r.op, "error", err)
			if first == nil {
				first = status.New(status.HandlerUnregistrationFailed, r.op, err)
			}
		}
	}

	t.linkReg, t.ipReg = nil, nil
	return first
}

func (t *Translator) handleLink(_ eventloop.Base, id eventloop.ID, data any) {
	var kind Kind
	switch id {
	case driver.EventStart:
		t.infoLog("ethernet started")
		kind = LinkStarted
	case driver.EventStop:
		t.infoLog("ethernet stopped")
		t.linkDown = true
		kind = LinkStopped
	case driver.EventConnected:
		t.logLinkUp(data)
		t.linkDown = false
		kind = LinkConnected
	case driver.EventDisconnected:
		t.infoLog("ethernet link down")
		t.linkDown = true
		kind = LinkDisconnected
	default:
		return
	}
	t.post(Event{Kind: kind})
}

func (t *Translator) handleGotIP(_ eventloop.Base, _ eventloop.ID, data any) {
	var got netif.GotIPEvent
	switch v := data.(type) {
	case *netif.GotIPEvent:
		if v == nil {
			return
		}
		got = *v
	case netif.GotIPEvent:
		got = v
	default:
		return
	}

	// An address resolved just before the carrier dropped can be queued
	// behind DISCONNECTED; it no longer describes the link.
	if t.linkDown {
		t.debugLog("dropping IP event for a link that is down", "ip", got.IP.Addr)
		return
	}

	ev := Event{Kind: AddressAcquired, IP: IPInfo{
		Addr:    got.IP.Addr,
		Mask:    got.IP.Netmask,
		Gateway: got.IP.Gateway,
	}}
	t.post(ev)
	t.infoLog("ethernet got IP address", "ip", ev.IP.Addr, "mask", ev.IP.Mask, "gateway", ev.IP.Gateway)
}

// logLinkUp logs the hardware address of the link that came up.
func (t *Translator) logLinkUp(data any) {
	link, ok := data.(driver.Link)
	if !ok || link == nil {
		t.infoLog("ethernet link up")
		return
	}
	addr, err := link.HardwareAddr()
	if err != nil {
		t.infoLog("ethernet link up", "mac_error", err)
		return
	}
	t.infoLog("ethernet link up", "mac", addr.String())
}

func (t *Translator) post(ev Event) {
	err := t.app.Post(context.Background(), Topic, ev.Kind.ID(), ev, t.config.PostTimeout)
	if err != nil {
		t.errorLog("failed to post network event", "kind", ev.Kind.String(), "error", err)
	}
	if t.config.Notify != nil {
		t.config.Notify(ev, err)
	}
}

func (t *Translator) debugLog(msg string, args ...any) {
	if t.config.Logger != nil {
		t.config.Logger.Debug(msg, args...)
	}
}

func (t *Translator) infoLog(msg string, args ...any) {
	if t.config.Logger != nil {
		t.config.Logger.Info(msg, args...)
	}
}

func (t *Translator) warnLog(msg string, args ...any) {
	if t.config.Logger != nil {
		t.config.Logger.Warn(msg, args...)
	}
}

func (t *Translator) errorLog(msg string, args ...any) {
	if t.config.Logger != nil {
		t.config.Logger.Error(msg, args...)
	}
}
