package link

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ethlink/ethlink-go/pkg/board"
	"github.com/ethlink/ethlink-go/pkg/driver"
	"github.com/ethlink/ethlink-go/pkg/eventloop"
	"github.com/ethlink/ethlink-go/pkg/events"
	linklog "github.com/ethlink/ethlink-go/pkg/log"
	"github.com/ethlink/ethlink-go/pkg/netif"
	"github.com/ethlink/ethlink-go/pkg/status"
)

// Controller errors.
var (
	ErrInvalidConfig = errors.New("invalid controller configuration")
	ErrNotStopped    = errors.New("link is not stopped")
	ErrNothingToStop = errors.New("link driver not installed")
)

// SystemLoop is the system event loop: it is started during attach and the
// translator listens on it.
type SystemLoop interface {
	netif.EventLoop
	events.Dispatcher
}

// Config configures a Controller.
type Config struct {
	// Board is the board wiring and interface configuration.
	Board board.Config

	// Library builds the MAC/PHY link driver.
	Library driver.Library

	// Stack is the network stack the link is attached to.
	Stack netif.Stack

	// System is the loop drivers and the stack post on.
	System SystemLoop

	// App is the application loop normalized events are posted on.
	App events.Publisher

	// Capture records state changes, link events and errors. Nil disables capture.
	Capture linklog.Logger

	// Logger receives operational log output. Nil disables logging.
	Logger *slog.Logger
}

// Validate checks that every collaborator is set and the board configuration
// is valid.
func (c *Config) Validate() error {
	switch {
	case c.Library == nil:
		return fmt.Errorf("%w: library is required", ErrInvalidConfig)
	case c.Stack == nil:
		return fmt.Errorf("%w: stack is required", ErrInvalidConfig)
	case c.System == nil:
		return fmt.Errorf("%w: system loop is required", ErrInvalidConfig)
	case c.App == nil:
		return fmt.Errorf("%w: application loop is required", ErrInvalidConfig)
	}
	return c.Board.Validate()
}

// Controller runs the Start/Stop lifecycle of one link.
type Controller struct {
	config  Config
	capture linklog.Logger

	binding    *driver.Binding
	attachment *netif.Attachment
	translator *events.Translator

	state   atomic.Uint32
	session atomic.Value // string
}

// NewController creates a stopped controller.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{config: cfg, capture: cfg.Capture}
	if c.capture == nil {
		c.capture = linklog.NoopLogger{}
	}
	c.session.Store("")

	timeout := cfg.Board.Events.PostTimeout
	if timeout <= 0 {
		timeout = eventloop.WaitForever
	}

	c.binding = driver.NewBinding(cfg.Library, cfg.Logger)
	c.attachment = netif.NewAttachment(cfg.Stack, cfg.System, netif.Config{
		Netif:  cfg.Board.Netif,
		Logger: cfg.Logger,
	})
	c.translator = events.NewTranslator(cfg.System, cfg.App, events.Config{
		PostTimeout: timeout,
		Notify:      c.recordEvent,
		Logger:      cfg.Logger,
	})
	return c, nil
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return State(c.state.Load())
}

// Link returns the installed link driver, or nil when stopped.
func (c *Controller) Link() driver.Link {
	return c.binding.Link()
}

// Interface returns the attached network interface, or nil.
func (c *Controller) Interface() netif.Interface {
	return c.attachment.Interface()
}

// Session returns the ID of the current or last start attempt.
func (c *Controller) Session() string {
	return c.session.Load().(string)
}

// Start brings the link up. It fails with status.ErrInvalidState unless the
// controller is Stopped. On failure completed steps are rolled back and the
// controller returns to Stopped.
func (c *Controller) Start() error {
	if c.State() != StateStopped {
		return status.New(status.InvalidState, "start", ErrNotStopped)
	}

	c.session.Store(uuid.NewString())
	c.infoLog("start ethernet network", "phy", c.config.Board.PHY.Type.String())
	c.setState(StateStarting, "start")

	link, err := c.binding.Construct(c.config.Board)
	if err != nil {
		return c.abort(err)
	}

	if _, _, err := c.attachment.Attach(link); err != nil {
		c.rollback("driver", c.binding.Destroy)
		return c.abort(err)
	}

	if err := c.translator.Subscribe(); err != nil {
		c.rollback("netif", c.attachment.Detach)
		c.rollback("driver", c.binding.Destroy)
		return c.abort(err)
	}

	if err := link.Start(); err != nil {
		serr := status.New(status.ActivationFailed, "link_start", err)
		c.errorLog("failed to start ethernet", "error", err)
		c.rollback("events", c.translator.Unsubscribe)
		c.rollback("netif", c.attachment.Detach)
		c.rollback("driver", c.binding.Destroy)
		return c.abort(serr)
	}

	c.setState(StateRunning, "started")
	return nil
}

// Stop tears the link down. It fails with status.ErrInvalidState, making no
// driver calls, when no link driver is installed. Otherwise every step is
// attempted, the controller ends Stopped and the first failure is returned.
func (c *Controller) Stop() error {
	link := c.binding.Link()
	if link == nil {
		return status.New(status.InvalidState, "stop", ErrNothingToStop)
	}

	c.infoLog("stop ethernet network")
	c.setState(StateStopping, "stop")

	var first error
	note := func(err error) {
		if err == nil {
			return
		}
		c.recordError(err)
		if first == nil {
			first = err
		}
	}

	if err := link.Stop(); err != nil {
		c.errorLog("failed to stop ethernet", "error", err)
		note(status.New(status.DeactivationFailed, "link_stop", err))
	}
	if c.translator.Subscribed() {
		note(c.translator.Unsubscribe())
	}
	note(c.attachment.Detach())
	note(c.binding.Destroy())

	c.setState(StateStopped, "stopped")
	return first
}

// abort records a fatal start error and returns to Stopped.
func (c *Controller) abort(err error) error {
	c.recordError(err)
	c.setState(StateStopped, status.CodeOf(err).String())
	return err
}

// rollback undoes one completed start step. Failures are logged and recorded
// but do not replace the error that triggered the rollback.
func (c *Controller) rollback(step string, undo func() error) {
	if err := undo(); err != nil {
		c.warnLog("rollback step failed", "step", step, "error", err)
		c.recordError(err)
	}
}

func (c *Controller) setState(s State, reason string) {
	old := State(c.state.Swap(uint32(s)))
	if old == s {
		return
	}
	c.debugLog("link state changed", "from", old.String(), "to", s.String())
	c.record(linklog.LayerLifecycle, linklog.CategoryState, func(ev *linklog.Event) {
		ev.StateChange = &linklog.StateChangeEvent{
			Entity:   linklog.StateEntityController,
			OldState: old.String(),
			NewState: s.String(),
			Reason:   reason,
		}
	})
}

// recordEvent is called by the translator for every forwarded event.
func (c *Controller) recordEvent(ev events.Event, postErr error) {
	switch ev.Kind {
	case events.LinkConnected, events.LinkDisconnected:
		up := ev.Kind == events.LinkConnected
		c.record(linklog.LayerDriver, linklog.CategoryState, func(le *linklog.Event) {
			le.StateChange = &linklog.StateChangeEvent{
				Entity:   linklog.StateEntityCarrier,
				OldState: carrierName(!up),
				NewState: carrierName(up),
			}
		})
	}

	c.record(linklog.LayerEvents, linklog.CategoryLink, func(le *linklog.Event) {
		le.Link = &linklog.LinkEvent{Kind: ev.Kind.String()}
		if ev.Kind == events.AddressAcquired {
			le.Link.Addr = ev.IP.Addr.String()
			le.Link.Mask = ev.IP.Mask.String()
			le.Link.Gateway = ev.IP.Gateway.String()
		}
		if postErr != nil {
			le.Link.PostError = postErr.Error()
		}
	})
}

func carrierName(up bool) string {
	if up {
		return "UP"
	}
	return "DOWN"
}

func (c *Controller) recordError(err error) {
	code := status.CodeOf(err)
	data := &linklog.ErrorEventData{
		Layer:   layerOf(code),
		Message: err.Error(),
		Code:    code.String(),
		Fatal:   code.Fatal(),
	}
	var serr *status.Error
	if errors.As(err, &serr) {
		data.Op = serr.Op
		if serr.DriverStatus != 0 {
			ds := serr.DriverStatus
			data.DriverStatus = &ds
		}
	}
	c.record(data.Layer, linklog.CategoryError, func(ev *linklog.Event) {
		ev.Error = data
	})
}

// layerOf maps a failure class to the component that reports it.
func layerOf(code status.Code) linklog.Layer {
	switch code {
	case status.DriverConstructionFailed, status.DriverInstallFailed, status.UninstallFailed:
		return linklog.LayerDriver
	case status.StackInitFailed, status.InterfaceCreationFailed, status.GlueCreationFailed,
		status.AttachFailed, status.DetachFailed:
		return linklog.LayerNetif
	case status.HandlerRegistrationFailed, status.HandlerUnregistrationFailed:
		return linklog.LayerEvents
	default:
		return linklog.LayerLifecycle
	}
}

func (c *Controller) record(layer linklog.Layer, cat linklog.Category, fill func(*linklog.Event)) {
	ev := linklog.Event{
		Timestamp: time.Now(),
		SessionID: c.Session(),
		Layer:     layer,
		Category:  cat,
		Interface: c.config.Board.Netif.Key,
		PHY:       c.config.Board.PHY.Type.String(),
	}
	fill(&ev)
	c.capture.Log(ev)
}

func (c *Controller) debugLog(msg string, args ...any) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, args...)
	}
}

func (c *Controller) infoLog(msg string, args ...any) {
	if c.config.Logger != nil {
		c.config.Logger.Info(msg, args...)
	}
}

func (c *Controller) warnLog(msg string, args ...any) {
	if c.config.Logger != nil {
		c.config.Logger.Warn(msg, args...)
	}
}

func (c *Controller) errorLog(msg string, args ...any) {
	if c.config.Logger != nil {
		c.config.Logger.Error(msg, args...)
	}
}
