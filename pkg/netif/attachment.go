package netif

import (
	"errors"
	"log/slog"

	"github.com/ethlink/ethlink-go/pkg/board"
	"github.com/ethlink/ethlink-go/pkg/driver"
	"github.com/ethlink/ethlink-go/pkg/eventloop"
	"github.com/ethlink/ethlink-go/pkg/status"
)

// Attachment errors.
var (
	ErrAlreadyAttached = errors.New("interface already attached")
	ErrNilHandle       = errors.New("stack returned nil handle")
)

// Config configures an Attachment.
type Config struct {
	// Netif is the interface created on each Attach.
	Netif board.NetifConfig

	// Logger receives attach/detach log output. Nil disables logging.
	Logger *slog.Logger
}

// Attachment owns the interface and glue handles of one link.
type Attachment struct {
	stack  Stack
	loop   EventLoop
	config Config

	initialized bool
	iface       Interface
	glue        Glue
}

// NewAttachment creates an attachment over stack and the system event loop.
func NewAttachment(stack Stack, loop EventLoop, cfg Config) *Attachment {
	return &Attachment{stack: stack, loop: loop, config: cfg}
}

// Interface returns the attached interface, or nil.
func (a *Attachment) Interface() Interface {
	return a.iface
}

// Glue returns the attached glue, or nil.
func (a *Attachment) Glue() Glue {
	return a.glue
}

// Attached reports whether an interface is held.
func (a *Attachment) Attached() bool {
	return a.iface != nil
}

// Attach starts the system loop, initializes the stack and attaches link to
// a fresh interface. On failure the interface and glue created by this call
// are released and the stack is deinitialized.
func (a *Attachment) Attach(link driver.Link) (Interface, Glue, error) {
	if a.iface != nil {
		return nil, nil, status.New(status.InvalidState, "attach", ErrAlreadyAttached)
	}

	if err := a.loop.Start(); err != nil && !errors.Is(err, eventloop.ErrAlreadyStarted) {
		a.errorLog("failed to start system event loop", "error", err)
		return nil, nil, status.New(status.StackInitFailed, "event_loop_start", err)
	}

	if err := a.stack.Init(); err != nil && !errors.Is(err, ErrAlreadyInitialized) {
		a.errorLog("failed to initialize network stack", "error", err)
		return nil, nil, status.New(status.StackInitFailed, "stack_init", err)
	}
	a.initialized = true

	iface, err := a.stack.NewInterface(a.config.Netif)
	if err == nil && iface == nil {
		err = ErrNilHandle
	}
	if err != nil {
		a.errorLog("failed to create netif interface", "key", a.config.Netif.Key, "error", err)
		a.release(nil, nil)
		return nil, nil, status.New(status.InterfaceCreationFailed, "new_interface", err)
	}

	glue, err := a.stack.NewGlue(link)
	if err == nil && glue == nil {
		err = ErrNilHandle
	}
	if err != nil {
		a.errorLog("failed to create netif glue", "error", err)
		a.release(iface, nil)
		return nil, nil, status.New(status.GlueCreationFailed, "new_glue", err)
	}

	if err := a.stack.Attach(iface, glue); err != nil {
		a.errorLog("failed to attach glue to interface", "key", iface.Key(), "error", err)
		a.release(iface, glue)
		return nil, nil, status.New(status.AttachFailed, "attach", err)
	}

	a.iface, a.glue = iface, glue
	a.debugLog("interface attached", "key", iface.Key(), "desc", a.config.Netif.Description,
		"route_prio", a.config.Netif.RoutePriority)
	return iface, glue, nil
}

// Detach deletes the glue, destroys the interface and releases the stack.
// The system event loop is shared and keeps running. Every step is attempted;
// the first failure is returned with code DetachFailed.
func (a *Attachment) Detach() error {
	var first error
	note := func(op string, err error) {
		if err == nil {
			return
		}
		a.errorLog("detach step failed", "op", op, "error", err)
		if first == nil {
			first = status.New(status.DetachFailed, op, err)
		}
	}

	if a.glue != nil {
		note("delete_glue", a.stack.DeleteGlue(a.glue))
	}
	if a.iface != nil {
		note("destroy_interface", a.stack.Destroy(a.iface))
	}
	if a.initialized {
		note("stack_deinit", a.stack.Deinit())
	}

	a.iface, a.glue, a.initialized = nil, nil, false
	if first == nil {
		a.debugLog("interface detached")
	}
	return first
}

// release frees handles created during a failed Attach and drops the stack
// reference taken by it.
func (a *Attachment) release(iface Interface, glue Glue) {
	if glue != nil {
		if err := a.stack.DeleteGlue(glue); err != nil {
			a.errorLog("failed to delete glue", "error", err)
		}
	}
	if iface != nil {
		if err := a.stack.Destroy(iface); err != nil {
			a.errorLog("failed to destroy interface", "error", err)
		}
	}
	if err := a.stack.Deinit(); err != nil {
		a.errorLog("failed to deinitialize network stack", "error", err)
	}
	a.initialized = false
}

func (a *Attachment) debugLog(msg string, args ...any) {
	if a.config.Logger != nil {
		a.config.Logger.Debug(msg, args...)
	}
}

func (a *Attachment) errorLog(msg string, args ...any) {
	if a.config.Logger != nil {
		a.config.Logger.Error(msg, args...)
	}
}
