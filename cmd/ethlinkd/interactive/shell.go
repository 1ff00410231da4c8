// Package interactive provides the operator shell of ethlinkd.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"github.com/ethlink/ethlink-go/pkg/driver"
	"github.com/ethlink/ethlink-go/pkg/eventloop"
	"github.com/ethlink/ethlink-go/pkg/events"
	"github.com/ethlink/ethlink-go/pkg/link"
	"github.com/ethlink/ethlink-go/pkg/netif"
)

// Controller is the link lifecycle the shell drives.
type Controller interface {
	Start() error
	Stop() error
	State() link.State
	Session() string
	Link() driver.Link
	Interface() netif.Interface
}

// carrier is implemented by links whose cable can be plugged from software.
type carrier interface {
	SetCarrier(up bool)
	Carrier() bool
}

// addressed is implemented by interfaces that report their IPv4 address.
type addressed interface {
	IP() netif.IPInfo
}

// Shell handles the interactive mode of ethlinkd.
type Shell struct {
	rl   *readline.Instance
	out  io.Writer
	ctrl Controller

	// readLine blocks until a line is entered; closeInput unblocks it.
	readLine   func() (string, error)
	closeInput func() error
}

// New creates a shell reading from the terminal.
func New() (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ethlink> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Shell{rl: rl, out: rl.Stdout(), readLine: rl.Readline, closeInput: rl.Close}, nil
}

// Stdout returns a writer that coordinates with the prompt.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Stderr returns a writer that coordinates with the prompt.
// Use it for log output.
func (s *Shell) Stderr() io.Writer {
	return s.rl.Stderr()
}

// Run starts reading commands until quit, EOF or ctx is done. Normalized
// events from app are printed as they arrive. The returned channel is closed
// once the shell has stopped touching ctrl. cancel is called when the
// operator quits.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc, ctrl Controller, app events.Dispatcher) <-chan struct{} {
	s.ctrl = ctrl
	done := make(chan struct{})

	var closeOnce sync.Once
	closeInput := func() {
		closeOnce.Do(func() { _ = s.closeInput() })
	}

	// Readline does not watch ctx; closing the input unblocks it.
	stop := context.AfterFunc(ctx, closeInput)

	go func() {
		defer close(done)
		defer stop()
		defer closeInput()

		if reg, err := app.Register(events.Topic, eventloop.AnyID, s.printEvent); err == nil {
			defer app.Unregister(reg)
		}
		s.loop(ctx, cancel)
	}()
	return done
}

func (s *Shell) loop(ctx context.Context, cancel context.CancelFunc) {
	s.printHelp()

	for {
		line, err := s.readLine()
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if !s.exec(line) {
			cancel()
			return
		}
	}
}

// exec runs one command line. It returns false when the shell should exit.
func (s *Shell) exec(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "start":
		s.cmdStart()

	case "stop":
		s.cmdStop()

	case "status", "st":
		s.cmdStatus()

	case "plug":
		s.cmdCarrier(true)

	case "unplug":
		s.cmdCarrier(false)

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
ethlink Commands:
  Lifecycle:
    start              - Start the link
    stop               - Stop the link
    status             - Show link status

  Cable:
    plug               - Bring the carrier up
    unplug             - Take the carrier down

  General:
    help               - Show this help
    quit               - Exit`)
}

func (s *Shell) cmdStart() {
	if err := s.ctrl.Start(); err != nil {
		s.printError("start", err)
		return
	}
	fmt.Fprintf(s.out, "Link started (session %s)\n", s.ctrl.Session())
}

func (s *Shell) cmdStop() {
	if err := s.ctrl.Stop(); err != nil {
		s.printError("stop", err)
		return
	}
	fmt.Fprintln(s.out, "Link stopped")
}

func (s *Shell) cmdStatus() {
	fmt.Fprintf(s.out, "State:     %s\n", s.ctrl.State())
	if session := s.ctrl.Session(); session != "" {
		fmt.Fprintf(s.out, "Session:   %s\n", session)
	}

	l := s.ctrl.Link()
	if l == nil {
		fmt.Fprintln(s.out, "Link:      (none)")
		return
	}
	if mac, err := l.HardwareAddr(); err == nil {
		fmt.Fprintf(s.out, "MAC:       %s\n", mac)
	}
	if c, ok := l.(carrier); ok {
		fmt.Fprintf(s.out, "Carrier:   %s\n", upDown(c.Carrier()))
	}

	iface := s.ctrl.Interface()
	if iface == nil {
		return
	}
	fmt.Fprintf(s.out, "Interface: %s\n", iface.Key())
	if a, ok := iface.(addressed); ok {
		ip := a.IP()
		if ip.Addr.IsValid() {
			fmt.Fprintf(s.out, "Address:   %s mask %s gw %s\n", ip.Addr, ip.Netmask, ip.Gateway)
		} else {
			fmt.Fprintln(s.out, "Address:   (none)")
		}
	}
}

func (s *Shell) cmdCarrier(up bool) {
	l := s.ctrl.Link()
	if l == nil {
		fmt.Fprintln(s.out, "No link (run 'start' first)")
		return
	}
	c, ok := l.(carrier)
	if !ok {
		fmt.Fprintln(s.out, "Link has no software carrier control")
		return
	}
	c.SetCarrier(up)
	fmt.Fprintf(s.out, "Carrier %s\n", upDown(up))
}

func (s *Shell) printEvent(_ eventloop.Base, _ eventloop.ID, data any) {
	ev, ok := data.(events.Event)
	if !ok {
		return
	}
	if ev.Kind == events.AddressAcquired {
		fmt.Fprintf(s.out, "[event] %s %s\n", ev.Kind, ev.IP)
		return
	}
	fmt.Fprintf(s.out, "[event] %s\n", ev.Kind)
}

func (s *Shell) printError(op string, err error) {
	fmt.Fprintf(s.out, "%s failed: %v\n", op, err)
}

func upDown(up bool) string {
	if up {
		return "up"
	}
	return "down"
}
