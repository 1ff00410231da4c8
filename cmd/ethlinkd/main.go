// Command ethlinkd brings up a simulated wired Ethernet link.
//
// It wires a board configuration, the simulated MAC/PHY driver library, the
// userspace network stack and the link lifecycle controller, then starts the
// link and reports normalized network events until interrupted.
//
// Usage:
//
//	ethlinkd [flags]
//
// Flags:
//
//	-config string      Board configuration file (YAML)
//	-static string      Static IPv4 address in CIDR notation (skips DHCP)
//	-gateway string     Gateway used with -static
//	-capture string     Write CBOR event capture to this file
//	-mdns               Announce the acquired address over mDNS
//	-mdns-iface string  Host interface for mDNS (default all)
//	-log-level string   Log level: debug, info, warn, error (default "info")
//	-interactive        Run the operator shell
//
// Examples:
//
//	# Start with the reference wiring and a static address
//	ethlinkd -static 192.0.2.10/24 -gateway 192.0.2.1
//
//	# Load a board file and keep a capture for ethlink-log
//	ethlinkd -config board.yaml -capture /var/log/ethlink/link.elog
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethlink/ethlink-go/cmd/ethlinkd/interactive"
	"github.com/ethlink/ethlink-go/pkg/announce"
	"github.com/ethlink/ethlink-go/pkg/board"
	"github.com/ethlink/ethlink-go/pkg/eventloop"
	"github.com/ethlink/ethlink-go/pkg/events"
	"github.com/ethlink/ethlink-go/pkg/link"
	linklog "github.com/ethlink/ethlink-go/pkg/log"
	"github.com/ethlink/ethlink-go/pkg/netstack"
	"github.com/ethlink/ethlink-go/pkg/sim"
)

// Config holds the command line configuration.
type Config struct {
	ConfigFile  string
	Static      string
	Gateway     string
	CaptureFile string
	MDNS        bool
	MDNSIface   string
	LogLevel    string
	Interactive bool
}

var config Config

func init() {
	flag.StringVar(&config.ConfigFile, "config", "", "Board configuration file (YAML)")
	flag.StringVar(&config.Static, "static", "", "Static IPv4 address in CIDR notation (skips DHCP)")
	flag.StringVar(&config.Gateway, "gateway", "", "Gateway used with -static")
	flag.StringVar(&config.CaptureFile, "capture", "", "Write CBOR event capture to this file")
	flag.BoolVar(&config.MDNS, "mdns", false, "Announce the acquired address over mDNS")
	flag.StringVar(&config.MDNSIface, "mdns-iface", "", "Host interface for mDNS (default all)")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&config.Interactive, "interactive", false, "Run the operator shell")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatalf("ethlinkd: %v", err)
	}
}

func run() error {
	boardCfg, err := loadBoard()
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, config.LogLevel)

	var shell *interactive.Shell
	if config.Interactive {
		shell, err = interactive.New()
		if err != nil {
			return err
		}
		logger = newLogger(shell.Stderr(), config.LogLevel)
	}

	log.Println("ethlink daemon")
	log.Println("==============")
	log.Printf("PHY: %s @ %d", boardCfg.PHY.Type, boardCfg.PHY.Address)
	log.Printf("Interface: %s (%s)", boardCfg.Netif.Key, boardCfg.Netif.Description)

	sys := eventloop.New(eventloop.Config{Name: "sys", Logger: logger})
	app := eventloop.New(eventloop.Config{Name: "app", QueueSize: boardCfg.Events.QueueSize, Logger: logger})
	if err := app.Start(); err != nil {
		return fmt.Errorf("start application loop: %w", err)
	}
	defer app.Stop()

	capture, closeCapture, err := openCapture(logger)
	if err != nil {
		return err
	}
	defer closeCapture()

	if _, err := app.Register(events.Topic, eventloop.AnyID, reportEvent(logger)); err != nil {
		return fmt.Errorf("register event reporter: %w", err)
	}

	if config.MDNS {
		ann := announce.New(announce.Config{
			Key:       boardCfg.Netif.Key,
			Interface: config.MDNSIface,
			Logger:    logger,
		})
		if err := ann.Attach(app); err != nil {
			return err
		}
		defer ann.Detach()
	}

	lib := sim.NewLibrary(sys, sim.LibraryConfig{AutoCarrier: true, Logger: logger})
	stack := netstack.New(sys, netstack.Config{Logger: logger})

	ctrl, err := link.NewController(link.Config{
		Board:   boardCfg,
		Library: lib,
		Stack:   stack,
		System:  sys,
		App:     app,
		Capture: capture,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	if err := ctrl.Start(); err != nil {
		return fmt.Errorf("start link: %w", err)
	}
	log.Printf("Link started (session %s)", ctrl.Session())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var shellDone <-chan struct{}
	if shell != nil {
		shellDone = shell.Run(ctx, cancel, ctrl, app)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	select {
	case sig := <-sigCh:
		log.Printf("Received signal: %v", sig)
		cancel()
	case <-ctx.Done():
	}

	// The shell drives ctrl until it returns.
	if shell != nil {
		<-shellDone
	}

	log.Println("Shutting down...")
	if ctrl.State() != link.StateStopped {
		if err := ctrl.Stop(); err != nil {
			log.Printf("Error stopping link: %v", err)
		}
	}
	_ = sys.Stop()
	return nil
}

func loadBoard() (board.Config, error) {
	cfg := board.Default()
	if config.ConfigFile != "" {
		loaded, err := board.LoadFile(config.ConfigFile)
		if err != nil {
			return board.Config{}, err
		}
		cfg = loaded
	}
	if config.Static != "" {
		cfg.Netif.StaticAddress = config.Static
		cfg.Netif.Gateway = config.Gateway
	}
	if err := cfg.Validate(); err != nil {
		return board.Config{}, err
	}
	return cfg, nil
}

// openCapture returns the capture logger and a function that closes it.
// Without -capture, captured events go to the operational log at debug level.
func openCapture(logger *slog.Logger) (linklog.Logger, func(), error) {
	adapter := linklog.NewSlogAdapter(logger)
	if config.CaptureFile == "" {
		return adapter, func() {}, nil
	}
	file, err := linklog.NewFileLogger(config.CaptureFile)
	if err != nil {
		return nil, nil, fmt.Errorf("open capture: %w", err)
	}
	log.Printf("Capturing events to %s", file.Path())
	return linklog.NewMultiLogger(file, adapter), func() {
		written, failed := file.Stats()
		if err := file.Close(); err != nil {
			log.Printf("Error closing capture: %v", err)
		}
		log.Printf("Capture closed: %d events written, %d failed", written, failed)
	}, nil
}

func reportEvent(logger *slog.Logger) eventloop.Handler {
	return func(_ eventloop.Base, _ eventloop.ID, data any) {
		ev, ok := data.(events.Event)
		if !ok {
			return
		}
		if ev.Kind == events.AddressAcquired {
			logger.Info("network event", "kind", ev.Kind, "ip", ev.IP.String())
			return
		}
		logger.Info("network event", "kind", ev.Kind)
	}
}
