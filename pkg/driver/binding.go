package driver

import (
	"errors"
	"log/slog"

	"github.com/ethlink/ethlink-go/pkg/board"
	"github.com/ethlink/ethlink-go/pkg/status"
)

// Binding errors.
var (
	ErrAlreadyConstructed = errors.New("link driver already constructed")
	ErrNilHandle          = errors.New("driver returned nil handle")
)

// Binding owns the MAC, PHY and link driver handles of one link.
// Handles are either fully constructed or nil.
type Binding struct {
	lib    Library
	logger *slog.Logger

	mac  MAC
	phy  PHY
	link Link
}

// NewBinding creates a binding over the given driver library.
// logger may be nil.
func NewBinding(lib Library, logger *slog.Logger) *Binding {
	return &Binding{lib: lib, logger: logger}
}

// Link returns the installed link driver, or nil.
func (b *Binding) Link() Link {
	return b.link
}

// Constructed reports whether any handle is held.
func (b *Binding) Constructed() bool {
	return b.link != nil || b.mac != nil || b.phy != nil
}

// Construct builds the MAC and the configured PHY variant and installs them.
// On failure every sub-instance built so far is deleted before returning.
func (b *Binding) Construct(cfg board.Config) (Link, error) {
	if b.Constructed() {
		return nil, status.New(status.InvalidState, "construct", ErrAlreadyConstructed)
	}

	mac, err := b.lib.NewMAC(cfg.MAC)
	if err == nil && mac == nil {
		err = ErrNilHandle
	}
	if err != nil {
		b.errorLog("failed to create MAC", "error", err)
		return nil, status.New(status.DriverConstructionFailed, "new_mac", err)
	}

	b.debugLog("selected PHY", "phy", cfg.PHY.Type.String(), "addr", cfg.PHY.Address)
	phy, err := b.lib.NewPHY(cfg.PHY)
	if err == nil && phy == nil {
		err = ErrNilHandle
	}
	if err != nil {
		b.errorLog("failed to create PHY", "phy", cfg.PHY.Type.String(), "error", err)
		b.release(mac, nil)
		return nil, status.New(status.DriverConstructionFailed, "new_phy", err)
	}

	link, err := b.lib.Install(mac, phy)
	if err == nil && link == nil {
		err = ErrNilHandle
	}
	if err != nil {
		serr := status.New(status.DriverInstallFailed, "install", err)
		b.errorLog("failed to install link driver", "status", serr.DriverStatus, "error", err)
		if link != nil {
			if uerr := link.Uninstall(); uerr != nil {
				b.errorLog("failed to uninstall partial link driver", "error", uerr)
			}
		}
		b.release(mac, phy)
		return nil, serr
	}

	b.mac, b.phy, b.link = mac, phy, link
	b.infoLog("link driver installed", "phy", phy.Type().String())
	return link, nil
}

// Destroy uninstalls the link driver, then deletes the MAC and PHY. Every
// step is attempted; the first failure is returned with code UninstallFailed.
// All handles are cleared regardless of outcome.
func (b *Binding) Destroy() error {
	var first error
	note := func(op string, err error) {
		if err == nil {
			return
		}
		b.errorLog("driver teardown step failed", "op", op, "error", err)
		if first == nil {
			first = status.New(status.UninstallFailed, op, err)
		}
	}

	if b.link != nil {
		note("uninstall", b.link.Uninstall())
	}
	if b.mac != nil {
		note("delete_mac", b.mac.Del())
	}
	if b.phy != nil {
		note("delete_phy", b.phy.Del())
	}

	b.mac, b.phy, b.link = nil, nil, nil
	if first == nil {
		b.infoLog("link driver uninstalled")
	}
	return first
}

// release deletes sub-instances built during a failed Construct.
func (b *Binding) release(mac MAC, phy PHY) {
	if mac != nil {
		if err := mac.Del(); err != nil {
			b.errorLog("failed to delete MAC", "error", err)
		}
	}
	if phy != nil {
		if err := phy.Del(); err != nil {
			b.errorLog("failed to delete PHY", "error", err)
		}
	}
}

func (b *Binding) debugLog(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Debug(msg, args...)
	}
}

func (b *Binding) infoLog(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Info(msg, args...)
	}
}

func (b *Binding) errorLog(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Error(msg, args...)
	}
}
