// Package board holds the board-time configuration of the wired link:
// transceiver variant and bus address, reset GPIO, MAC data interface and
// clock wiring, MDC/MDIO pins, network interface identity, and event
// re-dispatch settings.
//
// Configurations are loaded from YAML and validated before use:
//
//	cfg, err := board.LoadFile("/etc/ethlink/board.yaml")
//	if err != nil {
//	    return err
//	}
//
// Fields missing from the file keep the values of Default().
package board
