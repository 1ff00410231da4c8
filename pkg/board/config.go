package board

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration errors.
var (
	ErrInvalidConfig = errors.New("invalid board configuration")
	ErrUnknownPHY    = errors.New("unknown transceiver type")
)

// PHYType is the transceiver variant fitted on the board.
// Values match the firmware configuration codes.
type PHYType uint8

const (
	PHYIP101   PHYType = 1
	PHYRTL8201 PHYType = 2
	PHYLAN87XX PHYType = 3
	PHYDP83848 PHYType = 4
	PHYKSZ80XX PHYType = 5
)

// String returns the transceiver name.
func (t PHYType) String() string {
	switch t {
	case PHYIP101:
		return "IP101"
	case PHYRTL8201:
		return "RTL8201"
	case PHYLAN87XX:
		return "LAN87XX"
	case PHYDP83848:
		return "DP83848"
	case PHYKSZ80XX:
		return "KSZ80XX"
	default:
		return "UNKNOWN"
	}
}

// ParsePHYType parses a transceiver name, case-insensitively.
func ParsePHYType(s string) (PHYType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "IP101":
		return PHYIP101, nil
	case "RTL8201":
		return PHYRTL8201, nil
	case "LAN87XX", "LAN8720":
		return PHYLAN87XX, nil
	case "DP83848":
		return PHYDP83848, nil
	case "KSZ80XX", "KSZ8081":
		return PHYKSZ80XX, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPHY, s)
	}
}

// MarshalYAML encodes the type as its lowercase name.
func (t PHYType) MarshalYAML() (any, error) {
	return strings.ToLower(t.String()), nil
}

// UnmarshalYAML decodes a transceiver name.
func (t *PHYType) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParsePHYType(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*t = v
	return nil
}

// DataInterface is the MAC to PHY data interface.
type DataInterface string

const (
	InterfaceRMII DataInterface = "rmii"
	InterfaceMII  DataInterface = "mii"
)

// ClockMode selects the direction of the RMII reference clock.
type ClockMode string

const (
	// ClockExtIn takes the 50 MHz reference from the PHY or an oscillator.
	ClockExtIn ClockMode = "ext_in"
	// ClockOut drives the reference clock from the MAC.
	ClockOut ClockMode = "out"
)

// NoGPIO marks an unused pin.
const NoGPIO = -1

// AutoPHYAddr lets the driver scan the MDIO bus for the transceiver.
const AutoPHYAddr = -1

// PHYConfig configures the transceiver.
type PHYConfig struct {
	// Type is the transceiver variant.
	Type PHYType `yaml:"type"`

	// Address is the MDIO bus address (0-31, AutoPHYAddr to scan).
	Address int `yaml:"address"`

	// ResetGPIO is the transceiver reset/power pin (NoGPIO if none).
	ResetGPIO int `yaml:"reset_gpio"`
}

// MACConfig configures the MAC and its management bus.
type MACConfig struct {
	// Interface is the data interface mode.
	Interface DataInterface `yaml:"interface"`

	// MDCGPIO is the SMI clock pin.
	MDCGPIO int `yaml:"mdc_gpio"`

	// MDIOGPIO is the SMI data pin.
	MDIOGPIO int `yaml:"mdio_gpio"`

	// ClockMode is the RMII reference clock direction.
	ClockMode ClockMode `yaml:"clock_mode"`

	// ClockGPIO is the RMII reference clock pin.
	ClockGPIO int `yaml:"clock_gpio"`
}

// NetifConfig configures the network-stack interface created on start.
type NetifConfig struct {
	// Key is the logical interface key.
	Key string `yaml:"key"`

	// Description is the human readable interface name.
	Description string `yaml:"description"`

	// RoutePriority orders this interface against others for the default route.
	RoutePriority int `yaml:"route_priority"`

	// StaticAddress, when set, is assigned on link-up instead of running DHCP
	// (CIDR notation, e.g. "192.0.2.10/24").
	StaticAddress string `yaml:"static_address"`

	// Gateway is the default gateway used with StaticAddress.
	Gateway string `yaml:"gateway"`

	// Hostname is sent in DHCP requests.
	Hostname string `yaml:"hostname"`
}

// EventsConfig configures normalized event re-dispatch.
type EventsConfig struct {
	// PostTimeout bounds how long the translator waits for application queue
	// space. Zero waits forever.
	PostTimeout time.Duration `yaml:"post_timeout"`

	// QueueSize is the application event queue capacity.
	QueueSize int `yaml:"queue_size"`
}

// Config is the complete board configuration.
type Config struct {
	PHY    PHYConfig    `yaml:"phy"`
	MAC    MACConfig    `yaml:"mac"`
	Netif  NetifConfig  `yaml:"netif"`
	Events EventsConfig `yaml:"events"`
}

// Default returns the configuration of the common ESP32 + IP101 reference
// wiring (RMII, external 50 MHz clock on GPIO0).
func Default() Config {
	return Config{
		PHY: PHYConfig{
			Type:      PHYIP101,
			Address:   1,
			ResetGPIO: 5,
		},
		MAC: MACConfig{
			Interface: InterfaceRMII,
			MDCGPIO:   23,
			MDIOGPIO:  18,
			ClockMode: ClockExtIn,
			ClockGPIO: 0,
		},
		Netif: NetifConfig{
			Key:           "ETH",
			Description:   "Ethernet",
			RoutePriority: 32767,
			Hostname:      "ethlink",
		},
		Events: EventsConfig{
			PostTimeout: 0,
			QueueSize:   32,
		},
	}
}

// Validate checks the configuration for values the driver cannot use.
func (c *Config) Validate() error {
	if c.PHY.Type < PHYIP101 || c.PHY.Type > PHYKSZ80XX {
		return fmt.Errorf("%w: phy type %d", ErrInvalidConfig, c.PHY.Type)
	}
	if c.PHY.Address != AutoPHYAddr && (c.PHY.Address < 0 || c.PHY.Address > 31) {
		return fmt.Errorf("%w: phy address %d out of range 0-31", ErrInvalidConfig, c.PHY.Address)
	}
	switch c.MAC.Interface {
	case InterfaceRMII, InterfaceMII:
	default:
		return fmt.Errorf("%w: data interface %q", ErrInvalidConfig, c.MAC.Interface)
	}
	if c.MAC.Interface == InterfaceRMII {
		switch c.MAC.ClockMode {
		case ClockExtIn, ClockOut:
		default:
			return fmt.Errorf("%w: clock mode %q", ErrInvalidConfig, c.MAC.ClockMode)
		}
	}
	if c.MAC.MDCGPIO < 0 || c.MAC.MDIOGPIO < 0 {
		return fmt.Errorf("%w: mdc/mdio gpio required", ErrInvalidConfig)
	}
	if c.MAC.MDCGPIO == c.MAC.MDIOGPIO {
		return fmt.Errorf("%w: mdc and mdio share gpio %d", ErrInvalidConfig, c.MAC.MDCGPIO)
	}
	if c.Netif.Key == "" {
		return fmt.Errorf("%w: netif key required", ErrInvalidConfig)
	}
	if c.Events.PostTimeout < 0 {
		return fmt.Errorf("%w: negative post timeout", ErrInvalidConfig)
	}
	if c.Events.QueueSize < 1 {
		return fmt.Errorf("%w: queue size must be positive", ErrInvalidConfig)
	}
	return nil
}

// Parse decodes YAML on top of Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("YAML parse error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads and parses a YAML board configuration file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read board config: %w", err)
	}
	return Parse(data)
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
