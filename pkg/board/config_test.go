package board

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "ETH", cfg.Netif.Key)
	assert.Equal(t, "Ethernet", cfg.Netif.Description)
	assert.Equal(t, 32767, cfg.Netif.RoutePriority)
	assert.Equal(t, time.Duration(0), cfg.Events.PostTimeout)
}

func TestParsePHYType(t *testing.T) {
	tests := []struct {
		in   string
		want PHYType
	}{
		{"ip101", PHYIP101},
		{"RTL8201", PHYRTL8201},
		{"lan87xx", PHYLAN87XX},
		{"LAN8720", PHYLAN87XX},
		{" dp83848 ", PHYDP83848},
		{"ksz80xx", PHYKSZ80XX},
	}
	for _, tt := range tests {
		got, err := ParsePHYType(tt.in)
		if err != nil {
			t.Errorf("ParsePHYType(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePHYType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	_, err := ParsePHYType("w5500")
	assert.True(t, errors.Is(err, ErrUnknownPHY))
}

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
phy:
  type: lan87xx
  address: 0
  reset_gpio: -1
mac:
  clock_mode: out
  clock_gpio: 17
netif:
  static_address: 192.0.2.10/24
  gateway: 192.0.2.1
events:
  post_timeout: 250ms
  queue_size: 8
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, PHYLAN87XX, cfg.PHY.Type)
	assert.Equal(t, 0, cfg.PHY.Address)
	assert.Equal(t, NoGPIO, cfg.PHY.ResetGPIO)
	assert.Equal(t, ClockOut, cfg.MAC.ClockMode)
	assert.Equal(t, 17, cfg.MAC.ClockGPIO)
	// Untouched fields keep their defaults.
	assert.Equal(t, InterfaceRMII, cfg.MAC.Interface)
	assert.Equal(t, 23, cfg.MAC.MDCGPIO)
	assert.Equal(t, "ETH", cfg.Netif.Key)
	assert.Equal(t, "192.0.2.10/24", cfg.Netif.StaticAddress)
	assert.Equal(t, 250*time.Millisecond, cfg.Events.PostTimeout)
	assert.Equal(t, 8, cfg.Events.QueueSize)
}

func TestParseRejectsUnknownPHY(t *testing.T) {
	_, err := Parse([]byte("phy:\n  type: enc28j60\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPHY))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"phy type zero", func(c *Config) { c.PHY.Type = 0 }},
		{"phy address too high", func(c *Config) { c.PHY.Address = 32 }},
		{"bad data interface", func(c *Config) { c.MAC.Interface = "rgmii" }},
		{"bad clock mode", func(c *Config) { c.MAC.ClockMode = "internal" }},
		{"missing mdc", func(c *Config) { c.MAC.MDCGPIO = NoGPIO }},
		{"shared mdc mdio", func(c *Config) { c.MAC.MDIOGPIO = c.MAC.MDCGPIO }},
		{"empty key", func(c *Config) { c.Netif.Key = "" }},
		{"negative timeout", func(c *Config) { c.Events.PostTimeout = -time.Second }},
		{"zero queue", func(c *Config) { c.Events.QueueSize = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestAutoPHYAddrIsValid(t *testing.T) {
	cfg := Default()
	cfg.PHY.Address = AutoPHYAddr
	assert.NoError(t, cfg.Validate())
}

func TestMIIIgnoresClockMode(t *testing.T) {
	cfg := Default()
	cfg.MAC.Interface = InterfaceMII
	cfg.MAC.ClockMode = ""
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("phy:\n  type: dp83848\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, PHYDP83848, cfg.PHY.Type)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshalWritesTypeName(t *testing.T) {
	cfg := Default()
	cfg.PHY.Type = PHYKSZ80XX
	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "type: ksz80xx")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, PHYKSZ80XX, back.PHY.Type)
}
