package netstack

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethlink/ethlink-go/pkg/board"
	"github.com/ethlink/ethlink-go/pkg/eventloop"
	"github.com/ethlink/ethlink-go/pkg/netif"
	"github.com/ethlink/ethlink-go/pkg/sim"
)

func startLoop(t *testing.T) *eventloop.Loop {
	t.Helper()
	l := eventloop.New(eventloop.Config{Name: "sys"})
	require.NoError(t, l.Start())
	t.Cleanup(func() { _ = l.Stop() })
	return l
}

func installLink(t *testing.T, sys *eventloop.Loop) *sim.Link {
	t.Helper()
	lib := sim.NewLibrary(sys, sim.LibraryConfig{})
	cfg := board.Default()
	mac, err := lib.NewMAC(cfg.MAC)
	require.NoError(t, err)
	phy, err := lib.NewPHY(cfg.PHY)
	require.NoError(t, err)
	l, err := lib.Install(mac, phy)
	require.NoError(t, err)
	return l.(*sim.Link)
}

func ipEvents(t *testing.T, sys *eventloop.Loop) <-chan *netif.GotIPEvent {
	t.Helper()
	ch := make(chan *netif.GotIPEvent, 4)
	_, err := sys.Register(netif.IPEventBase, eventloop.AnyID, func(_ eventloop.Base, id eventloop.ID, data any) {
		ev := data.(*netif.GotIPEvent)
		if id == netif.EventEthLostIP {
			ev = &netif.GotIPEvent{Key: ev.Key}
		}
		ch <- ev
	})
	require.NoError(t, err)
	return ch
}

func TestInitIsReferenceCounted(t *testing.T) {
	s := New(startLoop(t), Config{})

	require.NoError(t, s.Init())
	assert.ErrorIs(t, s.Init(), netif.ErrAlreadyInitialized)
	require.NoError(t, s.Deinit())
	assert.True(t, s.Initialized())
	require.NoError(t, s.Deinit())
	assert.False(t, s.Initialized())
	assert.ErrorIs(t, s.Deinit(), ErrNotInitialized)
}

func TestNewInterfaceRequiresInit(t *testing.T) {
	s := New(startLoop(t), Config{})
	_, err := s.NewInterface(board.Default().Netif)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestNewInterfaceRejectsBadStaticAddress(t *testing.T) {
	s := New(startLoop(t), Config{})
	require.NoError(t, s.Init())

	cfg := board.Default().Netif
	cfg.StaticAddress = "192.0.2.300/24"
	_, err := s.NewInterface(cfg)
	assert.ErrorIs(t, err, ErrBadAddress)
}

func TestStaticAddressPostedOnConnect(t *testing.T) {
	sys := startLoop(t)
	got := ipEvents(t, sys)
	s := New(sys, Config{})
	link := installLink(t, sys)

	cfg := board.Default().Netif
	cfg.StaticAddress = "192.0.2.10/24"
	cfg.Gateway = "192.0.2.1"

	require.NoError(t, s.Init())
	ni, err := s.NewInterface(cfg)
	require.NoError(t, err)
	glue, err := s.NewGlue(link)
	require.NoError(t, err)
	require.NoError(t, s.Attach(ni, glue))

	require.NoError(t, link.Start())
	link.SetCarrier(true)

	select {
	case ev := <-got:
		assert.Equal(t, "ETH", ev.Key)
		assert.Equal(t, "192.0.2.10", ev.IP.Addr.String())
		assert.Equal(t, "255.255.255.0", ev.IP.Netmask.String())
		assert.Equal(t, "192.0.2.1", ev.IP.Gateway.String())
		assert.True(t, ev.Changed)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for GOT_IP")
	}
	iface := ni.(*Interface)
	assert.NotNil(t, iface.PortStack())

	link.SetCarrier(false)
	select {
	case ev := <-got:
		assert.False(t, ev.IP.Addr.IsValid())
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for LOST_IP")
	}
	require.NoError(t, sys.Flush(t.Context()))
	assert.Nil(t, iface.PortStack())

	require.NoError(t, link.Stop())
	require.NoError(t, s.DeleteGlue(glue))
	require.NoError(t, s.Destroy(ni))
	require.NoError(t, s.Deinit())
}

func TestDestroyAttachedFails(t *testing.T) {
	sys := startLoop(t)
	s := New(sys, Config{})
	require.NoError(t, s.Init())
	ni, _ := s.NewInterface(board.Default().Netif)
	glue, _ := s.NewGlue(installLink(t, sys))
	require.NoError(t, s.Attach(ni, glue))

	assert.ErrorIs(t, s.Destroy(ni), ErrAttached)
	assert.ErrorIs(t, s.Deinit(), ErrAttached)
	assert.ErrorIs(t, s.Attach(ni, glue), ErrAttached)

	require.NoError(t, s.DeleteGlue(glue))
	require.NoError(t, s.Destroy(ni))
	require.NoError(t, s.Deinit())
	assert.Equal(t, 0, sys.HandlerCount())
}

type foreignIface struct{}

func (foreignIface) Key() string { return "X" }

func TestForeignHandles(t *testing.T) {
	sys := startLoop(t)
	s := New(sys, Config{})
	require.NoError(t, s.Init())
	glue, _ := s.NewGlue(installLink(t, sys))

	assert.True(t, errors.Is(s.Attach(foreignIface{}, glue), ErrForeignHandle))
	assert.True(t, errors.Is(s.Destroy(foreignIface{}), ErrForeignHandle))

	_, err := s.NewGlue(nil)
	assert.ErrorIs(t, err, ErrForeignHandle)
}

func TestIgnoresOtherLinks(t *testing.T) {
	sys := startLoop(t)
	s := New(sys, Config{})
	require.NoError(t, s.Init())

	cfg := board.Default().Netif
	cfg.StaticAddress = "192.0.2.10/24"
	ni, _ := s.NewInterface(cfg)
	mine := installLink(t, sys)
	other := installLink(t, sys)
	glue, _ := s.NewGlue(mine)
	require.NoError(t, s.Attach(ni, glue))

	require.NoError(t, other.Start())
	other.SetCarrier(true)
	require.NoError(t, sys.Flush(t.Context()))
	assert.Nil(t, ni.(*Interface).PortStack())
}

func TestMaskFromBits(t *testing.T) {
	tests := []struct {
		bits int
		want string
	}{
		{0, "0.0.0.0"},
		{8, "255.0.0.0"},
		{24, "255.255.255.0"},
		{30, "255.255.255.252"},
		{32, "255.255.255.255"},
	}
	for _, tt := range tests {
		if got := maskFromBits(tt.bits).String(); got != tt.want {
			t.Errorf("maskFromBits(%d): got %s, want %s", tt.bits, got, tt.want)
		}
	}
}
