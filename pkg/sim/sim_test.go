package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethlink/ethlink-go/pkg/board"
	"github.com/ethlink/ethlink-go/pkg/driver"
	"github.com/ethlink/ethlink-go/pkg/eventloop"
	"github.com/ethlink/ethlink-go/pkg/status"
)

// recordingPoster collects posted driver event IDs.
type recordingPoster struct {
	ids  []eventloop.ID
	data []any
}

func (p *recordingPoster) Post(_ context.Context, _ eventloop.Base, id eventloop.ID, data any, _ time.Duration) error {
	p.ids = append(p.ids, id)
	p.data = append(p.data, data)
	return nil
}

func install(t *testing.T, lib *Library) *Link {
	t.Helper()
	cfg := board.Default()
	mac, err := lib.NewMAC(cfg.MAC)
	require.NoError(t, err)
	phy, err := lib.NewPHY(cfg.PHY)
	require.NoError(t, err)
	l, err := lib.Install(mac, phy)
	require.NoError(t, err)
	return l.(*Link)
}

func TestLinkPostsLifecycleEvents(t *testing.T) {
	p := &recordingPoster{}
	l := install(t, NewLibrary(p, LibraryConfig{}))

	require.NoError(t, l.Start())
	l.SetCarrier(true)
	l.SetCarrier(true) // no change
	l.SetCarrier(false)
	require.NoError(t, l.Stop())

	assert.Equal(t, []eventloop.ID{
		driver.EventStart, driver.EventConnected, driver.EventDisconnected, driver.EventStop,
	}, p.ids)
	assert.Same(t, l, p.data[0].(*Link))
}

func TestAutoCarrierConnectsOnStart(t *testing.T) {
	p := &recordingPoster{}
	l := install(t, NewLibrary(p, LibraryConfig{AutoCarrier: true}))

	require.NoError(t, l.Start())
	assert.Equal(t, []eventloop.ID{driver.EventStart, driver.EventConnected}, p.ids)
	assert.True(t, l.Up())
}

func TestCarrierBeforeStartIsSilent(t *testing.T) {
	p := &recordingPoster{}
	l := install(t, NewLibrary(p, LibraryConfig{}))

	l.SetCarrier(true)
	assert.Empty(t, p.ids)

	require.NoError(t, l.Start())
	assert.Equal(t, []eventloop.ID{driver.EventStart, driver.EventConnected}, p.ids)
}

func TestUninstallRequiresStopped(t *testing.T) {
	l := install(t, NewLibrary(&recordingPoster{}, LibraryConfig{}))
	require.NoError(t, l.Start())

	err := l.Uninstall()
	var derr *status.DriverError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, StatusInvalidState, derr.Status)

	require.NoError(t, l.Stop())
	require.NoError(t, l.Uninstall())
	assert.ErrorIs(t, l.Uninstall(), ErrUninstall)
}

func TestHardwareAddrsIncrement(t *testing.T) {
	lib := NewLibrary(&recordingPoster{}, LibraryConfig{})
	a, _ := install(t, lib).HardwareAddr()
	b, _ := install(t, lib).HardwareAddr()

	assert.Equal(t, a[:5], b[:5])
	assert.Equal(t, a[5]+1, b[5])
	assert.Equal(t, byte(0x02), a[0]&0x03)
}

func TestInjectFault(t *testing.T) {
	lib := NewLibrary(&recordingPoster{}, LibraryConfig{})
	lib.InjectFault(OpInstall, nil)

	cfg := board.Default()
	mac, _ := lib.NewMAC(cfg.MAC)
	phy, _ := lib.NewPHY(cfg.PHY)
	_, err := lib.Install(mac, phy)
	var derr *status.DriverError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, StatusInvalidState, derr.Status)

	// One shot.
	_, err = lib.Install(mac, phy)
	assert.NoError(t, err)
}

func TestDoubleDeleteFails(t *testing.T) {
	lib := NewLibrary(&recordingPoster{}, LibraryConfig{})
	mac, _ := lib.NewMAC(board.Default().MAC)
	require.NoError(t, mac.Del())
	assert.Error(t, mac.Del())
}

func TestNewPHYRejectsUnknownType(t *testing.T) {
	lib := NewLibrary(&recordingPoster{}, LibraryConfig{})
	_, err := lib.NewPHY(board.PHYConfig{Type: 9})
	assert.Error(t, err)
}

func TestCableDeliversFrames(t *testing.T) {
	lib := NewLibrary(&recordingPoster{}, LibraryConfig{})
	a, b := install(t, lib), install(t, lib)
	require.NoError(t, a.Start())
	require.NoError(t, b.Start())

	var got [][]byte
	b.SetReceiver(func(frame []byte) error {
		got = append(got, frame)
		return nil
	})

	assert.ErrorIs(t, a.Transmit([]byte{1}), ErrLinkDown)

	Connect(a, b)
	frame := []byte{0xde, 0xad}
	require.NoError(t, a.Transmit(frame))
	frame[0] = 0 // delivered copy is independent
	require.Len(t, got, 1)
	assert.Equal(t, []byte{0xde, 0xad}, got[0])

	Unplug(a)
	assert.False(t, a.Carrier())
	assert.False(t, b.Carrier())
	assert.ErrorIs(t, a.Transmit(frame), ErrLinkDown)
}

func TestUnconnectedTransmitDrops(t *testing.T) {
	l := install(t, NewLibrary(&recordingPoster{}, LibraryConfig{AutoCarrier: true}))
	require.NoError(t, l.Start())
	require.NoError(t, l.Transmit([]byte{1, 2, 3}))

	tx, rx, dropped := l.Counters()
	assert.Equal(t, 1, tx)
	assert.Equal(t, 0, rx)
	assert.Equal(t, 1, dropped)
}
