package netstack

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethlink/ethlink-go/pkg/board"
	"github.com/ethlink/ethlink-go/pkg/driver"
	"github.com/ethlink/ethlink-go/pkg/eventloop"
	"github.com/ethlink/ethlink-go/pkg/netif"
)

// slowIPLoop delays GotIP posts, standing in for the acquire goroutine
// being descheduled between resolving and posting.
type slowIPLoop struct {
	*eventloop.Loop
	delay time.Duration
}

func (l *slowIPLoop) Post(ctx context.Context, base eventloop.Base, id eventloop.ID, data any, timeout time.Duration) error {
	if base == netif.IPEventBase && id == netif.EventEthGotIP {
		time.Sleep(l.delay)
	}
	return l.Loop.Post(ctx, base, id, data, timeout)
}

// recordSequence names every link and IP event dispatched on sys.
func recordSequence(t *testing.T, sys *eventloop.Loop) func() []string {
	t.Helper()
	var mu sync.Mutex
	var seq []string
	add := func(name string) {
		mu.Lock()
		seq = append(seq, name)
		mu.Unlock()
	}
	_, err := sys.Register(driver.EventBase, eventloop.AnyID, func(_ eventloop.Base, id eventloop.ID, _ any) {
		add(driver.EventName(id))
	})
	require.NoError(t, err)
	_, err = sys.Register(netif.IPEventBase, eventloop.AnyID, func(_ eventloop.Base, id eventloop.ID, _ any) {
		if id == netif.EventEthGotIP {
			add("GOT_IP")
		} else {
			add("LOST_IP")
		}
	})
	require.NoError(t, err)
	return func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), seq...)
	}
}

func TestCarrierDropDuringAcquisitionPostsNoAddress(t *testing.T) {
	sys := startLoop(t)
	seq := recordSequence(t, sys)
	s := New(&slowIPLoop{Loop: sys, delay: 50 * time.Millisecond}, Config{})
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
	time.Sleep(10 * time.Millisecond)
	link.SetCarrier(false)

	// The DISCONNECTED handler returns only after acquisition has finished.
	require.NoError(t, sys.Flush(t.Context()))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, sys.Flush(t.Context()))

	got := seq()
	require.GreaterOrEqual(t, len(got), 3)
	assert.Equal(t, []string{"START", "CONNECTED", "DISCONNECTED"}, got[:3])
	assert.NotContains(t, got, "GOT_IP")
	assert.False(t, ni.(*Interface).IP().Addr.IsValid())

	require.NoError(t, link.Stop())
	require.NoError(t, s.DeleteGlue(glue))
	require.NoError(t, s.Destroy(ni))
	require.NoError(t, s.Deinit())
}
