package ws

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu     sync.Mutex
	json   []any
	texts  []string
	fail   bool
	closed bool
}

func (f *fakeConn) WriteJSON(v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("write failed")
	}
	f.json = append(f.json, v)
	return nil
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("write failed")
	}
	f.texts = append(f.texts, string(data))
	return nil
}

func (f *fakeConn) SetWriteDeadline(t time.Time) error { return nil }

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) jsonCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.json)
}

func TestBroadcastReachesOnlyChannelPeers(t *testing.T) {
	hub := NewHub()
	kitchen1, kitchen2, menu := &fakeConn{}, &fakeConn{}, &fakeConn{}
	hub.Register(ChannelKitchen, kitchen1)
	hub.Register(ChannelKitchen, kitchen2)
	hub.Register(ChannelMenu, menu)

	hub.Broadcast(ChannelKitchen, map[string]any{"type": "new_order"})

	assert.Equal(t, 1, kitchen1.jsonCount())
	assert.Equal(t, 1, kitchen2.jsonCount())
	assert.Equal(t, 0, menu.jsonCount())
}

func TestUnregisteredPeerGetsNothing(t *testing.T) {
	hub := NewHub()
	stays, leaves := &fakeConn{}, &fakeConn{}
	hub.Register(ChannelChef, stays)
	hub.Register(ChannelChef, leaves)

	hub.Unregister(ChannelChef, leaves)
	hub.Broadcast(ChannelChef, map[string]any{"type": "chef_msg"})

	assert.Equal(t, 1, stays.jsonCount())
	assert.Equal(t, 0, leaves.jsonCount())
	assert.True(t, leaves.closed)
}

func TestDoubleUnregisterIsNoOp(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}
	hub.Register(ChannelMenu, conn)

	hub.Unregister(ChannelMenu, conn)
	assert.NotPanics(t, func() { hub.Unregister(ChannelMenu, conn) })

	// unregistering on a channel that never existed is also fine
	assert.NotPanics(t, func() { hub.Unregister("nope", conn) })
}

func TestFailedWriteEvictsPeer(t *testing.T) {
	hub := NewHub()
	good, bad := &fakeConn{}, &fakeConn{fail: true}
	hub.Register(ChannelKitchen, good)
	hub.Register(ChannelKitchen, bad)

	hub.Broadcast(ChannelKitchen, map[string]any{"type": "new_order", "orderId": "o1"})

	// the failing peer must not block delivery to the healthy one
	require.Equal(t, 1, good.jsonCount())
	assert.True(t, bad.closed)

	hub.mu.Lock()
	_, stillThere := hub.channels[ChannelKitchen][bad]
	hub.mu.Unlock()
	assert.False(t, stillThere)

	hub.Broadcast(ChannelKitchen, map[string]any{"type": "new_order", "orderId": "o2"})
	assert.Equal(t, 2, good.jsonCount())
}

func TestBroadcastTextSendsRawFrames(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}
	hub.Register(ChannelKitchen, conn)

	hub.BroadcastText(ChannelKitchen, []byte("table 4 ready"))

	conn.mu.Lock()
	defer conn.mu.Unlock()
	require.Len(t, conn.texts, 1)
	assert.Equal(t, "table 4 ready", conn.texts[0])
	assert.Empty(t, conn.json)
}

func TestConcurrentRegisterAndBroadcast(t *testing.T) {
	hub := NewHub()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn := &fakeConn{}
			hub.Register(ChannelPopular, conn)
			hub.Broadcast(ChannelPopular, map[string]any{"type": "popular_update"})
			hub.Unregister(ChannelPopular, conn)
		}()
	}
	wg.Wait()

	hub.mu.Lock()
	defer hub.mu.Unlock()
	assert.Empty(t, hub.channels[ChannelPopular])
}
