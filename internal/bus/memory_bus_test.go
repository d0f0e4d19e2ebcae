// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package bus

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/fecauca/fecauca-web/internal/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMemoryBus_DeliversToAllSubscribers(t *testing.T) {
	b := NewMemoryBus()
	s1, err := b.Subscribe(context.Background(), "topic")
	require.NoError(t, err)
	s2, err := b.Subscribe(context.Background(), "topic")
	require.NoError(t, err)
	other, err := b.Subscribe(context.Background(), "other")
	require.NoError(t, err)

	require.NoError(t, b.Publish(context.Background(), "topic", "hello"))

	assert.Equal(t, Message("hello"), <-s1.C())
	assert.Equal(t, Message("hello"), <-s2.C())
	assert.Empty(t, other.C())

	require.NoError(t, b.Close())
}

func TestMemoryBus_FullSubscriberDropsWithoutBlocking(t *testing.T) {
	b := NewMemoryBusWithBuffer(2)
	sub, err := b.Subscribe(context.Background(), "topic")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sub.Close() })

	for i := 0; i < 5; i++ {
		require.NoError(t, b.Publish(context.Background(), "topic", i))
	}

	assert.Equal(t, uint64(3), b.Dropped())
	assert.Equal(t, Message(0), <-sub.C())
	assert.Equal(t, Message(1), <-sub.C())
}

func TestMemoryBus_DropIsLoggedWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log.Reconfigure(log.Config{Level: "info", Output: &buf})
	t.Cleanup(func() { log.Reconfigure(log.Config{}) })

	b := NewMemoryBusWithBuffer(1)
	sub, err := b.Subscribe(context.Background(), "topic")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sub.Close() })

	require.NoError(t, b.Publish(context.Background(), "topic", "first"))
	require.NoError(t, b.Publish(context.Background(), "topic", "second"))

	assert.Equal(t, uint64(1), b.Dropped())
	out := buf.String()
	assert.Contains(t, out, `"event":"bus.drop"`)
	assert.Contains(t, out, `"component":"bus"`)
	assert.Contains(t, out, `"topic":"topic"`)
}

func TestMemoryBus_PublishRejectsNilAndCanceledContext(t *testing.T) {
	b := NewMemoryBus()
	//nolint:staticcheck // nil context is the case under test
	err := b.Publish(nil, "topic", "msg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context is nil")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = b.Publish(ctx, "topic", "msg")
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemoryBus_SubscriberCloseIsIdempotent(t *testing.T) {
	b := NewMemoryBus()
	sub, err := b.Subscribe(context.Background(), "topic")
	require.NoError(t, err)

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())

	_, open := <-sub.C()
	assert.False(t, open)

	// Publishing after unsubscribe must not panic on the closed channel.
	require.NoError(t, b.Publish(context.Background(), "topic", "late"))
}

func TestMemoryBus_CloseEndsSubscriptions(t *testing.T) {
	b := NewMemoryBus()
	sub, err := b.Subscribe(context.Background(), "topic")
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range sub.C() {
		}
	}()

	require.NoError(t, b.Close())
	wg.Wait()

	require.NoError(t, sub.Close())
	_, err = b.Subscribe(context.Background(), "topic")
	require.ErrorIs(t, err, ErrClosed)
}

func TestMemoryBus_ConcurrentPublishAndClose(t *testing.T) {
	b := NewMemoryBus()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		sub, err := b.Subscribe(context.Background(), "topic")
		require.NoError(t, err)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range sub.C() {
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = b.Publish(context.Background(), "topic", j)
			}
			_ = sub.Close()
		}()
	}
	wg.Wait()
	require.NoError(t, b.Close())
}
