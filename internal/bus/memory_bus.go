// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package bus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/fecauca/fecauca-web/internal/log"
	"github.com/fecauca/fecauca-web/internal/metrics"
)

// ErrClosed is returned by Subscribe once the bus has been closed.
var ErrClosed = errors.New("bus closed")

// DefaultBuffer is the per-subscriber channel capacity.
const DefaultBuffer = 16

const dropLogEvery = 100

// MemoryBus is a non-durable in-process pub/sub. Publish never blocks: a
// subscriber whose buffer is full misses the message and the drop is counted.
type MemoryBus struct {
	mu     sync.RWMutex
	subs   map[string][]*memSub
	buffer int
	closed bool
	logger zerolog.Logger

	drops atomic.Uint64
}

// NewMemoryBus creates a bus with DefaultBuffer slots per subscriber.
func NewMemoryBus() *MemoryBus {
	return NewMemoryBusWithBuffer(DefaultBuffer)
}

// NewMemoryBusWithBuffer creates a bus with the given per-subscriber capacity.
func NewMemoryBusWithBuffer(buffer int) *MemoryBus {
	if buffer < 1 {
		buffer = 1
	}
	return &MemoryBus{
		subs:   make(map[string][]*memSub),
		buffer: buffer,
		logger: log.WithComponent("bus"),
	}
}

func (b *MemoryBus) Publish(ctx context.Context, topic string, msg Message) error {
	if ctx == nil {
		return fmt.Errorf("publish context is nil")
	}
	if err := ctx.Err(); err != nil {
		metrics.IncBusDropReason(topic, "canceled")
		return fmt.Errorf("publish topic %q: %w", topic, err)
	}

	// Sends happen under the read lock so Close cannot close a channel mid-send.
	b.mu.RLock()
	defer b.mu.RUnlock()

	metrics.IncBusPublished(topic)
	for _, s := range b.subs[topic] {
		select {
		case s.ch <- msg:
		default:
			metrics.IncBusDrop(topic)
			count := b.drops.Add(1)
			if count%dropLogEvery == 1 {
				b.logger.Warn().
					Str(log.FieldEvent, "bus.drop").
					Str("topic", topic).
					Uint64("dropped", count).
					Msg("subscriber buffer full, message dropped")
			}
		}
	}
	return nil
}

func (b *MemoryBus) Subscribe(_ context.Context, topic string) (Subscriber, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}
	s := &memSub{b: b, topic: topic, ch: make(chan Message, b.buffer)}
	b.subs[topic] = append(b.subs[topic], s)
	return s, nil
}

// Dropped reports how many deliveries were dropped since creation.
func (b *MemoryBus) Dropped() uint64 {
	return b.drops.Load()
}

// Close closes every subscriber. Later Subscribe calls fail with ErrClosed.
func (b *MemoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for topic, lst := range b.subs {
		for _, s := range lst {
			s.closeLocked()
		}
		delete(b.subs, topic)
	}
	return nil
}

type memSub struct {
	b      *MemoryBus
	topic  string
	ch     chan Message
	closed bool
}

func (s *memSub) C() <-chan Message {
	return s.ch
}

// Close unsubscribes and closes the channel. Calling it twice is a no-op.
func (s *memSub) Close() error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	if s.closed {
		return nil
	}

	lst := s.b.subs[s.topic]
	out := lst[:0]
	for _, c := range lst {
		if c != s {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		delete(s.b.subs, s.topic)
	} else {
		s.b.subs[s.topic] = out
	}
	s.closeLocked()
	return nil
}

func (s *memSub) closeLocked() {
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

var _ Bus = (*MemoryBus)(nil)
