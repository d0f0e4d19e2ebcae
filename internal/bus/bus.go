// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package bus is an in-process publish/subscribe hub used to broadcast content
// updates (for example a changed blog post list) to interested components.
package bus

import "context"

// Message is any payload published on a topic.
type Message any

// Publisher publishes messages on a topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, msg Message) error
}

// Subscriber receives messages of one topic until closed.
type Subscriber interface {
	C() <-chan Message
	Close() error
}

// Bus combines publishing and subscribing.
type Bus interface {
	Publisher
	Subscribe(ctx context.Context, topic string) (Subscriber, error)
}
