/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package gate

import (
	"sync"
	"time"
)

// DefaultDismissDelay is how long a banner message stays visible.
const DefaultDismissDelay = 3 * time.Second

// Banner holds a transient user-facing message that clears itself after a
// fixed delay. Showing a new message re-arms the countdown; a timer armed
// for an older message never clears a newer one.
type Banner struct {
	mu         sync.Mutex
	delay      time.Duration
	message    string
	generation uint64
	timer      *time.Timer

	// OnChange, when set, is called after the message is shown or cleared.
	// It runs outside the lock and may be called from the timer goroutine.
	OnChange func(message string)
}

// NewBanner returns a banner that dismisses messages after delay. A
// non-positive delay uses DefaultDismissDelay.
func NewBanner(delay time.Duration) *Banner {
	if delay <= 0 {
		delay = DefaultDismissDelay
	}

	return &Banner{delay: delay}
}

// Show displays message and arms the dismiss timer, cancelling any pending
// one. It returns the generation of the message.
func (b *Banner) Show(message string) uint64 {
	b.mu.Lock()

	if b.timer != nil {
		b.timer.Stop()
	}

	b.generation++
	gen := b.generation
	b.message = message
	b.timer = time.AfterFunc(b.delay, func() { b.expire(gen) })
	onChange := b.OnChange

	b.mu.Unlock()

	if onChange != nil {
		onChange(message)
	}

	return gen
}

// Message returns the visible message, or "" when none is shown.
func (b *Banner) Message() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.message
}

// Visible reports whether a message is shown.
func (b *Banner) Visible() bool {
	return b.Message() != ""
}

// Cancel clears the message immediately and disarms the timer.
func (b *Banner) Cancel() {
	b.mu.Lock()

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}

	b.generation++
	changed := b.message != ""
	b.message = ""
	onChange := b.OnChange

	b.mu.Unlock()

	if changed && onChange != nil {
		onChange("")
	}
}

// Delay returns the dismiss delay.
func (b *Banner) Delay() time.Duration {
	return b.delay
}

func (b *Banner) expire(gen uint64) {
	b.mu.Lock()

	if gen != b.generation {
		b.mu.Unlock()
		return
	}

	b.message = ""
	b.timer = nil
	onChange := b.OnChange

	b.mu.Unlock()

	if onChange != nil {
		onChange("")
	}
}
