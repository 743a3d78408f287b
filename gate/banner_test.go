// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package gate

import (
	"sync"
	"testing"
	"time"
)

func waitForMessage(t *testing.T, b *Banner, want string, within time.Duration) {
	t.Helper()

	deadline := time.Now().Add(within)
	for time.Now().Before(deadline) {
		if b.Message() == want {
			return
		}

		time.Sleep(5 * time.Millisecond)
	}

	t.Fatalf("expected message %q, got %q", want, b.Message())
}

func TestBannerExpires(t *testing.T) {
	t.Parallel()

	b := NewBanner(20 * time.Millisecond)
	b.Show("Please enter both weight and height values")

	if !b.Visible() {
		t.Fatalf("expected message to be visible")
	}

	waitForMessage(t, b, "", 2*time.Second)
}

func TestBannerStaleTimerDoesNotClearNewerMessage(t *testing.T) {
	t.Parallel()

	b := NewBanner(time.Hour)
	first := b.Show("first")
	b.Show("second")

	b.expire(first)

	if got := b.Message(); got != "second" {
		t.Fatalf("stale timer cleared the newer message, got %q", got)
	}

	b.Cancel()
}

func TestBannerShowRearmsCountdown(t *testing.T) {
	t.Parallel()

	b := NewBanner(200 * time.Millisecond)
	b.Show("first")
	time.Sleep(150 * time.Millisecond)
	b.Show("second")
	time.Sleep(100 * time.Millisecond)

	if got := b.Message(); got != "second" {
		t.Fatalf("expected the re-armed message to survive, got %q", got)
	}

	waitForMessage(t, b, "", 2*time.Second)
}

func TestBannerCancelNotifies(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		changes []string
	)

	b := NewBanner(time.Hour)
	b.OnChange = func(message string) {
		mu.Lock()
		defer mu.Unlock()

		changes = append(changes, message)
	}

	b.Show("hello")
	b.Cancel()
	b.Cancel()

	mu.Lock()
	defer mu.Unlock()

	if len(changes) != 2 || changes[0] != "hello" || changes[1] != "" {
		t.Fatalf("unexpected change notifications %q", changes)
	}
}

func TestNewBannerDefaultDelay(t *testing.T) {
	t.Parallel()

	if d := NewBanner(0).Delay(); d != DefaultDismissDelay {
		t.Fatalf("expected default delay %v, got %v", DefaultDismissDelay, d)
	}
}
