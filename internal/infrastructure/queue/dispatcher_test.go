package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffdir/user-directory/internal/core/domain"
	"github.com/staffdir/user-directory/internal/core/ports"
)

type recordingSink struct {
	mu     sync.Mutex
	events []ports.AuthEventInput
}

func (s *recordingSink) Record(_ context.Context, event ports.AuthEventInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) snapshot() []ports.AuthEventInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.AuthEventInput, len(s.events))
	copy(out, s.events)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestDispatcher_RecordsEnqueuedEvents(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(4, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.AuthEventInput{Username: "john", UserID: 2, Outcome: domain.AuditOutcomeSuccess, Timestamp: time.Now()})
	d.Enqueue(ports.AuthEventInput{Username: "ghost", Outcome: domain.AuditOutcomeFailure, Timestamp: time.Now()})

	waitFor(t, func() bool { return len(sink.snapshot()) == 2 })

	outcomes := map[string]string{}
	for _, e := range sink.snapshot() {
		outcomes[e.Username] = e.Outcome
	}
	if outcomes["john"] != domain.AuditOutcomeSuccess || outcomes["ghost"] != domain.AuditOutcomeFailure {
		t.Fatalf("unexpected recorded events: %+v", sink.snapshot())
	}
}

func TestDispatcher_PerUserOrdering(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(3, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const attempts = 20
	for i := 0; i < attempts; i++ {
		outcome := domain.AuditOutcomeFailure
		if i == attempts-1 {
			outcome = domain.AuditOutcomeSuccess
		}
		d.Enqueue(ports.AuthEventInput{Username: "jane", UserID: i, Outcome: outcome, Timestamp: time.Now()})
	}

	waitFor(t, func() bool { return len(sink.snapshot()) == attempts })

	events := sink.snapshot()
	for i, e := range events {
		if e.UserID != i {
			t.Fatalf("per-user ordering violated at position %d: got event %d", i, e.UserID)
		}
	}
	if events[attempts-1].Outcome != domain.AuditOutcomeSuccess {
		t.Fatalf("expected final event to be the success")
	}
}

func TestDispatcher_EnqueueNeverBlocksWhenBufferFull(t *testing.T) {
	// Workers are never started, so the single buffer fills up and the
	// overflow must be dropped instead of stalling the caller.
	d := NewDispatcher(1, &recordingSink{}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < channelBuffer+8; i++ {
			d.Enqueue(ports.AuthEventInput{Username: "jane", UserID: i, Timestamp: time.Now()})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Enqueue blocked on a full audit queue")
	}

	if got := len(d.workers[0]); got != channelBuffer {
		t.Fatalf("expected buffer to hold %d events, got %d", channelBuffer, got)
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, &recordingSink{}, zerolog.Nop())

	for _, name := range []string{"admin", "john", "jane", ""} {
		first := d.shardIndex(name)
		for i := 0; i < 10; i++ {
			if d.shardIndex(name) != first {
				t.Fatalf("shardIndex(%q) not deterministic", name)
			}
		}
	}
}
