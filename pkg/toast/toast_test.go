package toast

import (
	"context"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestStore() (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	return New(WithClock(clock.Now)), clock
}

func TestAddDefaults(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want time.Duration
	}{
		{"success", TypeSuccess, 5 * time.Second},
		{"warning", TypeWarning, 5 * time.Second},
		{"info", TypeInfo, 5 * time.Second},
		{"error", TypeError, 7 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, clock := newTestStore()
			id := s.Add(tt.typ, "title")
			if id == "" {
				t.Fatal("Add() returned empty id")
			}

			ts := s.List()
			if len(ts) != 1 {
				t.Fatalf("len(List()) = %d, want 1", len(ts))
			}
			got := ts[0]
			if got.ID != id || got.Type != tt.typ || got.Title != "title" {
				t.Errorf("toast = %+v", got)
			}
			if got.Duration != tt.want {
				t.Errorf("Duration = %v, want %v", got.Duration, tt.want)
			}
			if !got.Dismissible {
				t.Error("Dismissible = false, want true")
			}
			if !got.ExpiresAt.Equal(clock.Now().Add(tt.want)) {
				t.Errorf("ExpiresAt = %v", got.ExpiresAt)
			}
		})
	}
}

func TestAddOptions(t *testing.T) {
	s, _ := newTestStore()
	id := s.Add(TypeInfo, "Saved",
		WithID("fixed"),
		WithMessage("all good"),
		WithDuration(time.Second),
		NotDismissible(),
	)

	if id != "fixed" {
		t.Errorf("id = %q, want fixed", id)
	}
	got := s.List()[0]
	if got.Message != "all good" || got.Duration != time.Second || got.Dismissible {
		t.Errorf("toast = %+v", got)
	}
}

func TestEmptyIDIsGenerated(t *testing.T) {
	s, _ := newTestStore()
	a := s.Add(TypeInfo, "a", WithID(""))
	b := s.Add(TypeInfo, "b", WithID(""))

	if a == "" || b == "" || a == b {
		t.Errorf("ids = %q, %q, want distinct generated ids", a, b)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestUniqueIDs(t *testing.T) {
	s, _ := newTestStore()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := s.Info("x", "")
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestErrorExpiresAfterSevenSeconds(t *testing.T) {
	s, clock := newTestStore()
	id := s.Error("Failed", "")

	clock.Advance(6999 * time.Millisecond)
	if n := s.Sweep(clock.Now()); n != 0 {
		t.Fatalf("Sweep() before expiry removed %d", n)
	}
	if s.Len() != 1 {
		t.Fatal("toast removed early")
	}

	clock.Advance(time.Millisecond)
	if n := s.Sweep(clock.Now()); n != 1 {
		t.Fatalf("Sweep() at expiry removed %d, want 1", n)
	}
	for _, ts := range s.List() {
		if ts.ID == id {
			t.Error("toast still present after expiry")
		}
	}
}

func TestDurationOverride(t *testing.T) {
	s, clock := newTestStore()
	s.Error("Failed", "", WithDuration(time.Second))

	clock.Advance(time.Second)
	if n := s.Sweep(clock.Now()); n != 1 {
		t.Errorf("Sweep() = %d, want 1", n)
	}
}

func TestNonPositiveDurationNeverExpires(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		s, clock := newTestStore()
		s.Warning("sticky", "", WithDuration(d))

		clock.Advance(24 * time.Hour)
		s.Sweep(clock.Now())
		if s.Len() != 1 {
			t.Errorf("duration %v: toast expired", d)
		}
		if _, ok := s.Next(); ok {
			t.Errorf("duration %v: scheduled an expiry", d)
		}
	}
}

func TestSweepOrder(t *testing.T) {
	s, clock := newTestStore()
	a := s.Info("a", "", WithDuration(3*time.Second))
	b := s.Info("b", "", WithDuration(1*time.Second))
	c := s.Info("c", "", WithDuration(2*time.Second))

	next, ok := s.Next()
	if !ok || !next.Equal(clock.Now().Add(time.Second)) {
		t.Errorf("Next() = %v, %v", next, ok)
	}

	clock.Advance(2 * time.Second)
	if n := s.Sweep(clock.Now()); n != 2 {
		t.Fatalf("Sweep() = %d, want 2", n)
	}
	ts := s.List()
	if len(ts) != 1 || ts[0].ID != a {
		t.Errorf("remaining = %+v, want only %s (removed %s, %s)", ts, a, b, c)
	}
}

func TestRemove(t *testing.T) {
	s, clock := newTestStore()
	a := s.Info("a", "")
	b := s.Info("b", "")

	s.Remove(a)
	ts := s.List()
	if len(ts) != 1 || ts[0].ID != b {
		t.Errorf("List() = %+v", ts)
	}

	// Unknown and repeated ids are no-ops.
	s.Remove(a)
	s.Remove("missing")
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}

	clock.Advance(time.Minute)
	if n := s.Sweep(clock.Now()); n != 1 {
		t.Errorf("Sweep() = %d, want 1", n)
	}
}

func TestReusedIDKeepsNewExpiry(t *testing.T) {
	s, clock := newTestStore()
	s.Info("first", "", WithID("x"), WithDuration(time.Second))
	s.Remove("x")
	s.Info("second", "", WithID("x"), WithDuration(10*time.Second))

	clock.Advance(time.Second)
	s.Sweep(clock.Now())
	if s.Len() != 1 {
		t.Error("stale schedule removed the re-added toast")
	}
}

func TestClear(t *testing.T) {
	s, _ := newTestStore()
	s.Info("a", "")
	s.Error("b", "")

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Clear", s.Len())
	}
	if _, ok := s.Next(); ok {
		t.Error("schedule not cleared")
	}
	s.Clear()
}

func TestListIsSnapshot(t *testing.T) {
	s, _ := newTestStore()
	s.Info("a", "")

	ts := s.List()
	ts[0].Title = "changed"
	if s.List()[0].Title != "a" {
		t.Error("List() exposed internal state")
	}
}

func TestSubscribe(t *testing.T) {
	s, clock := newTestStore()
	s.Info("existing", "")

	var got [][]Toast
	cancel := s.Subscribe(func(ts []Toast) { got = append(got, ts) })

	if len(got) != 1 || len(got[0]) != 1 {
		t.Fatalf("initial call = %v", got)
	}

	id := s.Success("added", "")
	s.Remove(id)
	s.Remove(id) // no change, no call
	clock.Advance(time.Minute)
	s.Sweep(clock.Now())

	wantLens := []int{1, 2, 1, 0}
	if len(got) != len(wantLens) {
		t.Fatalf("calls = %d, want %d", len(got), len(wantLens))
	}
	for i, n := range wantLens {
		if len(got[i]) != n {
			t.Errorf("call %d len = %d, want %d", i, len(got[i]), n)
		}
	}

	cancel()
	cancel()
	s.Info("after cancel", "")
	if len(got) != len(wantLens) {
		t.Error("subscriber called after cancel")
	}
}

func TestConcurrentAdd(t *testing.T) {
	s, _ := newTestStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := s.Info("x", "")
			s.Remove(id)
		}()
	}
	wg.Wait()

	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestRun(t *testing.T) {
	s, clock := newTestStore()
	s.Info("a", "", WithDuration(time.Millisecond))
	clock.Advance(time.Second)

	done := make(chan struct{})
	s.Subscribe(func(ts []Toast) {
		if len(ts) == 0 {
			select {
			case <-done:
			default:
				close(done)
			}
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx, time.Millisecond) }()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not sweep")
	}
	cancel()
	if err := <-errc; err != context.Canceled {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}
