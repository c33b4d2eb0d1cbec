// Package toast holds transient user notifications.
//
// A [Store] keeps an ordered list of [Toast] values. Each toast gets an id
// when it is added and, unless its duration is disabled, an expiry time.
// Expired toasts are removed by [Store.Sweep], which callers drive either
// from their own loop (the TUI sweeps on every tick) or through
// [Store.Run].
//
//	store := toast.New()
//	cancel := store.Subscribe(func(ts []toast.Toast) { render(ts) })
//	defer cancel()
//
//	store.Error("Failed to load movies", err.Error())
package toast

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type is the severity of a toast.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

const (
	// DefaultDuration is how long a toast stays visible.
	DefaultDuration = 5 * time.Second

	// DefaultErrorDuration applies to error toasts.
	DefaultErrorDuration = 7 * time.Second
)

// Toast is a single notification.
type Toast struct {
	ID          string        `json:"id"`
	Type        Type          `json:"type"`
	Title       string        `json:"title"`
	Message     string        `json:"message,omitempty"`
	Duration    time.Duration `json:"duration"`
	Dismissible bool          `json:"dismissible"`
	ExpiresAt   time.Time     `json:"expires_at,omitzero"` // zero when Duration <= 0
}

// Option customizes a toast passed to [Store.Add].
type Option func(*Toast)

// WithID sets the toast id instead of generating one. An empty id keeps
// the generated one.
func WithID(id string) Option {
	return func(t *Toast) {
		if id != "" {
			t.ID = id
		}
	}
}

// WithMessage sets the body text.
func WithMessage(msg string) Option {
	return func(t *Toast) { t.Message = msg }
}

// WithDuration overrides the default lifetime. A duration <= 0 keeps the
// toast until it is removed explicitly.
func WithDuration(d time.Duration) Option {
	return func(t *Toast) { t.Duration = d }
}

// NotDismissible marks the toast as not closable by the user.
func NotDismissible() Option {
	return func(t *Toast) { t.Dismissible = false }
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

type expiry struct {
	id string
	at time.Time
}

// Store is a concurrency-safe list of toasts with subscribers.
type Store struct {
	mu       sync.Mutex
	toasts   []Toast
	schedule []expiry // sorted by at
	subs     map[int]func([]Toast)
	nextSub  int
	now      func() time.Time
}

// New creates an empty Store.
func New(opts ...StoreOption) *Store {
	s := &Store{
		subs: make(map[int]func([]Toast)),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a toast and returns its id. Error toasts default to
// [DefaultErrorDuration], all others to [DefaultDuration].
func (s *Store) Add(typ Type, title string, opts ...Option) string {
	t := Toast{
		ID:          uuid.NewString(),
		Type:        typ,
		Title:       title,
		Duration:    DefaultDuration,
		Dismissible: true,
	}
	if typ == TypeError {
		t.Duration = DefaultErrorDuration
	}
	for _, opt := range opts {
		opt(&t)
	}

	s.mu.Lock()
	if t.Duration > 0 {
		t.ExpiresAt = s.now().Add(t.Duration)
		s.scheduleLocked(expiry{id: t.ID, at: t.ExpiresAt})
	}
	s.toasts = append(s.toasts, t)
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	notify(subs, snap)
	return t.ID
}

// Success adds a success toast.
func (s *Store) Success(title, message string, opts ...Option) string {
	return s.Add(TypeSuccess, title, append([]Option{WithMessage(message)}, opts...)...)
}

// Error adds an error toast, shown for 7 seconds by default.
func (s *Store) Error(title, message string, opts ...Option) string {
	return s.Add(TypeError, title, append([]Option{WithMessage(message)}, opts...)...)
}

// Warning adds a warning toast.
func (s *Store) Warning(title, message string, opts ...Option) string {
	return s.Add(TypeWarning, title, append([]Option{WithMessage(message)}, opts...)...)
}

// Info adds an informational toast.
func (s *Store) Info(title, message string, opts ...Option) string {
	return s.Add(TypeInfo, title, append([]Option{WithMessage(message)}, opts...)...)
}

// Remove deletes the toast with id. Unknown ids are ignored.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	n := len(s.toasts)
	s.toasts = slices.DeleteFunc(s.toasts, func(t Toast) bool { return t.ID == id })
	if len(s.toasts) == n {
		s.mu.Unlock()
		return
	}
	s.schedule = slices.DeleteFunc(s.schedule, func(e expiry) bool { return e.id == id })
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

// Clear removes every toast.
func (s *Store) Clear() {
	s.mu.Lock()
	if len(s.toasts) == 0 {
		s.mu.Unlock()
		return
	}
	s.toasts = nil
	s.schedule = nil
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

// List returns a copy of the current toasts in insertion order.
func (s *Store) List() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.toasts)
}

// Len returns the number of visible toasts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.toasts)
}

// Subscribe registers fn to receive the toast list. fn is called once
// immediately and again after every change. The returned function
// unregisters it.
func (s *Store) Subscribe(fn func([]Toast)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	snap := slices.Clone(s.toasts)
	s.mu.Unlock()

	fn(snap)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Sweep removes every toast whose expiry is at or before now and reports
// how many were removed.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	i := 0
	for i < len(s.schedule) && !s.schedule[i].at.After(now) {
		i++
	}
	if i == 0 {
		s.mu.Unlock()
		return 0
	}
	due := s.schedule[:i]
	s.schedule = slices.Clone(s.schedule[i:])

	n := len(s.toasts)
	s.toasts = slices.DeleteFunc(s.toasts, func(t Toast) bool {
		return slices.ContainsFunc(due, func(e expiry) bool {
			return e.id == t.ID && e.at.Equal(t.ExpiresAt)
		})
	})
	removed := n - len(s.toasts)
	if removed == 0 {
		s.mu.Unlock()
		return 0
	}
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	notify(subs, snap)
	return removed
}

// Next returns the earliest pending expiry, if any.
func (s *Store) Next() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.schedule) == 0 {
		return time.Time{}, false
	}
	return s.schedule[0].at, true
}

// Run sweeps the store every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Sweep(s.now())
		}
	}
}

func (s *Store) scheduleLocked(e expiry) {
	i, _ := slices.BinarySearchFunc(s.schedule, e.at, func(x expiry, at time.Time) int {
		return x.at.Compare(at)
	})
	s.schedule = slices.Insert(s.schedule, i, e)
}

func (s *Store) snapshotLocked() ([]Toast, []func([]Toast)) {
	subs := make([]func([]Toast), 0, len(s.subs))
	for _, id := range slices.Sorted(maps.Keys(s.subs)) {
		subs = append(subs, s.subs[id])
	}
	return slices.Clone(s.toasts), subs
}

func notify(subs []func([]Toast), snap []Toast) {
	for _, fn := range subs {
		fn(snap)
	}
}
