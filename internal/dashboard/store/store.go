// Package store caches the entity lists the dashboard tables render. Each
// list refreshes through a fetcher and hands subscribers an immutable
// snapshot; a monotonic sequence number makes sure a slow fetch can never
// overwrite the result of a newer one.
package store

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Fetcher loads the current server-side list.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Snapshot is one observed list state.
type Snapshot[T any] struct {
	Items     []T
	FetchedAt time.Time
	Err       error
}

// ListStore holds the latest snapshot of one entity list.
type ListStore[T any] struct {
	fetch Fetcher[T]

	mu       sync.Mutex
	snapshot Snapshot[T]
	// seq increments on every refresh request; a completing fetch only
	// publishes if it still carries the highest sequence.
	seq     uint64
	applied uint64
}

// NewListStore builds a store around a fetcher. Nothing loads until the
// first Refresh.
func NewListStore[T any](fetch Fetcher[T]) *ListStore[T] {
	return &ListStore[T]{fetch: fetch}
}

// Snapshot returns the last published state. Before the first refresh the
// snapshot is empty with a zero FetchedAt.
func (s *ListStore[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Refresh fetches the list and publishes it unless a newer refresh started
// meanwhile, in which case the result is discarded.
func (s *ListStore[T]) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.seq++
	ticket := s.seq
	s.mu.Unlock()

	items, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket < s.seq || ticket <= s.applied {
		// A newer refresh is in flight or already landed.
		return nil
	}
	s.applied = ticket
	s.snapshot = Snapshot[T]{Items: items, FetchedAt: time.Now(), Err: err}
	return err
}

// Invalidate drops the cached snapshot so the next render forces a refresh.
// Mutating screens call this after every successful write.
func (s *ListStore[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = Snapshot[T]{}
}

// Stale reports whether the snapshot is missing or older than maxAge.
func (s *ListStore[T]) Stale(maxAge time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot.FetchedAt.IsZero() {
		return true
	}
	return time.Since(s.snapshot.FetchedAt) > maxAge
}

// Poll refreshes on a fixed interval until ctx is cancelled. Errors are
// published in the snapshot rather than stopping the loop; a table showing
// last-known-good data beats one that dies on the first blip.
func (s *ListStore[T]) Poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.Refresh(ctx)
		}
	}
}

// Refresher is the non-generic face of ListStore used for batch operations.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// PrefetchAll refreshes every store concurrently and returns the first
// failure, if any. The dashboard runs it once after login so the first
// screen of each section renders without a loading spinner.
func PrefetchAll(ctx context.Context, stores ...Refresher) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, st := range stores {
		g.Go(func() error { return st.Refresh(ctx) })
	}
	return g.Wait()
}
