package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRefreshPublishesSnapshot(t *testing.T) {
	s := NewListStore(func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	snap := s.Snapshot()
	if len(snap.Items) != 2 {
		t.Fatalf("items = %v, want 2", snap.Items)
	}
	if snap.FetchedAt.IsZero() {
		t.Fatal("FetchedAt not set")
	}
}

func TestSlowFetchCannotOverwriteNewerResult(t *testing.T) {
	release := make(chan struct{})
	calls := 0
	var mu sync.Mutex

	s := NewListStore(func(ctx context.Context) ([]string, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			<-release // first fetch stalls until after the second lands
			return []string{"stale"}, nil
		}
		return []string{"fresh"}, nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Refresh(context.Background())
	}()

	// Wait for the first fetch to be in flight before starting the second.
	for {
		mu.Lock()
		started := calls >= 1
		mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("second refresh: %v", err)
	}
	close(release)
	<-done

	snap := s.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0] != "fresh" {
		t.Fatalf("snapshot = %v, want [fresh]", snap.Items)
	}
}

func TestInvalidateMarksStale(t *testing.T) {
	s := NewListStore(func(ctx context.Context) ([]int, error) { return []int{1}, nil })
	_ = s.Refresh(context.Background())
	if s.Stale(time.Hour) {
		t.Fatal("fresh snapshot reported stale")
	}
	s.Invalidate()
	if !s.Stale(time.Hour) {
		t.Fatal("invalidated snapshot not stale")
	}
}

func TestRefreshKeepsErrorInSnapshot(t *testing.T) {
	boom := errors.New("backend down")
	s := NewListStore(func(ctx context.Context) ([]int, error) { return nil, boom })
	if err := s.Refresh(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if snap := s.Snapshot(); !errors.Is(snap.Err, boom) {
		t.Fatalf("snapshot err = %v", snap.Err)
	}
}

func TestPrefetchAllRefreshesEveryStore(t *testing.T) {
	a := NewListStore(func(ctx context.Context) ([]int, error) { return []int{1}, nil })
	b := NewListStore(func(ctx context.Context) ([]string, error) { return []string{"x"}, nil })
	if err := PrefetchAll(context.Background(), a, b); err != nil {
		t.Fatalf("prefetch: %v", err)
	}
	if len(a.Snapshot().Items) != 1 || len(b.Snapshot().Items) != 1 {
		t.Fatal("not every store refreshed")
	}
}

func TestPrefetchAllReturnsFirstFailure(t *testing.T) {
	boom := errors.New("nope")
	ok := NewListStore(func(ctx context.Context) ([]int, error) { return nil, nil })
	bad := NewListStore(func(ctx context.Context) ([]int, error) { return nil, boom })
	if err := PrefetchAll(context.Background(), ok, bad); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
