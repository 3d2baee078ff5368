package saledetail

import (
	"context"
	"errors"
	"testing"

	"github.com/botica-real/botica/internal/sales/orders"
)

type stubLoader struct {
	detail orders.SaleDetail
	err    error
	calls  int
}

func (s *stubLoader) GetSaleDetail(_ context.Context, id int64) (orders.SaleDetail, error) {
	s.calls++
	if s.err != nil {
		return orders.SaleDetail{}, s.err
	}
	d := s.detail
	d.ID = id
	return d, nil
}

func TestLoadResolvesOnceAndSticks(t *testing.T) {
	loader := &stubLoader{detail: orders.SaleDetail{Total: 49.0}}
	v := NewViewer(7, loader)

	if v.State() != Pending {
		t.Fatalf("state = %v, want pending", v.State())
	}
	detail, err := v.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if detail.ID != 7 || detail.Total != 49.0 {
		t.Fatalf("detail = %+v", detail)
	}
	if v.State() != Resolved {
		t.Fatalf("state = %v, want resolved", v.State())
	}

	// Settled: a second load returns the cached result.
	if _, err := v.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("loader called %d times, want 1", loader.calls)
	}
}

func TestLoadFailureIsTerminal(t *testing.T) {
	boom := errors.New("sale not found")
	loader := &stubLoader{err: boom}
	v := NewViewer(404, loader)

	if _, err := v.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if v.State() != Failed {
		t.Fatalf("state = %v, want failed", v.State())
	}

	loader.err = nil // backend recovers, but the viewer stays settled
	if _, err := v.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("settled err = %v, want %v", err, boom)
	}
	if loader.calls != 1 {
		t.Fatalf("loader called %d times, want 1", loader.calls)
	}
}

func TestStateStrings(t *testing.T) {
	if Pending.String() != "pending" || Resolved.String() != "resolved" || Failed.String() != "failed" {
		t.Fatal("state strings changed")
	}
}
