// Package saledetail drives the sale detail screen. A viewer is bound to
// exactly one sale id for its whole lifetime and moves through pending,
// resolved or failed once; a new sale means a new viewer.
package saledetail

import (
	"context"
	"sync"

	"github.com/botica-real/botica/internal/sales/orders"
)

// State is the load state of the detail screen.
type State int

const (
	Pending State = iota
	Resolved
	Failed
)

func (s State) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// Loader fetches the read model for one sale.
type Loader interface {
	GetSaleDetail(ctx context.Context, id int64) (orders.SaleDetail, error)
}

// Viewer is the detail screen for one sale.
type Viewer struct {
	id     int64
	loader Loader

	mu     sync.Mutex
	state  State
	detail orders.SaleDetail
	err    error
}

// NewViewer binds a viewer to a sale id.
func NewViewer(id int64, loader Loader) *Viewer {
	return &Viewer{id: id, loader: loader}
}

// SaleID returns the bound id.
func (v *Viewer) SaleID() int64 {
	return v.id
}

// Load resolves the detail. Once resolved or failed the state is final:
// further calls return the settled result without touching the backend.
func (v *Viewer) Load(ctx context.Context) (orders.SaleDetail, error) {
	v.mu.Lock()
	if v.state != Pending {
		detail, err := v.detail, v.err
		v.mu.Unlock()
		return detail, err
	}
	v.mu.Unlock()

	detail, err := v.loader.GetSaleDetail(ctx, v.id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state != Pending {
		return v.detail, v.err
	}
	if err != nil {
		v.state = Failed
		v.err = err
		return orders.SaleDetail{}, err
	}
	v.state = Resolved
	v.detail = detail
	return detail, nil
}

// State reports where the viewer settled.
func (v *Viewer) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}
