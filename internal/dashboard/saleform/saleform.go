// Package saleform models the sale composition screen: a customer DNI plus
// a growable set of (product, quantity) rows. The form enforces the same
// rules the backend does so the operator sees mistakes before submitting.
package saleform

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/botica-real/botica/internal/dashboard/gateway"
	"github.com/botica-real/botica/internal/sales/orders"
)

// Row is one editable line of the form. A zero ProductID means the operator
// has not picked a product yet.
type Row struct {
	ProductID int64
	Quantity  int
}

// Option is a selectable product in a row's dropdown. Disabled options are
// products already taken by another row.
type Option struct {
	ProductID int64
	Label     string
	Price     float64
	Disabled  bool
}

// Submitter is the slice of the gateway the form needs.
type Submitter interface {
	CreateSale(ctx context.Context, req orders.CreateSaleRequest) (orders.SaleDetail, error)
}

// Form is the state of one sale being composed.
type Form struct {
	CustomerDNI int64
	Rows        []Row

	products []gateway.ProductRow
	submit   Submitter
	validate *validator.Validate
}

// New starts a form with a single blank row, mirroring the empty state the
// operator first sees.
func New(submit Submitter, products []gateway.ProductRow) *Form {
	return &Form{
		Rows:     []Row{{Quantity: 1}},
		products: products,
		submit:   submit,
		validate: validator.New(),
	}
}

// AddRow appends a blank row. There is no upper bound; the backend caps the
// sale only by available stock.
func (f *Form) AddRow() {
	f.Rows = append(f.Rows, Row{Quantity: 1})
}

// RemoveRow deletes the row at index. The last remaining row never goes
// away, so the form can always be filled back in.
func (f *Form) RemoveRow(index int) {
	if len(f.Rows) <= 1 || index < 0 || index >= len(f.Rows) {
		return
	}
	f.Rows = append(f.Rows[:index], f.Rows[index+1:]...)
}

// SetRow updates one row in place.
func (f *Form) SetRow(index int, productID int64, quantity int) {
	if index < 0 || index >= len(f.Rows) {
		return
	}
	f.Rows[index] = Row{ProductID: productID, Quantity: quantity}
}

// ProductOptions builds the dropdown for the row at index. Products chosen
// in other rows come back disabled so a sale can never hold the same product
// twice; the row's own selection stays enabled so it can be re-picked.
func (f *Form) ProductOptions(index int) []Option {
	taken := make(map[int64]bool, len(f.Rows))
	for i, row := range f.Rows {
		if i != index && row.ProductID != 0 {
			taken[row.ProductID] = true
		}
	}
	opts := make([]Option, 0, len(f.products))
	for _, p := range f.products {
		opts = append(opts, Option{
			ProductID: p.ID,
			Label:     p.Name,
			Price:     p.Price,
			Disabled:  taken[p.ID],
		})
	}
	sort.Slice(opts, func(i, j int) bool { return opts[i].Label < opts[j].Label })
	return opts
}

// Total prices the current rows against the loaded product list. Rows with
// no product yet contribute nothing.
func (f *Form) Total() float64 {
	prices := make(map[int64]float64, len(f.products))
	for _, p := range f.products {
		prices[p.ID] = p.Price
	}
	var total float64
	for _, row := range f.Rows {
		total += prices[row.ProductID] * float64(row.Quantity)
	}
	return total
}

// Request assembles the submission payload and checks it locally.
func (f *Form) Request() (orders.CreateSaleRequest, error) {
	req := orders.CreateSaleRequest{
		CustomerDNI: f.CustomerDNI,
		Products:    make([]orders.SaleLineRequest, 0, len(f.Rows)),
	}
	seen := make(map[int64]int, len(f.Rows))
	for i, row := range f.Rows {
		if prev, dup := seen[row.ProductID]; dup && row.ProductID != 0 {
			return orders.CreateSaleRequest{},
				fmt.Errorf("rows %d and %d select the same product", prev+1, i+1)
		}
		seen[row.ProductID] = i
		req.Products = append(req.Products, orders.SaleLineRequest{
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
		})
	}
	if err := f.validate.Struct(req); err != nil {
		return orders.CreateSaleRequest{}, err
	}
	return req, nil
}

// Submit sends the sale. On success the form resets to its initial single
// blank row; on any failure the operator's input survives untouched.
func (f *Form) Submit(ctx context.Context) (orders.SaleDetail, error) {
	req, err := f.Request()
	if err != nil {
		return orders.SaleDetail{}, err
	}
	detail, err := f.submit.CreateSale(ctx, req)
	if err != nil {
		return orders.SaleDetail{}, err
	}
	f.CustomerDNI = 0
	f.Rows = []Row{{Quantity: 1}}
	return detail, nil
}
