package orders

import "time"

// Sale is the persisted sale header, as listed on the sales screen.
type Sale struct {
	ID          int64     `json:"id"`
	CustomerDNI int64     `json:"customer_dni"`
	Total       float64   `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}

// SaleLine stores one (product, quantity) pair with the unit price frozen at
// sale time. Later price edits never change a recorded sale.
type SaleLine struct {
	ID        int64   `json:"id"`
	SaleID    int64   `json:"sale_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// SaleCustomer is the customer identity embedded in the sale read model.
type SaleCustomer struct {
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
	DNI      int64  `json:"dni"`
}

// SaleLineView is a line item as shown on the sale detail screen.
type SaleLineView struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// SaleDetail is the materialized read model for one sale.
type SaleDetail struct {
	ID        int64          `json:"id"`
	Customer  SaleCustomer   `json:"customer"`
	Products  []SaleLineView `json:"products"`
	Total     float64        `json:"total"`
	CreatedAt time.Time      `json:"created_at"`
}
