package orders

// CreateSaleRequest is the atomic sale submission from the dashboard. DNI
// numbers have at least eight digits, hence the lower bound.
type CreateSaleRequest struct {
	CustomerDNI int64             `json:"customer_dni" validate:"required,gte=10000000"`
	Products    []SaleLineRequest `json:"products" validate:"required,min=1,dive"`
}

type SaleLineRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gte=1"`
	Quantity  int   `json:"quantity" validate:"required,gte=1"`
}
