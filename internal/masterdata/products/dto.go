package products

// ProductForm is the create/update payload. The dashboard sends the selected
// category, brand and provider as human-readable names; resolution to rows
// happens in the service.
type ProductForm struct {
	Name         string  `json:"name" validate:"required,max=200"`
	Description  string  `json:"description" validate:"max=500"`
	Stock        int     `json:"stock" validate:"required,gt=0"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	ProviderName string  `json:"provider_name" validate:"required"`
	CategoryName string  `json:"category_name" validate:"required"`
	BrandName    string  `json:"brand_name" validate:"required"`
}
