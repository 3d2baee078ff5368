package brands

type CreateBrandRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}
