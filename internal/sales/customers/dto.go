package customers

type CreateCustomerRequest struct {
	DNI      int64  `json:"dni" validate:"required,gt=0"`
	Name     string `json:"name" validate:"required,max=100"`
	LastName string `json:"last_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
}
