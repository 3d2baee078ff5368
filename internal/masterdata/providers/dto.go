package providers

type CreateProviderRequest struct {
	RUC     int64  `json:"ruc" validate:"required,gt=0"`
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"required,max=200"`
	Phone   string `json:"phone" validate:"required,max=50"`
	Email   string `json:"email" validate:"required,email"`
}
