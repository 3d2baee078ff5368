package providers

// Provider represents a product supplier identified by its RUC tax number.
type Provider struct {
	ID      int64  `json:"id"`
	RUC     int64  `json:"ruc"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}
