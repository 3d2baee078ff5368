package customers

// Customer is a sale counterparty identified by national ID (DNI).
type Customer struct {
	ID       int64  `json:"id"`
	DNI      int64  `json:"dni"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
}
