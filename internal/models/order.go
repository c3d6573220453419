package models

import "time"

// StatusPendingProof is the status every order is created with. The system
// never transitions an order past it; payment completion happens on the
// provider's side and is not observed here.
const StatusPendingProof = "pending-proof"

// Order is the persisted order record, written once as
// orders/<orderId>.json and never updated.
type Order struct {
	OrderID   string    `json:"orderId"`
	CreatedAt time.Time `json:"createdAt"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Vibe      string    `json:"vibe"`
	Tier      string    `json:"tier"`
	Notes     string    `json:"notes"`
	Quantity  int       `json:"quantity"`
	Total     float64   `json:"total"`
	FilePath  string    `json:"filePath"`
	Status    string    `json:"status"`
}
