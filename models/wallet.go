package models

import "time"

// WalletBalance is the center's current balance with the platform.
type WalletBalance struct {
	Available float64 `json:"available"`
	Pending   float64 `json:"pending"`
	Currency  string  `json:"currency"`
}

// WalletMovement is one credit or debit on the center's wallet.
type WalletMovement struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // credit, debit
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	Reference   string    `json:"reference,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
