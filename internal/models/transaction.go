package models

import "time"

// LocalCurrency is the currency the bank books transactions in
const LocalCurrency = "MYR"

// Transaction represents a client card or account transaction
type Transaction struct {
	ID          int64     `json:"id"`
	ClientID    string    `json:"client_id"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// IsForeign reports whether the transaction was made in a non-local currency
func (t Transaction) IsForeign() bool {
	return t.Currency != "" && t.Currency != LocalCurrency
}
