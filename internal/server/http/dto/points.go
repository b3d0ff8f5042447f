package dto

import "time"

// AmountRequest carries the point amount of a charge or use request.
type AmountRequest struct {
	Amount int64 `json:"amount"`
}

// BalanceResponse represents the current point balance of an account.
type BalanceResponse struct {
	AccountID int64     `json:"account_id"`
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TransactionResponse describes one history entry.
type TransactionResponse struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"account_id"`
	Kind      string    `json:"kind"`
	Amount    int64     `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}
