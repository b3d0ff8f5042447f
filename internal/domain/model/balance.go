package model

import "time"

// AccountBalance holds the current point total of an account.
type AccountBalance struct {
	AccountID int64
	Balance   int64
	UpdatedAt time.Time
}
