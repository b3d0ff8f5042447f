package errors

import "errors"

var (
	ErrInvalidAccountID    = errors.New("invalid account id")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientPoints  = errors.New("insufficient points")
	ErrLookupFailed        = errors.New("balance lookup failed")
	ErrPersistFailed       = errors.New("balance persist failed")
	ErrHistoryAppendFailed = errors.New("history append failed")
)
