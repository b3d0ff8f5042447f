package usecase

import domainErrors "github.com/pointware/pointledger/internal/domain/errors"

// ValidateAccountID rejects identifiers that are not strictly positive.
func ValidateAccountID(id int64) error {
	if id <= 0 {
		return domainErrors.ErrInvalidAccountID
	}
	return nil
}

// ValidateAmount rejects amounts that are not strictly positive.
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	return nil
}
