package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/pointware/pointledger/internal/domain/errors"
)

// accountIDParam parses the :id path parameter. Non-integral and
// non-numeric identifiers never reach the core; they are rejected here
// with a client error.
func accountIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// statusForError maps domain failures to HTTP status codes: caller errors
// to 400, a balance shortfall to 402, storage failures to 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidAccountID), errors.Is(err, domainErrors.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrInsufficientPoints):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
