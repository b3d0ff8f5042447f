package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pointware/pointledger/internal/domain/model"
	"github.com/pointware/pointledger/internal/server/http/dto"
)

// PointsHandler manages point balance endpoints.
type PointsHandler struct {
	facade PointFacade
}

// NewPointsHandler constructs PointsHandler.
func NewPointsHandler(facade PointFacade) *PointsHandler {
	return &PointsHandler{facade: facade}
}

// Balance handles GET /api/points/:id.
func (h *PointsHandler) Balance(c *gin.Context) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}
	balance, err := h.facade.Balance(c.Request.Context(), accountID)
	if err != nil {
		c.Status(statusForError(err))
		return
	}
	c.JSON(http.StatusOK, toBalanceResponse(balance))
}

// Charge handles PATCH /api/points/:id/charge.
func (h *PointsHandler) Charge(c *gin.Context) {
	h.mutate(c, h.facade.Charge)
}

// Use handles PATCH /api/points/:id/use.
func (h *PointsHandler) Use(c *gin.Context) {
	h.mutate(c, h.facade.Use)
}

// Histories handles GET /api/points/:id/histories.
func (h *PointsHandler) Histories(c *gin.Context) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}
	transactions, err := h.facade.History(c.Request.Context(), accountID)
	if err != nil {
		c.Status(statusForError(err))
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		resp = append(resp, dto.TransactionResponse{
			ID:        tx.ID,
			AccountID: tx.AccountID,
			Kind:      string(tx.Kind),
			Amount:    tx.Amount,
			Timestamp: tx.Timestamp,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PointsHandler) mutate(c *gin.Context, op func(ctx context.Context, accountID, amount int64) (*model.AccountBalance, error)) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	updated, err := op(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		c.Status(statusForError(err))
		return
	}
	c.JSON(http.StatusOK, toBalanceResponse(updated))
}

func toBalanceResponse(b *model.AccountBalance) dto.BalanceResponse {
	return dto.BalanceResponse{AccountID: b.AccountID, Balance: b.Balance, UpdatedAt: b.UpdatedAt}
}
