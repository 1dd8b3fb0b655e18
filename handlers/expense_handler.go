package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jalanjalan/jalanjalan-backend/errors"
	"github.com/jalanjalan/jalanjalan-backend/logger"
	"github.com/jalanjalan/jalanjalan-backend/services"
	"github.com/jalanjalan/jalanjalan-backend/types"
)

// ExpenseHandler exposes the group-expense ledger: bills, balances, and the
// settlement plan.
type ExpenseHandler struct {
	expenses *services.ExpenseService
}

// NewExpenseHandler creates an ExpenseHandler.
func NewExpenseHandler(expenses *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// CreateBillRequest is the request body for recording a bill.
type CreateBillRequest struct {
	Title        string            `json:"title" binding:"required"`
	Amount       float64           `json:"amount" binding:"required"`
	Category     string            `json:"category,omitempty"`
	PaidBy       string            `json:"paidBy" binding:"required"`
	SplitMethod  types.SplitMethod `json:"splitMethod" binding:"required"`
	Participants []string          `json:"participants,omitempty"`
	Shares       []types.BillShare `json:"shares,omitempty"`
}

// CreateBill handles POST /v1/trips/:id/expenses.
func (h *ExpenseHandler) CreateBill(c *gin.Context) {
	log := logger.GetLogger()

	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid request body", "error", err)
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	bill := &types.Bill{
		TripID:       c.Param("id"),
		Title:        req.Title,
		Amount:       req.Amount,
		Category:     req.Category,
		PaidBy:       req.PaidBy,
		SplitMethod:  req.SplitMethod,
		Participants: req.Participants,
		Shares:       req.Shares,
	}
	if err := h.expenses.CreateBill(c.Request.Context(), bill); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, bill)
}

// ListBills handles GET /v1/trips/:id/expenses.
func (h *ExpenseHandler) ListBills(c *gin.Context) {
	bills, err := h.expenses.ListBills(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bills": bills})
}

// DeleteBill handles DELETE /v1/expenses/:billId.
func (h *ExpenseHandler) DeleteBill(c *gin.Context) {
	if err := h.expenses.DeleteBill(c.Request.Context(), c.Param("billId")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetBalances handles GET /v1/trips/:id/balances.
func (h *ExpenseHandler) GetBalances(c *gin.Context) {
	balances, err := h.expenses.Balances(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balances": balances})
}

// GetSettlement handles GET /v1/trips/:id/settlement. An empty transfers
// array means everyone is settled up, a normal state rather than an error.
func (h *ExpenseHandler) GetSettlement(c *gin.Context) {
	transfers, err := h.expenses.Settlement(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transfers": transfers})
}
