package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tally/internal/models"
	"tally/internal/recurrence"
	"tally/internal/services"
)

// FixedExpenseHandler handles a budget's recurring bills.
type FixedExpenseHandler struct {
	expenseService services.FixedExpenseServicer
	auditService   services.AuditServicer
}

// NewFixedExpenseHandler creates a new FixedExpenseHandler.
func NewFixedExpenseHandler(expenseService services.FixedExpenseServicer, auditService services.AuditServicer) *FixedExpenseHandler {
	return &FixedExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// CreateFixedExpenseRequest describes a recurring bill. Amount is in cents.
type CreateFixedExpenseRequest struct {
	Name              string               `json:"name" binding:"required,min=1,max=100"`
	Description       string               `json:"description" binding:"max=500"`
	Amount            int64                `json:"amount" binding:"gte=0"`
	Frequency         string               `json:"frequency" binding:"required,expense_frequency"`
	CategoryID        *string              `json:"category_id" binding:"omitempty,uuid"`
	MatchPattern      *models.MatchPattern `json:"match_pattern"`
	AdjustForWeekends bool                 `json:"adjust_for_weekends"`
	NextDueDate       string               `json:"next_due_date"`
}

// UpdateFixedExpenseRequest changes a bill. An empty category_id clears the
// category; omitted fields are kept.
type UpdateFixedExpenseRequest struct {
	Name              string               `json:"name" binding:"omitempty,min=1,max=100"`
	Description       *string              `json:"description" binding:"omitempty,max=500"`
	Amount            *int64               `json:"amount" binding:"omitempty,gte=0"`
	Frequency         *string              `json:"frequency" binding:"omitempty,expense_frequency"`
	CategoryID        *string              `json:"category_id" binding:"omitempty,uuid|len=0"`
	MatchPattern      *models.MatchPattern `json:"match_pattern"`
	AdjustForWeekends *bool                `json:"adjust_for_weekends"`
	NextDueDate       string               `json:"next_due_date"`
}

// TagExpenseTransactionRequest links a payment to a fixed expense.
type TagExpenseTransactionRequest struct {
	TransactionID string `json:"transaction_id" binding:"required,uuid"`
}

func parseExpenseIDs(c *gin.Context) (string, string, error) {
	budgetID, err := parsePathID(c, "id")
	if err != nil {
		return "", "", err
	}
	expenseID, err := parsePathID(c, "expenseId")
	if err != nil {
		return "", "", err
	}
	return budgetID, expenseID, nil
}

// CreateFixedExpense adds a recurring bill to a budget.
// @Summary     Create fixed expense
// @Tags        fixed-expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                    true "Budget ID"
// @Param       request body CreateFixedExpenseRequest true "Fixed expense"
// @Success     201 {object} models.FixedExpense "Fixed expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget or category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/fixed-expenses [post]
func (h *FixedExpenseHandler) CreateFixedExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateFixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	nextDue, err := optionalDate(req.NextDueDate, "next_due_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateFixedExpense(userID, budgetID, services.FixedExpenseInput{
		Name:              req.Name,
		Description:       req.Description,
		Amount:            req.Amount,
		Frequency:         recurrence.Frequency(req.Frequency),
		CategoryID:        req.CategoryID,
		MatchPattern:      req.MatchPattern,
		AdjustForWeekends: req.AdjustForWeekends,
		NextDueDate:       nextDue,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"fixed_expense": expense})
}

// GetFixedExpenses lists a budget's fixed expenses.
// @Summary     Get fixed expenses
// @Tags        fixed-expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {array}  models.FixedExpense "Fixed expenses"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/fixed-expenses [get]
func (h *FixedExpenseHandler) GetFixedExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.GetBudgetFixedExpenses(userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fixed_expenses": expenses})
}

// GetFixedExpense returns one fixed expense.
// @Summary     Get fixed expense by ID
// @Tags        fixed-expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id        path string true "Budget ID"
// @Param       expenseId path string true "Fixed expense ID"
// @Success     200 {object} models.FixedExpense "Fixed expense"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Fixed expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/fixed-expenses/{expenseId} [get]
func (h *FixedExpenseHandler) GetFixedExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, expenseID, err := parseExpenseIDs(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetFixedExpenseByID(userID, budgetID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fixed_expense": expense})
}

// UpdateFixedExpense changes a fixed expense.
// @Summary     Update fixed expense
// @Tags        fixed-expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path string                    true "Budget ID"
// @Param       expenseId path string                    true "Fixed expense ID"
// @Param       request   body UpdateFixedExpenseRequest true "Changes"
// @Success     200 {object} models.FixedExpense "Updated fixed expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Fixed expense or category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/fixed-expenses/{expenseId} [put]
func (h *FixedExpenseHandler) UpdateFixedExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, expenseID, err := parseExpenseIDs(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateFixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	nextDue, err := optionalDate(req.NextDueDate, "next_due_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	update := services.FixedExpenseUpdate{
		Name:              req.Name,
		Description:       req.Description,
		Amount:            req.Amount,
		CategoryID:        req.CategoryID,
		MatchPattern:      req.MatchPattern,
		AdjustForWeekends: req.AdjustForWeekends,
		NextDueDate:       nextDue,
	}
	if req.Frequency != nil {
		f := recurrence.Frequency(*req.Frequency)
		update.Frequency = &f
	}

	expense, err := h.expenseService.UpdateFixedExpense(userID, budgetID, expenseID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fixed_expense": expense})
}

// DeleteFixedExpense removes a fixed expense and its transaction links.
// @Summary     Delete fixed expense
// @Tags        fixed-expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id        path string true "Budget ID"
// @Param       expenseId path string true "Fixed expense ID"
// @Success     200 {object} MessageResponse "Fixed expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Fixed expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/fixed-expenses/{expenseId} [delete]
func (h *FixedExpenseHandler) DeleteFixedExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, expenseID, err := parseExpenseIDs(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteFixedExpense(userID, budgetID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_FIXED_EXPENSE", "fixed_expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Fixed expense deleted successfully"})
}

// TagTransaction links a payment to a fixed expense and recomputes the next due date.
// @Summary     Tag fixed expense transaction
// @Tags        fixed-expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path string                       true "Budget ID"
// @Param       expenseId path string                       true "Fixed expense ID"
// @Param       request   body TagExpenseTransactionRequest true "Transaction"
// @Success     200 {object} models.FixedExpense "Fixed expense with new next due date"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Fixed expense or transaction not found"
// @Failure     409 {object} ErrorResponse "Transaction already tagged"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/fixed-expenses/{expenseId}/transactions [post]
func (h *FixedExpenseHandler) TagTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, expenseID, err := parseExpenseIDs(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TagExpenseTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	expense, err := h.expenseService.TagTransaction(userID, budgetID, expenseID, req.TransactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "TAG_EXPENSE_TRANSACTION", "fixed_expense", expenseID, c.ClientIP(), map[string]interface{}{
		"transaction_id": req.TransactionID,
	})

	c.JSON(http.StatusOK, gin.H{"fixed_expense": expense})
}

// UntagTransaction unlinks a payment and recomputes the next due date.
// @Summary     Untag fixed expense transaction
// @Tags        fixed-expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id            path string true "Budget ID"
// @Param       expenseId     path string true "Fixed expense ID"
// @Param       transactionId path string true "Transaction ID"
// @Success     200 {object} models.FixedExpense "Fixed expense with new next due date"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Link not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/fixed-expenses/{expenseId}/transactions/{transactionId} [delete]
func (h *FixedExpenseHandler) UntagTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, expenseID, err := parseExpenseIDs(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	transactionID, err := parsePathID(c, "transactionId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.UntagTransaction(userID, budgetID, expenseID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UNTAG_EXPENSE_TRANSACTION", "fixed_expense", expenseID, c.ClientIP(), map[string]interface{}{
		"transaction_id": transactionID,
	})

	c.JSON(http.StatusOK, gin.H{"fixed_expense": expense})
}

// GetTaggedTransactions lists the payments linked to a fixed expense.
// @Summary     Get tagged fixed expense transactions
// @Tags        fixed-expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id        path string true "Budget ID"
// @Param       expenseId path string true "Fixed expense ID"
// @Success     200 {array}  models.FixedExpenseTransaction "Links, newest first"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Fixed expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/fixed-expenses/{expenseId}/transactions [get]
func (h *FixedExpenseHandler) GetTaggedTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, expenseID, err := parseExpenseIDs(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	links, err := h.expenseService.GetTaggedTransactions(userID, budgetID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": links})
}

// InferFrequency classifies the cadence of a fixed expense's tagged payments.
// @Summary     Infer fixed expense frequency
// @Tags        fixed-expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id        path string true "Budget ID"
// @Param       expenseId path string true "Fixed expense ID"
// @Success     200 {object} recurrence.Inference "Inferred frequency"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Fixed expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/fixed-expenses/{expenseId}/frequency [get]
func (h *FixedExpenseHandler) InferFrequency(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, expenseID, err := parseExpenseIDs(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	inference, err := h.expenseService.InferFrequency(userID, budgetID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, inference)
}
