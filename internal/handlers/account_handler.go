package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tally/internal/pagination"
	"tally/internal/services"
)

// AccountHandler handles synced bank accounts.
type AccountHandler struct {
	accountService services.AccountServicer
	auditService   services.AuditServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer, auditService services.AuditServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService, auditService: auditService}
}

// UpsertAccountRequest is an account as reported by the bank aggregator.
type UpsertAccountRequest struct {
	ExternalID       string          `json:"external_id" binding:"required,max=100"`
	Name             string          `json:"name" binding:"required,min=1,max=100"`
	Type             string          `json:"type" binding:"max=50"`
	FormattedAccount string          `json:"formatted_account" binding:"max=50"`
	Balance          decimal.Decimal `json:"balance"`
	Currency         string          `json:"currency" binding:"omitempty,iso4217"`
}

// UpsertAccount creates or refreshes an account by its external ID.
// @Summary     Upsert an account
// @Description Create a synced bank account, or refresh it if the external ID is known
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpsertAccountRequest true "Account details"
// @Success     200 {object} models.Account "Account saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [post]
func (h *AccountHandler) UpsertAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	account, err := h.accountService.UpsertAccount(userID, services.AccountInput{
		ExternalID:       req.ExternalID,
		Name:             req.Name,
		Type:             req.Type,
		FormattedAccount: req.FormattedAccount,
		Balance:          req.Balance,
		Currency:         req.Currency,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// GetUserAccounts lists the user's accounts.
// @Summary     Get accounts
// @Description Get a paginated list of the authenticated user's accounts
// @Tags        accounts
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Param       sort      query string false "Sort by: name, synced_at, balance (default name)"
// @Param       order     query string false "asc or desc"
// @Success     200 {object} pagination.PageResponse[models.Account] "Paginated accounts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) GetUserAccounts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.accountService.GetUserAccounts(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAccountByID returns one account.
// @Summary     Get account by ID
// @Tags        accounts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Account ID"
// @Success     200 {object} models.Account "Account details"
// @Failure     400 {object} ErrorResponse "Invalid account ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [get]
func (h *AccountHandler) GetAccountByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetAccountByID(userID, accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// DeleteAccount removes an account and its transactions.
// @Summary     Delete account
// @Description Delete an account with its transactions; linked income and expenses are rescheduled
// @Tags        accounts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Account ID"
// @Success     200 {object} MessageResponse "Account deleted"
// @Failure     400 {object} ErrorResponse "Invalid account ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.accountService.DeleteAccount(userID, accountID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_ACCOUNT", "account", accountID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
