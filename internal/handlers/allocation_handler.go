package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tally/internal/services"
)

// AllocationHandler handles per-category budget allocations.
type AllocationHandler struct {
	allocationService services.AllocationServicer
	auditService      services.AuditServicer
}

// NewAllocationHandler creates a new AllocationHandler.
func NewAllocationHandler(allocationService services.AllocationServicer, auditService services.AuditServicer) *AllocationHandler {
	return &AllocationHandler{allocationService: allocationService, auditService: auditService}
}

// CreateAllocationRequest allocates an amount in cents to a category.
type CreateAllocationRequest struct {
	CategoryID      string `json:"category_id" binding:"required,uuid"`
	AllocatedAmount int64  `json:"allocated_amount" binding:"gte=0"`
	Notes           string `json:"notes" binding:"max=500"`
}

// UpdateAllocationRequest changes an allocation's amount or notes.
type UpdateAllocationRequest struct {
	AllocatedAmount *int64  `json:"allocated_amount" binding:"omitempty,gte=0"`
	Notes           *string `json:"notes" binding:"omitempty,max=500"`
}

// CreateAllocation adds a category allocation to a budget.
// @Summary     Create allocation
// @Tags        allocations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                  true "Budget ID"
// @Param       request body CreateAllocationRequest true "Allocation"
// @Success     201 {object} models.CategoryAllocation "Allocation created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget or category not found"
// @Failure     409 {object} ErrorResponse "Category already allocated"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/allocations [post]
func (h *AllocationHandler) CreateAllocation(c *gin.Context) {
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

	var req CreateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	allocation, err := h.allocationService.CreateAllocation(userID, budgetID, req.CategoryID, req.AllocatedAmount, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"allocation": allocation})
}

// GetAllocations lists a budget's allocations.
// @Summary     Get allocations
// @Tags        allocations
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {array}  models.CategoryAllocation "Allocations"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/allocations [get]
func (h *AllocationHandler) GetAllocations(c *gin.Context) {
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

	allocations, err := h.allocationService.GetBudgetAllocations(userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"allocations": allocations})
}

// UpdateAllocation changes an allocation.
// @Summary     Update allocation
// @Tags        allocations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id           path string                  true "Budget ID"
// @Param       allocationId path string                  true "Allocation ID"
// @Param       request      body UpdateAllocationRequest true "Changes"
// @Success     200 {object} models.CategoryAllocation "Updated allocation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Allocation not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/allocations/{allocationId} [put]
func (h *AllocationHandler) UpdateAllocation(c *gin.Context) {
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
	allocationID, err := parsePathID(c, "allocationId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	allocation, err := h.allocationService.UpdateAllocation(userID, budgetID, allocationID, req.AllocatedAmount, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"allocation": allocation})
}

// DeleteAllocation removes an allocation.
// @Summary     Delete allocation
// @Tags        allocations
// @Produce     json
// @Security    BearerAuth
// @Param       id           path string true "Budget ID"
// @Param       allocationId path string true "Allocation ID"
// @Success     200 {object} MessageResponse "Allocation deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Allocation not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/allocations/{allocationId} [delete]
func (h *AllocationHandler) DeleteAllocation(c *gin.Context) {
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
	allocationID, err := parsePathID(c, "allocationId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.allocationService.DeleteAllocation(userID, budgetID, allocationID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Allocation deleted successfully"})
}

// GetSuggestions proposes allocations from recent spending.
// @Summary     Suggest allocations
// @Description Average spend per category over the three months before the budget starts, scaled to its period
// @Tags        allocations
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} services.AllocationSuggestions "Suggestions"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/allocations/suggestions [get]
func (h *AllocationHandler) GetSuggestions(c *gin.Context) {
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

	suggestions, err := h.allocationService.GetSuggestions(userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}
