package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/progress"
)

// allocationService handles per-category budget allocations.
type allocationService struct {
	db *gorm.DB
}

// NewAllocationService creates a new AllocationServicer.
func NewAllocationService(db *gorm.DB) AllocationServicer {
	return &allocationService{db: db}
}

// CreateAllocation allocates amount cents of budgetID to categoryID. A
// category can be allocated once per budget.
func (s *allocationService) CreateAllocation(userID, budgetID, categoryID string, amount int64, notes string) (*models.CategoryAllocation, error) {
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "allocated_amount must not be negative")
	}

	budget, err := findOwnedBudget(s.db, userID, budgetID)
	if err != nil {
		return nil, err
	}
	category, err := findOwnedCategory(s.db, userID, categoryID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.CategoryAllocation{}).
		Where("budget_id = ? AND category_id = ?", budget.ID, category.ID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrAllocationExists
	}

	allocation := &models.CategoryAllocation{
		BudgetID:        budget.ID,
		CategoryID:      category.ID,
		AllocatedAmount: amount,
		Notes:           notes,
	}
	if err := s.db.Create(allocation).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	allocation.Category = category
	return allocation, nil
}

// GetBudgetAllocations lists a budget's allocations with their categories.
func (s *allocationService) GetBudgetAllocations(userID, budgetID string) ([]models.CategoryAllocation, error) {
	budget, err := findOwnedBudget(s.db, userID, budgetID)
	if err != nil {
		return nil, err
	}

	var allocations []models.CategoryAllocation
	if err := s.db.Preload("Category").Where("budget_id = ?", budget.ID).Order("created_at ASC").Find(&allocations).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return allocations, nil
}

func (s *allocationService) find(userID, budgetID, allocationID string) (*models.CategoryAllocation, error) {
	budget, err := findOwnedBudget(s.db, userID, budgetID)
	if err != nil {
		return nil, err
	}

	var allocation models.CategoryAllocation
	if err := s.db.Where("id = ? AND budget_id = ?", allocationID, budget.ID).First(&allocation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAllocationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &allocation, nil
}

// UpdateAllocation changes an allocation's amount and/or notes.
func (s *allocationService) UpdateAllocation(userID, budgetID, allocationID string, amount *int64, notes *string) (*models.CategoryAllocation, error) {
	allocation, err := s.find(userID, budgetID, allocationID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if amount != nil {
		if *amount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "allocated_amount must not be negative")
		}
		updates["allocated_amount"] = *amount
	}
	if notes != nil {
		updates["notes"] = *notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(allocation).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return allocation, nil
}

// DeleteAllocation removes an allocation from a budget.
func (s *allocationService) DeleteAllocation(userID, budgetID, allocationID string) error {
	allocation, err := s.find(userID, budgetID, allocationID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(allocation).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetSuggestions proposes allocations for a budget from the three months of
// spending before its period starts. Categories already allocated are
// flagged rather than omitted.
func (s *allocationService) GetSuggestions(userID, budgetID string) (*AllocationSuggestions, error) {
	budget, err := findOwnedBudget(s.db, userID, budgetID)
	if err != nil {
		return nil, err
	}

	var existing []models.CategoryAllocation
	if err := s.db.Where("budget_id = ?", budget.ID).Find(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	suggestions, err := suggestAllocations(s.db, userID, budget.PeriodStart, budget.Period, existing)
	if err != nil {
		return nil, err
	}

	window := progress.Lookback(budget.PeriodStart)
	return &AllocationSuggestions{
		LookbackStart: window.Start,
		LookbackEnd:   window.End,
		BudgetPeriod:  budget.Period,
		Suggestions:   suggestions,
	}, nil
}
