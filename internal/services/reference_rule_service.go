package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "tally/internal/errors"
	"tally/internal/models"
)

// referenceRuleService handles the learned categorization rules.
type referenceRuleService struct {
	db *gorm.DB
}

// NewReferenceRuleService creates a new ReferenceRuleServicer.
func NewReferenceRuleService(db *gorm.DB) ReferenceRuleServicer {
	return &referenceRuleService{db: db}
}

// ruleLevel narrows a rule query to one specificity level.
type ruleLevel func(q *gorm.DB, sig Signature) *gorm.DB

// ruleLevels returns the lookup levels that apply to sig, most specific first.
func ruleLevels(sig Signature) []ruleLevel {
	levels := []ruleLevel{
		func(q *gorm.DB, sig Signature) *gorm.DB {
			return q.Where("merchant = ? AND description = ? AND from_account = ?", sig.Merchant, sig.Description, sig.FromAccount)
		},
	}
	if sig.Merchant != "" {
		levels = append(levels, func(q *gorm.DB, sig Signature) *gorm.DB {
			return q.Where("merchant = ? AND description = ?", sig.Merchant, sig.Description)
		})
	}
	if sig.FromAccount != "" {
		levels = append(levels, func(q *gorm.DB, sig Signature) *gorm.DB {
			return q.Where("from_account = ? AND description = ?", sig.FromAccount, sig.Description)
		})
	}
	return append(levels, func(q *gorm.DB, sig Signature) *gorm.DB {
		return q.Where("description = ?", sig.Description)
	})
}

// FindRule returns the most specific rule for sig. A level whose candidates
// all reject amount ends the search; only an empty level falls through to
// the next one. A nil amount skips the amount check.
func (s *referenceRuleService) FindRule(userID string, sig Signature, amount *decimal.Decimal) (*models.ReferenceRule, error) {
	if sig.Description == "" {
		return nil, nil
	}

	for _, level := range ruleLevels(sig) {
		var candidates []models.ReferenceRule
		err := level(s.db.Where("user_id = ?", userID), sig).
			Order("amount_condition IS NULL").
			Order("updated_at DESC").
			Find(&candidates).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if len(candidates) == 0 {
			continue
		}

		for i := range candidates {
			if amount == nil || candidates[i].AmountCondition.Matches(*amount) {
				return &candidates[i], nil
			}
		}
		return nil, nil
	}
	return nil, nil
}

// UpsertRule records that sig belongs to categoryID. An existing rule whose
// amount condition rejects amount is returned unchanged.
func (s *referenceRuleService) UpsertRule(tx *gorm.DB, userID string, sig Signature, categoryID string, amount *decimal.Decimal) (*models.ReferenceRule, error) {
	if tx == nil {
		tx = s.db
	}
	if strings.TrimSpace(sig.Description) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "rule description is required")
	}

	var existing models.ReferenceRule
	err := s.exact(tx, userID, sig).First(&existing).Error
	switch {
	case err == nil:
		if existing.AmountCondition != nil && amount != nil && !existing.AmountCondition.Matches(*amount) {
			return &existing, nil
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rule := &models.ReferenceRule{
		UserID:      userID,
		Merchant:    sig.Merchant,
		Description: sig.Description,
		FromAccount: sig.FromAccount,
		CategoryID:  categoryID,
	}
	err = tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "merchant"}, {Name: "description"}, {Name: "from_account"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"category_id": categoryID,
			"updated_at":  time.Now(),
		}),
	}).Create(rule).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var saved models.ReferenceRule
	if err := s.exact(tx, userID, sig).First(&saved).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &saved, nil
}

func (s *referenceRuleService) exact(tx *gorm.DB, userID string, sig Signature) *gorm.DB {
	return tx.Where("user_id = ? AND merchant = ? AND description = ? AND from_account = ?",
		userID, sig.Merchant, sig.Description, sig.FromAccount)
}

// GetCategoryRules lists the rules that assign categoryID.
func (s *referenceRuleService) GetCategoryRules(userID, categoryID string) ([]models.ReferenceRule, error) {
	if _, err := findOwnedCategory(s.db, userID, categoryID); err != nil {
		return nil, err
	}

	var rules []models.ReferenceRule
	err := s.db.Where("user_id = ? AND category_id = ?", userID, categoryID).
		Order("description ASC").
		Order("updated_at DESC").
		Find(&rules).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rules, nil
}

// GetRuleByID returns a rule if it belongs to the user.
func (s *referenceRuleService) GetRuleByID(userID, ruleID string) (*models.ReferenceRule, error) {
	var rule models.ReferenceRule
	if err := s.db.Preload("Category").Where("id = ? AND user_id = ?", ruleID, userID).First(&rule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &rule, nil
}

// UpdateAmountCondition sets or clears (nil) a rule's amount condition.
func (s *referenceRuleService) UpdateAmountCondition(userID, ruleID string, condition *models.AmountCondition) (*models.ReferenceRule, error) {
	if condition != nil {
		if err := condition.Validate(); err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidAmountCondition, err.Error())
		}
	}

	rule, err := s.GetRuleByID(userID, ruleID)
	if err != nil {
		return nil, err
	}

	rule.AmountCondition = condition
	rule.UpdatedAt = time.Now()
	if err := s.db.Model(rule).Select("AmountCondition", "UpdatedAt").Updates(rule).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rule, nil
}

// DeleteRule removes a rule owned by the user.
func (s *referenceRuleService) DeleteRule(userID, ruleID string) error {
	result := s.db.Where("id = ? AND user_id = ?", ruleID, userID).Delete(&models.ReferenceRule{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrRuleNotFound
	}
	return nil
}
