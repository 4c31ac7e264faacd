package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/pagination"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a category. Names are unique per user.
func (s *categoryService) CreateCategory(userID, name, color, description string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if err := s.ensureNameFree(userID, name, ""); err != nil {
		return nil, err
	}
	if color == "" {
		color = models.DefaultCategoryColor
	}

	category := &models.Category{
		UserID:      userID,
		Name:        name,
		Color:       color,
		Description: description,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

func (s *categoryService) ensureNameFree(userID, name, exceptID string) error {
	q := s.db.Model(&models.Category{}).Where("user_id = ? AND name = ?", userID, name)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateCategory
	}
	return nil
}

var categorySorts = pagination.Sorts{
	"name":       "name",
	"created_at": "created_at",
}

// GetUserCategories returns a paginated list of the user's categories.
func (s *categoryService) GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	page.Defaults()
	order, err := page.OrderBy(categorySorts, pagination.Asc("name"))
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	base := s.db.Model(&models.Category{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	if err := base.Scopes(pagination.Sorted(order), pagination.Paginate(page)).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(categories, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCategoryByID returns a category if it belongs to the user.
func (s *categoryService) GetCategoryByID(userID, categoryID string) (*models.Category, error) {
	return findOwnedCategory(s.db, userID, categoryID)
}

// UpdateCategory changes a category's name, color, or description.
// Empty name and color leave those fields unchanged.
func (s *categoryService) UpdateCategory(userID, categoryID, name, color string, description *string) (*models.Category, error) {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name = strings.TrimSpace(name); name != "" && name != category.Name {
		if err := s.ensureNameFree(userID, name, category.ID); err != nil {
			return nil, err
		}
		updates["name"] = name
	}
	if color != "" {
		updates["color"] = color
	}
	if description != nil {
		updates["description"] = *description
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return category, nil
}

// DeleteCategory removes a category. Transactions and fixed expenses that
// referenced it become uncategorized; its rules and allocations are removed.
func (s *categoryService) DeleteCategory(userID, categoryID string) error {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Transaction{}).
			Where("user_id = ? AND category_id = ?", userID, category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.FixedExpense{}).
			Where("user_id = ? AND category_id = ?", userID, category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? AND category_id = ?", userID, category.ID).
			Delete(&models.ReferenceRule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", category.ID).
			Delete(&models.CategoryAllocation{}).Error; err != nil {
			return err
		}
		return tx.Delete(category).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
