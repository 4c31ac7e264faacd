package models

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#64748b"

// Category is a user-defined label for transactions.
type Category struct {
	Record
	UserID      string `gorm:"type:uuid;not null;uniqueIndex:uq_category_user_name,priority:1" json:"user_id"`
	Name        string `gorm:"not null;uniqueIndex:uq_category_user_name,priority:2" json:"name"`
	Color       string `gorm:"not null" json:"color"`
	Description string `json:"description,omitempty"`
}
