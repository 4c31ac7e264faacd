package models

import (
	"time"

	"tally/internal/uuid"

	"gorm.io/gorm"
)

// ReferenceRule maps a transaction signature to a category. There is at most
// one rule per (user, merchant, description, from account); absent merchant
// and account are stored as "" so that key stays comparable.
type ReferenceRule struct {
	ID              string           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string           `gorm:"type:uuid;not null;uniqueIndex:uq_reference_rule_signature,priority:1" json:"user_id"`
	Merchant        string           `gorm:"not null;uniqueIndex:uq_reference_rule_signature,priority:2" json:"merchant"`
	Description     string           `gorm:"not null;uniqueIndex:uq_reference_rule_signature,priority:3" json:"description"`
	FromAccount     string           `gorm:"not null;uniqueIndex:uq_reference_rule_signature,priority:4" json:"from_account"`
	CategoryID      string           `gorm:"type:uuid;not null;index" json:"category_id"`
	AmountCondition *AmountCondition `gorm:"type:jsonb;serializer:json" json:"amount_condition"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate assigns a UUIDv7 to new rules.
func (r *ReferenceRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New()
	}
	return nil
}
