package models

import "time"

// Account is a bank account mirrored from the aggregator.
type Account struct {
	Record
	UserID           string     `gorm:"type:uuid;not null;index" json:"user_id"`
	ExternalID       string     `gorm:"not null;uniqueIndex" json:"external_id"`
	Name             string     `gorm:"not null" json:"name"`
	Type             string     `json:"type"`
	FormattedAccount string     `json:"formatted_account,omitempty"`
	Balance          Money      `gorm:"embedded;embeddedPrefix:balance_" json:"balance"`
	SyncedAt         *time.Time `json:"synced_at,omitempty"`
}
