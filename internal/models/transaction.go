package models

import (
	"time"

	"gorm.io/datatypes"
)

// TransactionTypeDebit is the aggregator's raw type for money leaving an account.
const TransactionTypeDebit = "DEBIT"

// TransactionMeta is the structured detail the aggregator attaches to a
// transaction.
type TransactionMeta struct {
	OtherAccount string `json:"other_account,omitempty"`
	Particulars  string `json:"particulars,omitempty"`
	Code         string `json:"code,omitempty"`
	Reference    string `json:"reference,omitempty"`
}

// Transaction is a bank ledger entry. Ledger fields are refreshed on resync;
// only CategoryID is owned by the user.
type Transaction struct {
	Record
	UserID      string                              `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID   string                              `gorm:"type:uuid;not null;uniqueIndex:uq_transaction_external,priority:1" json:"account_id"`
	ExternalID  string                              `gorm:"not null;uniqueIndex:uq_transaction_external,priority:2" json:"external_id"`
	Date        time.Time                           `gorm:"not null;index" json:"date"`
	Description string                              `gorm:"not null" json:"description"`
	Amount      Money                               `gorm:"embedded;embeddedPrefix:amount_" json:"amount"`
	Type        string                              `json:"type"`
	RawCategory string                              `json:"raw_category,omitempty"`
	Merchant    string                              `json:"merchant,omitempty"`
	Meta        datatypes.JSONType[TransactionMeta] `json:"meta"`
	CategoryID  *string                             `gorm:"type:uuid;index" json:"category_id"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// FromAccount returns the counter-party account number, or "".
func (t *Transaction) FromAccount() string {
	return t.Meta.Data().OtherAccount
}

// IsDebit reports whether the transaction is spending. Either a negative
// amount or a DEBIT type is enough.
func (t *Transaction) IsDebit() bool {
	return t.Amount.IsNegative() || t.Type == TransactionTypeDebit
}
