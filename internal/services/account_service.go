package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/pagination"
)

// accountService handles synced bank accounts.
type accountService struct {
	db  *gorm.DB
	loc *time.Location
}

// NewAccountService creates a new AccountServicer. loc is used when
// deleting an account forces linked incomes and expenses to be rescheduled.
func NewAccountService(db *gorm.DB, loc *time.Location) AccountServicer {
	return &accountService{db: db, loc: loc}
}

// UpsertAccount creates the account or refreshes it by external ID.
func (s *accountService) UpsertAccount(userID string, input AccountInput) (*models.Account, error) {
	if input.ExternalID == "" || input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "external_id and name are required")
	}

	var existing models.Account
	err := s.db.Where("external_id = ?", input.ExternalID).First(&existing).Error
	switch {
	case err == nil && existing.UserID != userID:
		// External IDs are global; never let one user overwrite another's account.
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "external_id is already in use")
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := time.Now()
	account := &models.Account{
		UserID:           userID,
		ExternalID:       input.ExternalID,
		Name:             input.Name,
		Type:             input.Type,
		FormattedAccount: input.FormattedAccount,
		Balance:          models.NewMoney(input.Balance, input.Currency),
		SyncedAt:         &now,
	}

	err = s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "type", "formatted_account", "balance_value", "balance_currency", "synced_at", "updated_at",
		}),
	}).Create(account).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// On conflict the existing row keeps its ID, so re-read by external ID.
	var saved models.Account
	if err := s.db.Where("external_id = ? AND user_id = ?", input.ExternalID, userID).First(&saved).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &saved, nil
}

var accountSorts = pagination.Sorts{
	"name":      "name",
	"synced_at": "synced_at",
	"balance":   "balance_value",
}

// GetUserAccounts returns a paginated list of the user's accounts.
func (s *accountService) GetUserAccounts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
	page.Defaults()
	order, err := page.OrderBy(accountSorts, pagination.Asc("name"))
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	base := s.db.Model(&models.Account{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var accounts []models.Account
	if err := base.Scopes(pagination.Sorted(order), pagination.Paginate(page)).Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(accounts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAccountByID returns an account if it belongs to the user.
func (s *accountService) GetAccountByID(userID, accountID string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// DeleteAccount removes an account together with its transactions. Income
// and expense items that had those transactions linked are rescheduled from
// their remaining links.
func (s *accountService) DeleteAccount(userID, accountID string) error {
	account, err := s.GetAccountByID(userID, accountID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Model(&models.Transaction{}).Where("account_id = ?", account.ID).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if err := unlinkTransactions(tx, ids, s.loc); err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", account.ID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(account).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
