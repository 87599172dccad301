package sqlite

import (
	"context"
	"errors"
	"fmt"

	"seatsync/internal/domain/entity"
	"seatsync/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new instance of AccountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindActive retrieves the currently logged-in account, nil when none.
func (r *accountRepository) FindActive(ctx context.Context) (*entity.UserAccount, error) {
	var account entity.UserAccount
	if err := r.db.WithContext(ctx).Where("active = ?", true).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active account: %w", err)
	}
	return &account, nil
}

// Save upserts an account row. At most one row stays active: saving an
// active account deactivates every other row first.
func (r *accountRepository) Save(ctx context.Context, account *entity.UserAccount) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if account.Active {
			if err := tx.Model(&entity.UserAccount{}).
				Where("username <> ?", account.Username).
				Update("active", false).Error; err != nil {
				return fmt.Errorf("failed to deactivate other accounts: %w", err)
			}
		}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(account).Error; err != nil {
			return fmt.Errorf("failed to save account %s: %w", account.Username, err)
		}
		return nil
	})
}

// Delete removes an account row by username.
func (r *accountRepository) Delete(ctx context.Context, username string) error {
	if err := r.db.WithContext(ctx).Where("username = ?", username).Delete(&entity.UserAccount{}).Error; err != nil {
		return fmt.Errorf("failed to delete account %s: %w", username, err)
	}
	return nil
}
