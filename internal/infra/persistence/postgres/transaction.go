package postgres

import (
	"context"
	"fmt"

	"guestbook/internal/domain/repository"
	"guestbook/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory holds one GORM transaction and hands out repositories bound to it.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// NewWishRepository creates a wish repository bound to the transaction.
func (f *gormRepositoryFactory) NewWishRepository() repository.WishRepository {
	return NewWishRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		// The primary key is checked at commit when the insert was deferred.
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWish
		}

		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
