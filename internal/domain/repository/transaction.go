package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to handle transactions without depending on a specific store driver.
type TransactionManager interface {
	// Execute runs a function within a store transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	// NewWishRepository returns a WishRepository instance bound to the current transaction.
	NewWishRepository() WishRepository
}
