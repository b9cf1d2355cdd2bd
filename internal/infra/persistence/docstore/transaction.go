package docstore

import (
	"context"

	"guestbook/internal/domain/repository"

	"gocloud.dev/docstore"
)

// docstoreTransactionManager has no multi-document transaction to offer. The
// create-if-absent guard holds because CreateWish is an atomic conditional
// create and a lost race reports ErrDuplicateWish.
type docstoreTransactionManager struct {
	coll *docstore.Collection
}

type docstoreRepositoryFactory struct {
	coll *docstore.Collection
}

// NewWishRepository creates a wish repository over the collection.
func (f *docstoreRepositoryFactory) NewWishRepository() repository.WishRepository {
	return NewWishRepository(f.coll)
}

// NewTransactionManager is the constructor for docstoreTransactionManager.
func NewTransactionManager(coll *docstore.Collection) repository.TransactionManager {
	return &docstoreTransactionManager{coll: coll}
}

// Execute runs fn against the collection.
func (tm *docstoreTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(&docstoreRepositoryFactory{coll: tm.coll})
}
