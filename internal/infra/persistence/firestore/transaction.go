package firestore

import (
	"context"

	"guestbook/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// firestoreTransactionManager runs repository work in a Firestore transaction.
// Firestore retries the callback on contention, so the callback must be idempotent.
type firestoreTransactionManager struct {
	client     *firestore.Client
	collection string
}

type firestoreRepositoryFactory struct {
	client     *firestore.Client
	collection string
	tx         *firestore.Transaction
}

// NewWishRepository creates a wish repository bound to the transaction.
func (f *firestoreRepositoryFactory) NewWishRepository() repository.WishRepository {
	return &wishRepository{client: f.client, collection: f.collection, tx: f.tx}
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
func NewTransactionManager(client *firestore.Client, collection string) repository.TransactionManager {
	return &firestoreTransactionManager{client: client, collection: collection}
}

// Execute runs fn within a Firestore transaction.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return fn(&firestoreRepositoryFactory{client: tm.client, collection: tm.collection, tx: tx})
	})

	// A buffered Create rejected at commit.
	if err != nil && status.Code(err) == codes.AlreadyExists {
		return repository.ErrDuplicateWish
	}

	return err
}
