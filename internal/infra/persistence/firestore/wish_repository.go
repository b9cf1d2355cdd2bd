package firestore

import (
	"context"

	"guestbook/internal/domain/entity"
	"guestbook/internal/domain/repository"
	"guestbook/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// wishRepository reads and writes the wishes collection, optionally inside a transaction.
type wishRepository struct {
	client     *firestore.Client
	collection string
	tx         *firestore.Transaction
}

// NewWishRepository creates a repository that works outside any transaction.
func NewWishRepository(client *firestore.Client, collection string) repository.WishRepository {
	return &wishRepository{client: client, collection: collection}
}

func (repo *wishRepository) doc(id string) *firestore.DocumentRef {
	return repo.client.Collection(repo.collection).Doc(id)
}

// FindWishByID retrieves a wish by its document id.
func (repo *wishRepository) FindWishByID(ctx context.Context, id string) (*entity.Wish, error) {
	var (
		snap *firestore.DocumentSnapshot
		err  error
	)
	if repo.tx != nil {
		snap, err = repo.tx.Get(repo.doc(id))
	} else {
		snap, err = repo.doc(id).Get(ctx)
	}

	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrWishNotFound
		}

		return nil, errors.Wrap(err, "failed to find wish by ID")
	}

	wish, err := toWishDomain(snap)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode wish")
	}

	return wish, nil
}

// CreateWish creates the document, failing if it already exists. Inside a
// transaction the write is buffered and conflicts surface at commit.
func (repo *wishRepository) CreateWish(ctx context.Context, wish *entity.Wish) error {
	doc := fromWishDomain(wish)

	var err error
	if repo.tx != nil {
		err = repo.tx.Create(repo.doc(wish.ID), doc)
	} else {
		_, err = repo.doc(wish.ID).Create(ctx, doc)
	}

	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrDuplicateWish
		}

		return errors.Wrap(err, "failed to create wish")
	}

	return nil
}

// FindWishesByInvitation retrieves every wish of an invitation. The query has
// no ordering so it needs no composite index.
func (repo *wishRepository) FindWishesByInvitation(ctx context.Context, invitationID string) ([]*entity.Wish, error) {
	query := repo.client.Collection(repo.collection).Where("invitationId", "==", invitationID)

	var iter *firestore.DocumentIterator
	if repo.tx != nil {
		iter = repo.tx.Documents(query)
	} else {
		iter = query.Documents(ctx)
	}

	snaps, err := iter.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find wishes by invitation")
	}

	wishes := make([]*entity.Wish, 0, len(snaps))
	for _, snap := range snaps {
		wish, err := toWishDomain(snap)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode wish %s", snap.Ref.ID)
		}
		wishes = append(wishes, wish)
	}

	return wishes, nil
}
