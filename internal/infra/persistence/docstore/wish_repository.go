package docstore

import (
	"context"
	"io"

	"guestbook/internal/domain/entity"
	"guestbook/internal/domain/repository"
	"guestbook/internal/errors"

	"gocloud.dev/docstore"
	"gocloud.dev/gcerrors"
)

type wishRepository struct {
	coll *docstore.Collection
}

// NewWishRepository creates a repository over a collection keyed by KeyField.
func NewWishRepository(coll *docstore.Collection) repository.WishRepository {
	return &wishRepository{coll: coll}
}

// FindWishByID retrieves a wish by its key.
func (repo *wishRepository) FindWishByID(ctx context.Context, id string) (*entity.Wish, error) {
	doc := &wishDocument{ID: id}
	if err := repo.coll.Get(ctx, doc); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrWishNotFound
		}

		return nil, errors.Wrap(err, "failed to find wish by ID")
	}

	return doc.toDomain(), nil
}

// CreateWish relies on the atomic Create of the collection: exactly one of
// several concurrent creates of the same key succeeds.
func (repo *wishRepository) CreateWish(ctx context.Context, wish *entity.Wish) error {
	if err := repo.coll.Create(ctx, fromWishDomain(wish)); err != nil {
		if gcerrors.Code(err) == gcerrors.AlreadyExists {
			return repository.ErrDuplicateWish
		}

		return errors.Wrap(err, "failed to create wish")
	}

	return nil
}

// FindWishesByInvitation retrieves every wish of an invitation.
func (repo *wishRepository) FindWishesByInvitation(ctx context.Context, invitationID string) ([]*entity.Wish, error) {
	iter := repo.coll.Query().Where("invitationId", "=", invitationID).Get(ctx)
	defer iter.Stop()

	var wishes []*entity.Wish
	for {
		var doc wishDocument
		err := iter.Next(ctx, &doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find wishes by invitation")
		}
		wishes = append(wishes, doc.toDomain())
	}

	return wishes, nil
}
