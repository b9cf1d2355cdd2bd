package docstore

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"guestbook/internal/domain/entity"
	"guestbook/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/docstore"
	"gocloud.dev/docstore/memdocstore"
)

func newCollection(t *testing.T) *docstore.Collection {
	t.Helper()

	coll, err := memdocstore.OpenCollection(KeyField, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = coll.Close() })

	return coll
}

func newWish(invitationID, name, message string) *entity.Wish {
	nameKey := entity.NormalizeNameKey(name)

	return &entity.Wish{
		ID:           entity.WishRecordID(invitationID, nameKey),
		InvitationID: invitationID,
		Name:         name,
		NameKey:      nameKey,
		Message:      message,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestWishRepository_CreateAndFind(t *testing.T) {
	repo := NewWishRepository(newCollection(t))
	wish := newWish("w1", "Raka", "Congrats!")

	require.NoError(t, repo.CreateWish(t.Context(), wish))

	found, err := repo.FindWishByID(t.Context(), wish.ID)
	require.NoError(t, err)
	assert.Equal(t, wish, found)
}

func TestWishRepository_FindMissing(t *testing.T) {
	repo := NewWishRepository(newCollection(t))

	_, err := repo.FindWishByID(t.Context(), "w1_nobody")
	assert.ErrorIs(t, err, repository.ErrWishNotFound)
}

func TestWishRepository_CreateDuplicate(t *testing.T) {
	repo := NewWishRepository(newCollection(t))

	require.NoError(t, repo.CreateWish(t.Context(), newWish("w1", "Raka", "first")))
	err := repo.CreateWish(t.Context(), newWish("w1", "raka!", "second"))
	require.ErrorIs(t, err, repository.ErrDuplicateWish)

	found, err := repo.FindWishByID(t.Context(), "w1_raka")
	require.NoError(t, err)
	assert.Equal(t, "first", found.Message)
}

func TestWishRepository_FindWishesByInvitation(t *testing.T) {
	coll := newCollection(t)
	repo := NewWishRepository(coll)

	require.NoError(t, repo.CreateWish(t.Context(), newWish("w1", "Raka", "a")))
	require.NoError(t, repo.CreateWish(t.Context(), newWish("w1", "Nadya", "b")))
	require.NoError(t, repo.CreateWish(t.Context(), newWish("w2", "Raka", "c")))
	// Legacy record: generated id, no nameKey, no createdAt.
	require.NoError(t, coll.Create(t.Context(), &wishDocument{ID: "legacy-1", InvitationID: "w1", Name: "Old Guest", Message: "d"}))

	wishes, err := repo.FindWishesByInvitation(t.Context(), "w1")
	require.NoError(t, err)
	require.Len(t, wishes, 3)

	ids := make([]string, 0, len(wishes))
	for _, wish := range wishes {
		ids = append(ids, wish.ID)
		assert.Equal(t, "w1", wish.InvitationID)
	}
	assert.ElementsMatch(t, []string{"w1_raka", "w1_nadya", "legacy-1"}, ids)

	empty, err := repo.FindWishesByInvitation(t.Context(), "w3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTransactionManager_ConcurrentCreate(t *testing.T) {
	coll := newCollection(t)
	txManager := NewTransactionManager(coll)

	const attempts = 16
	results := make([]error, attempts)

	var wg sync.WaitGroup
	for i := range attempts {
		wg.Go(func() {
			wish := newWish("w1", "Raka", fmt.Sprintf("message %d", i))
			results[i] = txManager.Execute(t.Context(), func(f repository.RepositoryFactory) error {
				return f.NewWishRepository().CreateWish(t.Context(), wish)
			})
		})
	}
	wg.Wait()

	created := 0
	for _, err := range results {
		if err == nil {
			created++

			continue
		}
		assert.ErrorIs(t, err, repository.ErrDuplicateWish)
	}
	assert.Equal(t, 1, created)

	wishes, err := NewWishRepository(coll).FindWishesByInvitation(t.Context(), "w1")
	require.NoError(t, err)
	assert.Len(t, wishes, 1)
}
