package impl

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"guestbook/internal/domain/entity"
	domainerrors "guestbook/internal/domain/errors"
	"guestbook/internal/domain/repository"
	"guestbook/internal/domain/service"
	"guestbook/internal/errors"
	mockRepo "guestbook/internal/mocks/repository"
	mockSvc "guestbook/internal/mocks/service"
	"guestbook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 14, 9, 30, 15, 123456789, time.UTC)

// wishServiceFixtures holds all test dependencies for wish service tests.
type wishServiceFixtures struct {
	service   *wishService
	txManager *mockRepo.MockTransactionManager
	wishRepo  *mockRepo.MockWishRepository
	cache     *mockSvc.MockWishCache
	publisher *mockSvc.MockEventPublisher
	metrics   *mockSvc.MockWishMetrics
}

func createTestWishService(t *testing.T) wishServiceFixtures {
	fx := wishServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		wishRepo:  mockRepo.NewMockWishRepository(t),
		cache:     mockSvc.NewMockWishCache(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		metrics:   mockSvc.NewMockWishMetrics(t),
	}

	svc, ok := NewWishService(WishServiceParams{
		TxManager: fx.txManager,
		WishRepo:  fx.wishRepo,
		Cache:     fx.cache,
		Publisher: fx.publisher,
		Metrics:   fx.metrics,
		Logger:    newDiscardLogger(),
	}).(*wishService)
	require.True(t, ok)
	svc.now = func() time.Time { return fixedNow }
	fx.service = svc

	return fx
}

// expectTransaction runs the callback against a factory handing out txRepo.
func (fx wishServiceFixtures) expectTransaction(t *testing.T, txRepo *mockRepo.MockWishRepository) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewWishRepository().Return(txRepo)

			return fn(factory)
		})
}

func TestWishService_SubmitWish_Created(t *testing.T) {
	fx := createTestWishService(t)
	ctx := context.Background()
	txRepo := mockRepo.NewMockWishRepository(t)

	fx.expectTransaction(t, txRepo)
	txRepo.EXPECT().
		FindWishByID(ctx, "inv-1_ana_maria").
		Return(nil, repository.ErrWishNotFound)
	txRepo.EXPECT().
		CreateWish(ctx, mock.AnythingOfType("*entity.Wish")).
		Return(nil)
	fx.cache.EXPECT().Invalidate(mock.Anything, "inv-1").Return(nil)
	fx.publisher.EXPECT().
		PublishWishPosted(mock.Anything, mock.MatchedBy(func(event *service.WishPostedEvent) bool {
			return event.WishID == "inv-1_ana_maria" && event.InvitationID == "inv-1" && event.EventID != ""
		})).
		Return(nil)
	fx.metrics.EXPECT().ObserveSubmission(service.OutcomeCreated).Return()

	session, err := fx.service.SubmitWish(ctx, &usecase.WishDraft{
		InvitationID: " inv-1 ",
		Name:         "  Ana Maria ",
		Message:      " Congratulations! ",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.GuestStatePosted, session.State)
	assert.Equal(t, "Ana Maria", session.GuestName)
	assert.Equal(t, "ana_maria", session.NameKey)
	assert.True(t, session.IsTerminal())

	wish := session.Wish
	require.NotNil(t, wish)
	assert.Equal(t, "inv-1_ana_maria", wish.ID)
	assert.Equal(t, "inv-1", wish.InvitationID)
	assert.Equal(t, "Ana Maria", wish.Name)
	assert.Equal(t, "ana_maria", wish.NameKey)
	assert.Equal(t, "Congratulations!", wish.Message)
	assert.Equal(t, fixedNow.Truncate(time.Millisecond), wish.CreatedAt)
}

func TestWishService_SubmitWish_UsesClientNameKey(t *testing.T) {
	fx := createTestWishService(t)
	ctx := context.Background()
	txRepo := mockRepo.NewMockWishRepository(t)

	fx.expectTransaction(t, txRepo)
	txRepo.EXPECT().
		FindWishByID(ctx, "inv-1_table_7_ana").
		Return(nil, repository.ErrWishNotFound)
	txRepo.EXPECT().
		CreateWish(ctx, mock.AnythingOfType("*entity.Wish")).
		Return(nil)
	fx.cache.EXPECT().Invalidate(mock.Anything, "inv-1").Return(nil)
	fx.publisher.EXPECT().PublishWishPosted(mock.Anything, mock.Anything).Return(nil)
	fx.metrics.EXPECT().ObserveSubmission(service.OutcomeCreated).Return()

	session, err := fx.service.SubmitWish(ctx, &usecase.WishDraft{
		InvitationID: "inv-1",
		Name:         "Ana",
		NameKey:      "Table 7 / Ana",
		Message:      "Hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "table_7_ana", session.NameKey)
	assert.Equal(t, "table_7_ana", session.Wish.NameKey)
	assert.Equal(t, "Ana", session.Wish.Name)
}

func TestWishService_SubmitWish_ConflictInsideTransaction(t *testing.T) {
	fx := createTestWishService(t)
	ctx := context.Background()
	txRepo := mockRepo.NewMockWishRepository(t)
	existing := &entity.Wish{
		ID:           "inv-1_ana",
		InvitationID: "inv-1",
		Name:         "ana",
		NameKey:      "ana",
		Message:      "First",
		CreatedAt:    fixedNow.Add(-time.Hour),
	}

	fx.expectTransaction(t, txRepo)
	txRepo.EXPECT().FindWishByID(ctx, "inv-1_ana").Return(existing, nil)
	fx.metrics.EXPECT().ObserveSubmission(service.OutcomeConflict).Return()

	session, err := fx.service.SubmitWish(ctx, &usecase.WishDraft{
		InvitationID: "inv-1",
		Name:         "ANA",
		Message:      "Second",
	})
	require.Error(t, err)
	assert.Nil(t, session)

	conflict, ok := errors.AsType[*domainerrors.WishConflictError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, conflict.HTTPCode())
	assert.Equal(t, domainerrors.MsgAlreadyPosted, conflict.Message())
	assert.Same(t, existing, conflict.Existing)
	txRepo.AssertNotCalled(t, "CreateWish", mock.Anything, mock.Anything)
}

func TestWishService_SubmitWish_ConflictOnCreate(t *testing.T) {
	fx := createTestWishService(t)
	ctx := context.Background()
	txRepo := mockRepo.NewMockWishRepository(t)
	winner := &entity.Wish{ID: "inv-1_ana", InvitationID: "inv-1", Name: "Ana", NameKey: "ana", Message: "Won"}

	fx.expectTransaction(t, txRepo)
	txRepo.EXPECT().FindWishByID(ctx, "inv-1_ana").Return(nil, repository.ErrWishNotFound)
	txRepo.EXPECT().
		CreateWish(ctx, mock.AnythingOfType("*entity.Wish")).
		Return(repository.ErrDuplicateWish)
	fx.wishRepo.EXPECT().FindWishByID(ctx, "inv-1_ana").Return(winner, nil)
	fx.metrics.EXPECT().ObserveSubmission(service.OutcomeConflict).Return()

	_, err := fx.service.SubmitWish(ctx, &usecase.WishDraft{InvitationID: "inv-1", Name: "Ana", Message: "Lost"})

	conflict, ok := errors.AsType[*domainerrors.WishConflictError](err)
	require.True(t, ok)
	assert.Same(t, winner, conflict.Existing)
}

func TestWishService_SubmitWish_ConflictWithoutExisting(t *testing.T) {
	fx := createTestWishService(t)
	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateWish)
	fx.wishRepo.EXPECT().FindWishByID(ctx, "inv-1_ana").Return(nil, errors.New("unavailable"))
	fx.metrics.EXPECT().ObserveSubmission(service.OutcomeConflict).Return()

	_, err := fx.service.SubmitWish(ctx, &usecase.WishDraft{InvitationID: "inv-1", Name: "Ana", Message: "Hi"})

	conflict, ok := errors.AsType[*domainerrors.WishConflictError](err)
	require.True(t, ok)
	assert.Nil(t, conflict.Existing)
}

func TestWishService_SubmitWish_StoreFailure(t *testing.T) {
	fx := createTestWishService(t)
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(storeErr)
	fx.metrics.EXPECT().ObserveSubmission(service.OutcomeError).Return()

	session, err := fx.service.SubmitWish(ctx, &usecase.WishDraft{InvitationID: "inv-1", Name: "Ana", Message: "Hi"})
	assert.Nil(t, session)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, domainerrors.MsgTryAgain, appErr.Message())
	assert.ErrorIs(t, err, storeErr)
}

func TestWishService_SubmitWish_SideEffectFailuresAreIgnored(t *testing.T) {
	fx := createTestWishService(t)
	ctx := context.Background()
	txRepo := mockRepo.NewMockWishRepository(t)

	fx.expectTransaction(t, txRepo)
	txRepo.EXPECT().FindWishByID(ctx, "inv-1_ana").Return(nil, repository.ErrWishNotFound)
	txRepo.EXPECT().CreateWish(ctx, mock.Anything).Return(nil)
	fx.cache.EXPECT().Invalidate(mock.Anything, "inv-1").Return(errors.New("redis down"))
	fx.publisher.EXPECT().PublishWishPosted(mock.Anything, mock.Anything).Return(errors.New("pubsub down"))
	fx.metrics.EXPECT().ObserveSubmission(service.OutcomeCreated).Return()

	session, err := fx.service.SubmitWish(ctx, &usecase.WishDraft{InvitationID: "inv-1", Name: "Ana", Message: "Hi"})
	require.NoError(t, err)
	assert.Equal(t, entity.GuestStatePosted, session.State)
	assert.Equal(t, "inv-1_ana", session.Wish.ID)
}

func TestWishService_SubmitWish_Validation(t *testing.T) {
	tests := []struct {
		name      string
		draft     *usecase.WishDraft
		wantField string
		wantMsg   string
	}{
		{
			name:    "nil draft",
			draft:   nil,
			wantMsg: domainerrors.MsgMissingFields,
		},
		{
			name:    "blank invitation",
			draft:   &usecase.WishDraft{InvitationID: "  ", Name: "Ana", Message: "Hi"},
			wantMsg: domainerrors.MsgMissingFields,
		},
		{
			name:    "blank name",
			draft:   &usecase.WishDraft{InvitationID: "inv-1", Name: " \t", Message: "Hi"},
			wantMsg: domainerrors.MsgMissingFields,
		},
		{
			name:    "blank message",
			draft:   &usecase.WishDraft{InvitationID: "inv-1", Name: "Ana", Message: "\n"},
			wantMsg: domainerrors.MsgMissingFields,
		},
		{
			name:      "name too long",
			draft:     &usecase.WishDraft{InvitationID: "inv-1", Name: strings.Repeat("é", 81), Message: "Hi"},
			wantField: "name",
			wantMsg:   domainerrors.MsgNameTooLong,
		},
		{
			name: "name checked before message",
			draft: &usecase.WishDraft{
				InvitationID: "inv-1",
				Name:         strings.Repeat("a", 81),
				Message:      strings.Repeat("m", 801),
			},
			wantField: "name",
			wantMsg:   domainerrors.MsgNameTooLong,
		},
		{
			name:      "name key too long",
			draft:     &usecase.WishDraft{InvitationID: "inv-1", Name: "Ana", NameKey: strings.Repeat("k", 121), Message: "Hi"},
			wantField: "nameKey",
			wantMsg:   domainerrors.MsgNameKeyTooLong,
		},
		{
			name: "name key too long before normalizing",
			draft: &usecase.WishDraft{
				InvitationID: "inv-1",
				Name:         "Ana",
				NameKey:      strings.Repeat("k--", 41),
				Message:      "Hi",
			},
			wantField: "nameKey",
			wantMsg:   domainerrors.MsgNameKeyTooLong,
		},
		{
			name:      "message too long",
			draft:     &usecase.WishDraft{InvitationID: "inv-1", Name: "Ana", Message: strings.Repeat("ü", 801)},
			wantField: "message",
			wantMsg:   domainerrors.MsgMessageTooLong,
		},
		{
			name:      "name without alphanumerics",
			draft:     &usecase.WishDraft{InvitationID: "inv-1", Name: "❤️ ❤️", Message: "Hi"},
			wantField: "nameKey",
			wantMsg:   domainerrors.MsgInvalidNameKey,
		},
		{
			name:      "client key without alphanumerics",
			draft:     &usecase.WishDraft{InvitationID: "inv-1", Name: "Ana", NameKey: "---", Message: "Hi"},
			wantField: "nameKey",
			wantMsg:   domainerrors.MsgInvalidNameKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestWishService(t)
			fx.metrics.EXPECT().ObserveSubmission(service.OutcomeInvalid).Return()

			session, err := fx.service.SubmitWish(context.Background(), tt.draft)
			assert.Nil(t, session)

			validationErr, ok := errors.AsType[*domainerrors.ValidationError](err)
			require.True(t, ok, "expected validation error, got %v", err)
			assert.Equal(t, http.StatusBadRequest, validationErr.HTTPCode())
			assert.Equal(t, tt.wantMsg, validationErr.Message())
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, validationErr.Field())
			}
		})
	}
}

func TestWishService_SubmitWish_LengthLimitsCountCharacters(t *testing.T) {
	fx := createTestWishService(t)
	ctx := context.Background()
	txRepo := mockRepo.NewMockWishRepository(t)
	name := strings.Repeat("é", 79) + "a"
	message := strings.Repeat("ü", 800)

	fx.expectTransaction(t, txRepo)
	txRepo.EXPECT().FindWishByID(ctx, "inv-1_a").Return(nil, repository.ErrWishNotFound)
	txRepo.EXPECT().CreateWish(ctx, mock.Anything).Return(nil)
	fx.cache.EXPECT().Invalidate(mock.Anything, "inv-1").Return(nil)
	fx.publisher.EXPECT().PublishWishPosted(mock.Anything, mock.Anything).Return(nil)
	fx.metrics.EXPECT().ObserveSubmission(service.OutcomeCreated).Return()

	session, err := fx.service.SubmitWish(ctx, &usecase.WishDraft{InvitationID: "inv-1", Name: name, Message: message})
	require.NoError(t, err)
	assert.Equal(t, name, session.Wish.Name)
}

func TestWishService_SubmitWish_NameKeyAtLimit(t *testing.T) {
	fx := createTestWishService(t)
	ctx := context.Background()
	txRepo := mockRepo.NewMockWishRepository(t)
	nameKey := strings.Repeat("k", 120)

	fx.expectTransaction(t, txRepo)
	txRepo.EXPECT().FindWishByID(ctx, "inv-1_"+nameKey).Return(nil, repository.ErrWishNotFound)
	txRepo.EXPECT().CreateWish(ctx, mock.Anything).Return(nil)
	fx.cache.EXPECT().Invalidate(mock.Anything, "inv-1").Return(nil)
	fx.publisher.EXPECT().PublishWishPosted(mock.Anything, mock.Anything).Return(nil)
	fx.metrics.EXPECT().ObserveSubmission(service.OutcomeCreated).Return()

	session, err := fx.service.SubmitWish(ctx, &usecase.WishDraft{
		InvitationID: "inv-1",
		Name:         "Ana",
		NameKey:      " " + nameKey + " ",
		Message:      "Hi",
	})
	require.NoError(t, err)
	assert.Equal(t, nameKey, session.Wish.NameKey)
}

func TestWishService_SubmitWish_WithoutMetrics(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewWishService(WishServiceParams{
		TxManager: txManager,
		WishRepo:  mockRepo.NewMockWishRepository(t),
		Cache:     mockSvc.NewMockWishCache(t),
		Publisher: mockSvc.NewMockEventPublisher(t),
		Logger:    newDiscardLogger(),
	})

	_, err := svc.SubmitWish(context.Background(), &usecase.WishDraft{InvitationID: "inv-1"})
	_, ok := errors.AsType[*domainerrors.ValidationError](err)
	assert.True(t, ok)
}

func TestWishService_ListWishes_SortsAndDeduplicates(t *testing.T) {
	fx := createTestWishService(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	older := &entity.Wish{ID: "a", InvitationID: "inv-1", Name: "Ana", Message: "old", CreatedAt: base}
	newer := &entity.Wish{ID: "b", InvitationID: "inv-1", Name: "ana ", NameKey: "ana", Message: "new", CreatedAt: base.Add(time.Hour)}
	bruno := &entity.Wish{ID: "c", InvitationID: "inv-1", Name: "Bruno", NameKey: "bruno", Message: "hey", CreatedAt: base.Add(30 * time.Minute)}
	undated := &entity.Wish{ID: "d", InvitationID: "inv-1", Name: "Carla", NameKey: "carla", Message: "no date"}
	emptyKeyA := &entity.Wish{ID: "e", InvitationID: "inv-1", Name: "!!!", Message: "one", CreatedAt: base.Add(-time.Hour)}
	emptyKeyB := &entity.Wish{ID: "f", InvitationID: "inv-1", Name: "???", Message: "two", CreatedAt: base.Add(-2 * time.Hour)}

	expected := []*entity.Wish{newer, bruno, emptyKeyA, emptyKeyB, undated}

	fx.cache.EXPECT().GetWishes(ctx, "inv-1").Return(nil, false, nil)
	fx.cache.EXPECT().Generation(ctx, "inv-1").Return(int64(3), nil)
	fx.wishRepo.EXPECT().
		FindWishesByInvitation(ctx, "inv-1").
		Return([]*entity.Wish{undated, older, emptyKeyB, bruno, newer, emptyKeyA}, nil)
	fx.cache.EXPECT().SetWishes(ctx, "inv-1", int64(3), expected).Return(nil)

	wishes, err := fx.service.ListWishes(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, expected, wishes)
}

func TestWishService_ListWishes_CacheHit(t *testing.T) {
	fx := createTestWishService(t)
	ctx := context.Background()
	cached := []*entity.Wish{{ID: "inv-1_ana", InvitationID: "inv-1", Name: "Ana", NameKey: "ana"}}

	fx.cache.EXPECT().GetWishes(ctx, "inv-1").Return(cached, true, nil)

	wishes, err := fx.service.ListWishes(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, cached, wishes)
}

func TestWishService_ListWishes_CacheErrorFallsBackToStore(t *testing.T) {
	fx := createTestWishService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetWishes(ctx, "inv-1").Return(nil, false, errors.New("redis down"))
	fx.cache.EXPECT().Generation(ctx, "inv-1").Return(int64(0), nil)
	fx.wishRepo.EXPECT().FindWishesByInvitation(ctx, "inv-1").Return([]*entity.Wish{}, nil)
	fx.cache.EXPECT().SetWishes(ctx, "inv-1", int64(0), []*entity.Wish{}).Return(errors.New("redis down"))

	wishes, err := fx.service.ListWishes(ctx, "inv-1")
	require.NoError(t, err)
	assert.Empty(t, wishes)
}

func TestWishService_ListWishes_GenerationUnreadableSkipsFill(t *testing.T) {
	fx := createTestWishService(t)
	ctx := context.Background()
	stored := []*entity.Wish{{ID: "inv-1_ana", InvitationID: "inv-1", Name: "Ana", NameKey: "ana"}}

	fx.cache.EXPECT().GetWishes(ctx, "inv-1").Return(nil, false, nil)
	fx.cache.EXPECT().Generation(ctx, "inv-1").Return(int64(0), errors.New("redis down"))
	fx.wishRepo.EXPECT().FindWishesByInvitation(ctx, "inv-1").Return(stored, nil)

	wishes, err := fx.service.ListWishes(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, stored, wishes)
	fx.cache.AssertNotCalled(t, "SetWishes", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWishService_ListWishes_MissingInvitation(t *testing.T) {
	fx := createTestWishService(t)

	_, err := fx.service.ListWishes(context.Background(), "   ")

	validationErr, ok := errors.AsType[*domainerrors.ValidationError](err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.MsgMissingInvitationID, validationErr.Message())
}

func TestWishService_ListWishes_StoreFailure(t *testing.T) {
	fx := createTestWishService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetWishes(ctx, "inv-1").Return(nil, false, nil)
	fx.cache.EXPECT().Generation(ctx, "inv-1").Return(int64(1), nil)
	fx.wishRepo.EXPECT().FindWishesByInvitation(ctx, "inv-1").Return(nil, errors.New("timeout"))

	_, err := fx.service.ListWishes(ctx, "inv-1")

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
}

func TestWishService_FindWish(t *testing.T) {
	ctx := context.Background()
	existing := &entity.Wish{ID: "inv-1_ana_maria", InvitationID: "inv-1", Name: "Ana Maria", NameKey: "ana_maria"}

	t.Run("found by normalized key", func(t *testing.T) {
		fx := createTestWishService(t)
		fx.wishRepo.EXPECT().FindWishByID(ctx, "inv-1_ana_maria").Return(existing, nil)

		wish, err := fx.service.FindWish(ctx, "inv-1", "  ANA maria ")
		require.NoError(t, err)
		assert.Same(t, existing, wish)
	})

	t.Run("absent", func(t *testing.T) {
		fx := createTestWishService(t)
		fx.wishRepo.EXPECT().FindWishByID(ctx, "inv-1_bruno").Return(nil, repository.ErrWishNotFound)

		wish, err := fx.service.FindWish(ctx, "inv-1", "bruno")
		require.NoError(t, err)
		assert.Nil(t, wish)
	})

	t.Run("key normalizes to empty", func(t *testing.T) {
		fx := createTestWishService(t)

		wish, err := fx.service.FindWish(ctx, "inv-1", "***")
		require.NoError(t, err)
		assert.Nil(t, wish)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestWishService(t)
		fx.wishRepo.EXPECT().FindWishByID(ctx, "inv-1_bruno").Return(nil, errors.New("timeout"))

		_, err := fx.service.FindWish(ctx, "inv-1", "bruno")
		require.Error(t, err)
	})
}

func TestWishService_ResolveGuest(t *testing.T) {
	ctx := context.Background()

	t.Run("not eligible without a name", func(t *testing.T) {
		fx := createTestWishService(t)

		session, err := fx.service.ResolveGuest(ctx, "inv-1", " ")
		require.NoError(t, err)
		assert.Equal(t, entity.GuestStateNotEligible, session.State)
	})

	t.Run("eligible", func(t *testing.T) {
		fx := createTestWishService(t)
		fx.wishRepo.EXPECT().FindWishByID(ctx, "inv-1_ana").Return(nil, repository.ErrWishNotFound)

		session, err := fx.service.ResolveGuest(ctx, "inv-1", "Ana")
		require.NoError(t, err)
		assert.Equal(t, entity.GuestStateEligible, session.State)
		assert.True(t, session.CanSubmit())
	})

	t.Run("conflict when already posted", func(t *testing.T) {
		fx := createTestWishService(t)
		existing := &entity.Wish{ID: "inv-1_ana", InvitationID: "inv-1", Name: "Ana", NameKey: "ana"}
		fx.wishRepo.EXPECT().FindWishByID(ctx, "inv-1_ana").Return(existing, nil)

		session, err := fx.service.ResolveGuest(ctx, "inv-1", "ana")
		require.NoError(t, err)
		assert.Equal(t, entity.GuestStateConflict, session.State)
		assert.Same(t, existing, session.Wish)
	})
}
