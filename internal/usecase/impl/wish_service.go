package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "guestbook/internal/delivery/context"
	"guestbook/internal/domain/entity"
	domainerrors "guestbook/internal/domain/errors"
	"guestbook/internal/domain/lifecycle"
	"guestbook/internal/domain/repository"
	"guestbook/internal/domain/service"
	"guestbook/internal/errors"
	"guestbook/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type wishService struct {
	txManager repository.TransactionManager
	wishRepo  repository.WishRepository
	cache     service.WishCache
	publisher service.EventPublisher
	metrics   service.WishMetrics
	logger    *slog.Logger
	validate  *validator.Validate
	now       func() time.Time
}

// WishServiceParams holds dependencies for WishService, injected by Fx.
type WishServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	WishRepo  repository.WishRepository
	Cache     service.WishCache
	Publisher service.EventPublisher
	Metrics   service.WishMetrics `optional:"true"`
	Logger    *slog.Logger
}

// wishRules carries the trimmed draft through the length checks. The key is
// checked as submitted; normalizing never makes it longer.
type wishRules struct {
	Name    string `validate:"max=80"`
	NameKey string `validate:"max=120"`
	Message string `validate:"max=800"`
}

type lengthRule struct {
	field   string
	message string
}

var lengthRules = map[string]lengthRule{
	"Name":    {field: "name", message: domainerrors.MsgNameTooLong},
	"NameKey": {field: "nameKey", message: domainerrors.MsgNameKeyTooLong},
	"Message": {field: "message", message: domainerrors.MsgMessageTooLong},
}

// NewWishService creates a new wish service instance
func NewWishService(params WishServiceParams) usecase.WishUsecase {
	return &wishService{
		txManager: params.TxManager,
		wishRepo:  params.WishRepo,
		cache:     params.Cache,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *wishService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SubmitWish creates the wish at its deterministic record id unless one exists.
// The returned session is Posted; a conflict or store failure moves it to
// Conflict or back to Eligible before the error is returned.
func (s *wishService) SubmitWish(ctx context.Context, draft *usecase.WishDraft) (*entity.GuestSession, error) {
	wish, err := s.prepareWish(draft)
	if err != nil {
		s.observe(service.OutcomeInvalid)

		return nil, err
	}

	session := entity.NewGuestSession(wish.InvitationID, wish.NameKey)
	session.GuestName = wish.Name
	if err := session.Submit(); err != nil {
		return nil, errors.WithStack(err)
	}

	// Firestore may run the callback more than once, so existing is reset per attempt.
	var existing *entity.Wish
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		existing = nil
		repo := factory.NewWishRepository()

		found, err := repo.FindWishByID(ctx, wish.ID)
		if err == nil {
			existing = found

			return repository.ErrDuplicateWish
		}
		if !errors.Is(err, repository.ErrWishNotFound) {
			return err
		}

		return repo.CreateWish(ctx, wish)
	})

	if errors.Is(err, repository.ErrDuplicateWish) {
		if existing == nil {
			existing = s.findExisting(ctx, wish.ID)
		}
		if err := session.Conflicted(existing); err != nil {
			return nil, errors.WithStack(err)
		}
		s.observe(service.OutcomeConflict)
		s.log(ctx).Info("Wish already posted",
			slog.String("wish_id", wish.ID),
			slog.Bool("existing_found", existing != nil),
		)

		return nil, domainerrors.NewWishConflictError(session.Wish)
	}
	if err != nil {
		if err := session.Failed(); err != nil {
			return nil, errors.WithStack(err)
		}
		s.observe(service.OutcomeError)
		s.log(ctx).Error("Failed to submit wish",
			slog.String("wish_id", wish.ID),
			slog.String("guest_state", string(session.State)),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to submit wish")
	}

	if err := session.Posted(wish); err != nil {
		return nil, errors.WithStack(err)
	}
	s.observe(service.OutcomeCreated)
	s.log(ctx).Info("Wish posted",
		slog.String("wish_id", wish.ID),
		slog.String("invitation_id", wish.InvitationID),
	)
	s.afterCommit(ctx, wish)

	return session, nil
}

// prepareWish validates the draft without touching the store and builds the wish to create.
func (s *wishService) prepareWish(draft *usecase.WishDraft) (*entity.Wish, error) {
	if draft == nil {
		return nil, domainerrors.NewValidationError("", domainerrors.MsgMissingFields)
	}

	invitationID := strings.TrimSpace(draft.InvitationID)
	name := strings.TrimSpace(draft.Name)
	message := strings.TrimSpace(draft.Message)
	if invitationID == "" || name == "" || message == "" {
		return nil, domainerrors.NewValidationError("", domainerrors.MsgMissingFields)
	}

	// Direct callers may omit the key; the HTTP route requires it.
	rawKey := strings.TrimSpace(draft.NameKey)
	if rawKey == "" {
		rawKey = name
	}
	nameKey := entity.NormalizeNameKey(rawKey)

	err := s.validate.Struct(&wishRules{Name: name, NameKey: rawKey, Message: message})
	if validationErrs, ok := errors.AsType[validator.ValidationErrors](err); ok && len(validationErrs) > 0 {
		rule := lengthRules[validationErrs[0].Field()]

		return nil, domainerrors.NewValidationError(rule.field, rule.message)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate wish")
	}

	if nameKey == "" {
		return nil, domainerrors.NewValidationError("nameKey", domainerrors.MsgInvalidNameKey)
	}

	return &entity.Wish{
		ID:           entity.WishRecordID(invitationID, nameKey),
		InvitationID: invitationID,
		Name:         name,
		NameKey:      nameKey,
		Message:      message,
		CreatedAt:    s.now().UTC().Truncate(time.Millisecond),
	}, nil
}

// findExisting fetches the conflicting wish after the transaction gave up on it.
func (s *wishService) findExisting(ctx context.Context, id string) *entity.Wish {
	wish, err := s.wishRepo.FindWishByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrWishNotFound) {
			s.log(ctx).Warn("Failed to fetch conflicting wish",
				slog.String("wish_id", id),
				slog.Any("error", err),
			)
		}

		return nil
	}

	return wish
}

// afterCommit runs the side effects of a committed wish. Their failures are logged only.
func (s *wishService) afterCommit(ctx context.Context, wish *entity.Wish) {
	sideCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := s.cache.Invalidate(sideCtx, wish.InvitationID); err != nil {
		s.log(ctx).Warn("Failed to invalidate wish cache",
			slog.String("invitation_id", wish.InvitationID),
			slog.Any("error", err),
		)
	}

	event := &service.WishPostedEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.NewString(),
		WishID:       wish.ID,
		InvitationID: wish.InvitationID,
		Name:         wish.Name,
		NameKey:      wish.NameKey,
		Message:      wish.Message,
		CreatedAt:    wish.CreatedAt,
	}
	if err := s.publisher.PublishWishPosted(sideCtx, event); err != nil {
		s.log(ctx).Warn("Failed to publish wish posted event",
			slog.String("wish_id", wish.ID),
			slog.Any("error", err),
		)
	}
}

func (s *wishService) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveSubmission(outcome)
	}
}

// ListWishes returns the wishes of an invitation newest-first, one per guest.
func (s *wishService) ListWishes(ctx context.Context, invitationID string) ([]*entity.Wish, error) {
	invitationID = strings.TrimSpace(invitationID)
	if invitationID == "" {
		return nil, domainerrors.NewValidationError("invitationId", domainerrors.MsgMissingInvitationID)
	}

	cached, ok, err := s.cache.GetWishes(ctx, invitationID)
	if err != nil {
		s.log(ctx).Warn("Failed to read wish cache",
			slog.String("invitation_id", invitationID),
			slog.Any("error", err),
		)
	}
	if ok {
		return cached, nil
	}

	// Read before the store so a fill racing a submit's invalidation is dropped.
	generation, genErr := s.cache.Generation(ctx, invitationID)
	if genErr != nil {
		s.log(ctx).Warn("Failed to read wish cache generation",
			slog.String("invitation_id", invitationID),
			slog.Any("error", genErr),
		)
	}

	wishes, err := s.wishRepo.FindWishesByInvitation(ctx, invitationID)
	if err != nil {
		s.log(ctx).Error("Failed to list wishes",
			slog.String("invitation_id", invitationID),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list wishes")
	}

	wishes = dedupByGuest(sortNewestFirst(wishes))

	if genErr == nil {
		if err := s.cache.SetWishes(ctx, invitationID, generation, wishes); err != nil {
			s.log(ctx).Warn("Failed to fill wish cache",
				slog.String("invitation_id", invitationID),
				slog.Any("error", err),
			)
		}
	}

	return wishes, nil
}

// FindWish looks up the record the guard would report as a conflict.
func (s *wishService) FindWish(ctx context.Context, invitationID, nameKey string) (*entity.Wish, error) {
	invitationID = strings.TrimSpace(invitationID)
	if invitationID == "" {
		return nil, domainerrors.NewValidationError("invitationId", domainerrors.MsgMissingInvitationID)
	}

	key := entity.NormalizeNameKey(nameKey)
	if key == "" {
		return nil, nil
	}

	wish, err := s.wishRepo.FindWishByID(ctx, entity.WishRecordID(invitationID, key))
	if err != nil {
		if errors.Is(err, repository.ErrWishNotFound) {
			return nil, nil
		}
		s.log(ctx).Error("Failed to find wish",
			slog.String("invitation_id", invitationID),
			slog.String("name_key", key),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find wish")
	}

	return wish, nil
}

// ResolveGuest runs the point lookup that gates the submission form.
func (s *wishService) ResolveGuest(ctx context.Context, invitationID, guestName string) (*entity.GuestSession, error) {
	session := entity.NewGuestSession(strings.TrimSpace(invitationID), guestName)
	if session.State == entity.GuestStateNotEligible {
		return session, nil
	}

	wish, err := s.FindWish(ctx, session.InvitationID, session.NameKey)
	if err != nil {
		return nil, err
	}
	if wish != nil {
		if err := session.Conflicted(wish); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	return session, nil
}

// sortNewestFirst orders by createdAt descending; records without createdAt go last.
// The store returns wishes unordered, so this sort is the only ordering guarantee.
func sortNewestFirst(wishes []*entity.Wish) []*entity.Wish {
	slices.SortStableFunc(wishes, func(a, b *entity.Wish) int {
		switch {
		case a.CreatedAt.IsZero() && b.CreatedAt.IsZero():
			return 0
		case a.CreatedAt.IsZero():
			return 1
		case b.CreatedAt.IsZero():
			return -1
		}

		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})

	return wishes
}

// dedupByGuest keeps the first wish per guest key. Wishes whose key is empty
// are always kept.
func dedupByGuest(wishes []*entity.Wish) []*entity.Wish {
	seen := make(map[string]struct{}, len(wishes))
	result := make([]*entity.Wish, 0, len(wishes))

	for _, wish := range wishes {
		key := wish.DedupKey()
		if key != "" {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		result = append(result, wish)
	}

	return result
}
