// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"guestbook/internal/domain/entity"
	"guestbook/internal/domain/repository"
	"guestbook/internal/errors"
	"guestbook/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// wishRepository implements the domain.WishRepository interface.
type wishRepository struct {
	db *gorm.DB
}

// NewWishRepository is the constructor for wishRepository.
func NewWishRepository(db *gorm.DB) repository.WishRepository {
	return &wishRepository{db: db}
}

// FindWishByID retrieves a wish by its record id.
func (repo *wishRepository) FindWishByID(ctx context.Context, id string) (*entity.Wish, error) {
	var wishM model.WishModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&wishM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishNotFound
		}

		return nil, errors.Wrap(err, "failed to find wish by ID")
	}

	return toWishDomain(&wishM), nil
}

// CreateWish inserts the wish unless its id is taken. A concurrent insert of the
// same id waits on the primary key and then affects no rows.
func (repo *wishRepository) CreateWish(ctx context.Context, wish *entity.Wish) error {
	wishM := fromWishDomain(wish)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(wishM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateWish
		}

		return errors.Wrap(result.Error, "failed to create wish")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDuplicateWish
	}

	return nil
}

// FindWishesByInvitation retrieves every wish of an invitation.
func (repo *wishRepository) FindWishesByInvitation(ctx context.Context, invitationID string) ([]*entity.Wish, error) {
	var wishModels []*model.WishModel
	err := repo.db.WithContext(ctx).
		Where("invitation_id = ?", invitationID).
		Find(&wishModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find wishes by invitation")
	}

	wishes := make([]*entity.Wish, 0, len(wishModels))
	for _, wishM := range wishModels {
		wishes = append(wishes, toWishDomain(wishM))
	}

	return wishes, nil
}

func toWishDomain(data *model.WishModel) *entity.Wish {
	if data == nil {
		return nil
	}

	wish := &entity.Wish{
		ID:           data.ID,
		InvitationID: data.InvitationID,
		Name:         data.Name,
		Message:      data.Message,
	}
	if data.NameKey != nil {
		wish.NameKey = *data.NameKey
	}
	if data.CreatedAt != nil {
		wish.CreatedAt = data.CreatedAt.UTC()
	}

	return wish
}

func fromWishDomain(data *entity.Wish) *model.WishModel {
	if data == nil {
		return nil
	}

	wishM := &model.WishModel{
		ID:           data.ID,
		InvitationID: data.InvitationID,
		Name:         data.Name,
		Message:      data.Message,
	}
	if data.NameKey != "" {
		nameKey := data.NameKey
		wishM.NameKey = &nameKey
	}
	if !data.CreatedAt.IsZero() {
		createdAt := data.CreatedAt
		wishM.CreatedAt = &createdAt
	}

	return wishM
}
