// Package docstore stores wishes in a Go CDK document collection, which makes the
// store portable across in-memory, DynamoDB and Firestore backends.
package docstore

import (
	"time"

	"guestbook/internal/domain/entity"
)

// KeyField is the name of the collection's primary key field.
const KeyField = "id"

type wishDocument struct {
	ID           string     `docstore:"id"`
	InvitationID string     `docstore:"invitationId"`
	Name         string     `docstore:"name"`
	NameKey      string     `docstore:"nameKey"`
	Message      string     `docstore:"message"`
	CreatedAt    *time.Time `docstore:"createdAt"`
}

func (doc *wishDocument) toDomain() *entity.Wish {
	wish := &entity.Wish{
		ID:           doc.ID,
		InvitationID: doc.InvitationID,
		Name:         doc.Name,
		NameKey:      doc.NameKey,
		Message:      doc.Message,
	}
	if doc.CreatedAt != nil {
		wish.CreatedAt = doc.CreatedAt.UTC()
	}

	return wish
}

func fromWishDomain(wish *entity.Wish) *wishDocument {
	doc := &wishDocument{
		ID:           wish.ID,
		InvitationID: wish.InvitationID,
		Name:         wish.Name,
		NameKey:      wish.NameKey,
		Message:      wish.Message,
	}
	if !wish.CreatedAt.IsZero() {
		createdAt := wish.CreatedAt
		doc.CreatedAt = &createdAt
	}

	return doc
}
