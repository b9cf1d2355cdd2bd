// Package firestore stores wishes in a Cloud Firestore collection keyed by record id.
package firestore

import (
	"time"

	"guestbook/internal/domain/entity"

	"cloud.google.com/go/firestore"
)

// wishDocument is the Firestore shape of a wish. The document id is the record id.
type wishDocument struct {
	InvitationID string     `firestore:"invitationId"`
	Name         string     `firestore:"name"`
	NameKey      string     `firestore:"nameKey,omitempty"`
	Message      string     `firestore:"message"`
	CreatedAt    *time.Time `firestore:"createdAt,omitempty"`
}

func toWishDomain(snap *firestore.DocumentSnapshot) (*entity.Wish, error) {
	var doc wishDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	wish := &entity.Wish{
		ID:           snap.Ref.ID,
		InvitationID: doc.InvitationID,
		Name:         doc.Name,
		NameKey:      doc.NameKey,
		Message:      doc.Message,
	}
	if doc.CreatedAt != nil {
		wish.CreatedAt = doc.CreatedAt.UTC()
	}

	return wish, nil
}

func fromWishDomain(wish *entity.Wish) *wishDocument {
	doc := &wishDocument{
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
