// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

const (
	MaxNameLength    = 80
	MaxNameKeyLength = 120
	MaxMessageLength = 800
)

// Wish is a guestbook entry left by a guest on an invitation.
type Wish struct {
	ID           string    `json:"id"`                 // Record id, invitationId + "_" + nameKey for new records.
	InvitationID string    `json:"invitation_id"`      // The invitation the wish belongs to.
	Name         string    `json:"name"`               // Display name as typed by the guest.
	NameKey      string    `json:"name_key,omitempty"` // Normalized name, empty on legacy records.
	Message      string    `json:"message"`            // Free-text message.
	CreatedAt    time.Time `json:"created_at"`         // Set once by the server, zero on legacy records.
}

// DedupKey returns the key used to collapse duplicate entries at read time.
// Legacy records without a stored nameKey fall back to the normalized name.
func (w *Wish) DedupKey() string {
	if w.NameKey != "" {
		return w.NameKey
	}

	return NormalizeNameKey(w.Name)
}

// NormalizeNameKey lowercases and trims the input, then collapses every run of
// characters outside [a-z0-9] into a single underscore. The result never starts
// or ends with an underscore and may be empty.
func NormalizeNameKey(input string) string {
	lowered := strings.ToLower(strings.TrimSpace(input))

	var b strings.Builder
	b.Grow(len(lowered))

	pendingSep := false
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)

			continue
		}
		pendingSep = true
	}

	return b.String()
}

// WishRecordID derives the deterministic record id guarding one wish per guest.
func WishRecordID(invitationID, nameKey string) string {
	return invitationID + "_" + nameKey
}
