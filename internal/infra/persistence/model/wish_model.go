package model

import (
	"time"
)

// WishModel is the GORM-specific struct for the 'wishes' table.
type WishModel struct {
	ID           string     `gorm:"type:varchar(512);primaryKey"`
	InvitationID string     `gorm:"type:varchar(256);not null;index:idx_wishes_on_invitation"`
	Name         string     `gorm:"type:varchar(80);not null"`
	NameKey      *string    `gorm:"type:varchar(120)"`
	Message      string     `gorm:"type:varchar(800);not null"`
	CreatedAt    *time.Time `gorm:"autoCreateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (WishModel) TableName() string {
	return "wishes"
}
