package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile holds the free-form profile every account carries regardless of
// role. Parent-specific data lives on ParentProfile.
type UserProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;unique" json:"user_id"`
	User   User      `gorm:"foreignkey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url"`
	Address           *string `gorm:"size:255" json:"address"`
	Bio               *string `gorm:"type:text" json:"bio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
