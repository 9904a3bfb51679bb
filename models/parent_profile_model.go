package models

import (
	"time"

	"github.com/google/uuid"
)

type ParentProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;unique" json:"user_id"`
	User   User      `gorm:"foreignkey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`

	Bio               *string `gorm:"type:text" json:"bio"`
	Address           *string `gorm:"size:255" json:"address"`
	City              *string `gorm:"size:100" json:"city"`
	State             *string `gorm:"size:100" json:"state"`
	ZipCode           *string `gorm:"size:20" json:"zip_code"`
	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url"`

	// Verified is set by an admin only.
	Verified bool `gorm:"default:false" json:"verified"`

	AverageRating float64 `gorm:"type:numeric(3,2);default:0" json:"average_rating"`
	TotalRatings  uint    `gorm:"default:0" json:"total_ratings"`

	Children []ChildProfile `gorm:"foreignkey:ParentID" json:"children,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
