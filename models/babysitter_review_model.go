package models

import (
	"time"

	"github.com/google/uuid"
)

type BabysitterReview struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_review_booking_parent" json:"booking_id"`
	Booking   BabysitterRequest `gorm:"foreignkey:BookingID;constraint:OnDelete:CASCADE" json:"booking,omitempty"`

	ParentID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_review_booking_parent" json:"parent_id"`
	Parent   ParentProfile `gorm:"foreignkey:ParentID;constraint:OnDelete:CASCADE" json:"parent,omitempty"`

	BabysitterID uuid.UUID `gorm:"type:uuid;not null" json:"babysitter_id"`
	Babysitter   User      `gorm:"foreignkey:BabysitterID;constraint:OnDelete:CASCADE" json:"babysitter,omitempty"`

	Rating  int     `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment *string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
