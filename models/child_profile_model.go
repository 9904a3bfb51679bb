package models

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, "":
		return true
	default:
		return false
	}
}

type ChildProfile struct {
	ID       uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ParentID uuid.UUID     `gorm:"type:uuid;not null" json:"parent_id"`
	Parent   ParentProfile `gorm:"foreignkey:ParentID;constraint:OnDelete:CASCADE" json:"-"`

	Name        string    `gorm:"size:100;not null" json:"name"`
	DateOfBirth time.Time `gorm:"not null" json:"date_of_birth"`
	Gender      Gender    `gorm:"size:1" json:"gender"`

	SpecialNeeds        *string `gorm:"type:text" json:"special_needs"`
	DietaryRestrictions *string `gorm:"type:text" json:"dietary_restrictions"`

	EmergencyContactName  *string `gorm:"size:100" json:"emergency_contact_name"`
	EmergencyContactPhone *string `gorm:"size:15" json:"emergency_contact_phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
