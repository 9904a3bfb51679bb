package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleParent     Role = "PARENT"
	RoleBabysitter Role = "BABYSITTER"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleParent, RoleBabysitter:
		return true
	default:
		return false
	}
}

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email       string    `gorm:"size:255;not null;unique" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	FirstName   string    `gorm:"size:30;not null" json:"first_name"`
	LastName    *string   `gorm:"size:30" json:"last_name"`
	PhoneNumber *string   `gorm:"size:15" json:"phone_number"`
	Role        Role      `gorm:"size:20;not null;default:'PARENT';check:role IN ('ADMIN','PARENT','BABYSITTER')" json:"role"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	ResetPasswordToken          *string    `gorm:"size:255;unique" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsParent() bool {
	return u.Role == RoleParent
}

func (u *User) IsBabysitter() bool {
	return u.Role == RoleBabysitter
}

func (u *User) FullName() string {
	if u.LastName != nil && *u.LastName != "" {
		return u.FirstName + " " + *u.LastName
	}
	return u.FirstName
}

// Identity is the authenticated principal resolved from the JWT by the
// boundary layer and passed into every scoped operation.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}
