package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValidity(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleParent.IsValid())
	assert.True(t, RoleBabysitter.IsValid())

	assert.False(t, Role("").IsValid())
	assert.False(t, Role("parent").IsValid(), "roles are case sensitive")
	assert.False(t, Role("SUPERUSER").IsValid())
}

func TestUserRolePredicates(t *testing.T) {
	admin := User{Role: RoleAdmin}
	parent := User{Role: RoleParent}
	sitter := User{Role: RoleBabysitter}

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsParent())
	assert.False(t, admin.IsBabysitter())

	assert.True(t, parent.IsParent())
	assert.False(t, parent.IsAdmin())

	assert.True(t, sitter.IsBabysitter())
	assert.False(t, sitter.IsParent())
}

func TestUserFullName(t *testing.T) {
	last := "Doe"
	empty := ""

	assert.Equal(t, "Jane Doe", (&User{FirstName: "Jane", LastName: &last}).FullName())
	assert.Equal(t, "Jane", (&User{FirstName: "Jane"}).FullName())
	assert.Equal(t, "Jane", (&User{FirstName: "Jane", LastName: &empty}).FullName())
}

func TestGenderValidity(t *testing.T) {
	assert.True(t, GenderMale.IsValid())
	assert.True(t, GenderFemale.IsValid())
	assert.True(t, GenderOther.IsValid())
	assert.True(t, Gender("").IsValid(), "gender is optional")
	assert.False(t, Gender("X").IsValid())
}
