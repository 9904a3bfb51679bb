package middleware

import (
	"testing"

	"github.com/anjiri1684/baby_ease/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityFromClaims(t *testing.T) {
	userID := uuid.New()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    "PARENT",
	}

	identity, err := IdentityFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, models.RoleParent, identity.Role)
}

func TestIdentityFromClaimsMissingUserID(t *testing.T) {
	_, err := IdentityFromClaims(jwt.MapClaims{"role": "PARENT"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user_id")
}

func TestIdentityFromClaimsMalformedUserID(t *testing.T) {
	_, err := IdentityFromClaims(jwt.MapClaims{"user_id": "not-a-uuid", "role": "ADMIN"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user_id")
}

func TestIdentityFromClaimsMissingRole(t *testing.T) {
	_, err := IdentityFromClaims(jwt.MapClaims{"user_id": uuid.New().String()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role")
}

func TestIdentityFromClaimsUnknownRole(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "SUPERVISOR",
	}
	_, err := IdentityFromClaims(claims)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role")
}

func TestIdentityFromClaimsRejectsLowercaseRole(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "babysitter",
	}
	_, err := IdentityFromClaims(claims)
	require.Error(t, err)
}
