package handlers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBookingRequest() CreateBookingRequest {
	child := uuid.New().String()
	sitter := uuid.New().String()
	rate := 25.00
	return CreateBookingRequest{
		ChildID:      &child,
		BabysitterID: &sitter,
		StartDate:    "2025-06-01T18:00:00Z",
		EndDate:      "2025-06-01T22:00:00Z",
		HourlyRate:   &rate,
	}
}

func TestCreateBookingRequestValidation(t *testing.T) {
	req := validBookingRequest()
	require.NoError(t, validate.Struct(req))

	missingStart := validBookingRequest()
	missingStart.StartDate = ""
	assert.Error(t, validate.Struct(missingStart))

	badDate := validBookingRequest()
	badDate.EndDate = "tomorrow evening"
	assert.Error(t, validate.Struct(badDate))

	badChild := validBookingRequest()
	notUUID := "12345"
	badChild.ChildID = &notUUID
	assert.Error(t, validate.Struct(badChild))

	zeroRate := validBookingRequest()
	*zeroRate.HourlyRate = 0
	assert.NoError(t, validate.Struct(zeroRate), "a zero hourly rate is a valid rate")

	missingRate := validBookingRequest()
	missingRate.HourlyRate = nil
	assert.Error(t, validate.Struct(missingRate))

	negativeRate := validBookingRequest()
	*negativeRate.HourlyRate = -1
	assert.Error(t, validate.Struct(negativeRate))

	optionalRefsOmitted := validBookingRequest()
	optionalRefsOmitted.ChildID = nil
	optionalRefsOmitted.BabysitterID = nil
	assert.NoError(t, validate.Struct(optionalRefsOmitted))
}

func TestNormalizePagination(t *testing.T) {
	page, limit := normalizePagination(3, 25)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	page, limit = normalizePagination(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = normalizePagination(-2, -5)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestReviewRequestValidation(t *testing.T) {
	comment := "Wonderful with the kids."
	require.NoError(t, validate.Struct(ReviewRequest{Rating: 5, Comment: &comment}))
	require.NoError(t, validate.Struct(ReviewRequest{Rating: 1}))

	assert.Error(t, validate.Struct(ReviewRequest{Rating: 0}), "rating is required and at least 1")
	assert.Error(t, validate.Struct(ReviewRequest{Rating: 6}))
	assert.Error(t, validate.Struct(ReviewRequest{Rating: -3}))
}

func TestRegisterRequestValidation(t *testing.T) {
	valid := RegisterRequest{
		Email:     "jane@example.com",
		Password:  "secret123",
		FirstName: "Jane",
		Role:      "PARENT",
	}
	require.NoError(t, validate.Struct(valid))

	sitter := valid
	sitter.Role = "BABYSITTER"
	assert.NoError(t, validate.Struct(sitter))

	adminNotAllowed := valid
	adminNotAllowed.Role = "ADMIN"
	assert.Error(t, validate.Struct(adminNotAllowed), "admins are seeded, not registered")

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, validate.Struct(badEmail))

	shortPassword := valid
	shortPassword.Password = "abc"
	assert.Error(t, validate.Struct(shortPassword))
}

func TestChildRequestValidation(t *testing.T) {
	valid := ChildRequest{
		Name:        "Sam",
		DateOfBirth: "2019-03-14",
		Gender:      "M",
	}
	require.NoError(t, validate.Struct(valid))

	noGender := valid
	noGender.Gender = ""
	assert.NoError(t, validate.Struct(noGender))

	badGender := valid
	badGender.Gender = "X"
	assert.Error(t, validate.Struct(badGender))

	badDOB := valid
	badDOB.DateOfBirth = "14/03/2019"
	assert.Error(t, validate.Struct(badDOB))
}
