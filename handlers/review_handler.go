package handlers

import (
	"errors"

	"github.com/anjiri1684/baby_ease/database"
	"github.com/anjiri1684/baby_ease/middleware"
	"github.com/anjiri1684/baby_ease/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReviewRequest struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

var (
	errBookingNotFound = errors.New("booking not found")
	errNotCompleted    = errors.New("reviews can only be submitted for completed bookings")
	errNoBabysitter    = errors.New("this booking has no babysitter to review")
	errDuplicateReview = errors.New("a review for this booking has already been submitted")
)

// CreateReview records the parent's review of the babysitter for one
// completed booking. One review per booking; the unique index backs up the
// in-transaction check.
func CreateReview(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	bookingID := c.Params("bookingId")

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	profile, err := EnsureParentProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load parent profile"})
	}

	var newReview models.BabysitterReview
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.BabysitterRequest
		if err := tx.Where("id = ? AND parent_id = ?", bookingID, profile.ID).First(&booking).Error; err != nil {
			return errBookingNotFound
		}
		if booking.Status != models.StatusCompleted {
			return errNotCompleted
		}
		if booking.BabysitterID == nil {
			return errNoBabysitter
		}

		var existing models.BabysitterReview
		if err := tx.Where("booking_id = ?", booking.ID).First(&existing).Error; err == nil {
			return errDuplicateReview
		}

		newReview = models.BabysitterReview{
			BookingID:    booking.ID,
			ParentID:     profile.ID,
			BabysitterID: *booking.BabysitterID,
			Rating:       req.Rating,
			Comment:      req.Comment,
		}
		return tx.Create(&newReview).Error
	})

	if err != nil {
		switch {
		case errors.Is(err, errBookingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, errDuplicateReview), errors.Is(err, gorm.ErrDuplicatedKey):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": errDuplicateReview.Error()})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(newReview)
}

// GetMyReviews lists reviews the calling parent has written.
func GetMyReviews(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	profile, err := EnsureParentProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load parent profile"})
	}

	reviews := []models.BabysitterReview{}
	database.DB.
		Preload("Babysitter").
		Where("parent_id = ?", profile.ID).
		Order("created_at desc").
		Find(&reviews)

	return c.JSON(reviews)
}
