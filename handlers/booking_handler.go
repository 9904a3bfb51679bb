package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/anjiri1684/baby_ease/database"
	"github.com/anjiri1684/baby_ease/middleware"
	"github.com/anjiri1684/baby_ease/models"
	"github.com/anjiri1684/baby_ease/notifications"
	"github.com/anjiri1684/baby_ease/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateBookingRequest struct {
	ChildID             *string  `json:"child_id" validate:"omitempty,uuid"`
	BabysitterID        *string  `json:"babysitter_id" validate:"omitempty,uuid"`
	StartDate           string   `json:"start_date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndDate             string   `json:"end_date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	HourlyRate          *float64 `json:"hourly_rate" validate:"required,gte=0"`
	SpecialRequirements *string  `json:"special_requirements"`
}

func CreateBooking(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	startDate, _ := time.Parse(time.RFC3339, req.StartDate)
	endDate, _ := time.Parse(time.RFC3339, req.EndDate)

	profile, err := EnsureParentProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load parent profile"})
	}

	var booking models.BabysitterRequest
	var sitter *models.User
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var childID *uuid.UUID
		if req.ChildID != nil {
			parsed, _ := uuid.Parse(*req.ChildID)
			var child models.ChildProfile
			if err := tx.Where("id = ? AND parent_id = ?", parsed, profile.ID).First(&child).Error; err != nil {
				return errors.New("child profile not found")
			}
			childID = &child.ID
		}

		var sitterID *uuid.UUID
		if req.BabysitterID != nil {
			parsed, _ := uuid.Parse(*req.BabysitterID)
			var user models.User
			if err := tx.Where("id = ? AND role = ? AND is_active = ?", parsed, models.RoleBabysitter, true).First(&user).Error; err != nil {
				return errors.New("babysitter not found")
			}
			sitter = &user
			sitterID = &user.ID
		}

		booking = models.BabysitterRequest{
			ParentID:            profile.ID,
			ChildID:             childID,
			BabysitterID:        sitterID,
			Status:              models.StatusPending,
			StartDate:           startDate,
			EndDate:             endDate,
			HourlyRate:          *req.HourlyRate,
			SpecialRequirements: req.SpecialRequirements,
		}
		if err := booking.ValidateWindow(); err != nil {
			return err
		}
		booking.CalculateTotalCost()

		reference, err := utils.GenerateUniqueBookingReference(tx)
		if err != nil {
			return errors.New("failed to generate booking reference")
		}
		booking.Reference = reference

		return tx.Create(&booking).Error
	})

	if err != nil {
		switch err.Error() {
		case "child profile not found", "babysitter not found":
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	if sitter != nil {
		go notifications.SendEmail(
			sitter.FullName(),
			sitter.Email,
			"New Babysitting Request",
			fmt.Sprintf("<h1>New Request</h1><p>A parent has sent you a babysitting request (%s) from %s to %s. Log in to accept or decline.</p>",
				booking.Reference,
				booking.StartDate.Format(time.RFC1123),
				booking.EndDate.Format(time.RFC1123)),
		)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetMyBookings lists the caller's bookings. The parent scope filter is
// applied before any status or child filter.
func GetMyBookings(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	profile, err := EnsureParentProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load parent profile"})
	}

	query := database.DB.
		Preload("Child").
		Preload("Babysitter").
		Where("parent_id = ?", profile.ID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if childID := c.Query("child"); childID != "" {
		query = query.Where("child_id = ?", childID)
	}

	bookings := []models.BabysitterRequest{}
	query.Order("created_at desc").Find(&bookings)

	return c.JSON(bookings)
}

func GetBooking(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	bookingID := c.Params("bookingId")

	profile, err := EnsureParentProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load parent profile"})
	}

	var booking models.BabysitterRequest
	if err := database.DB.
		Preload("Child").
		Preload("Babysitter").
		Where("id = ? AND parent_id = ?", bookingID, profile.ID).
		First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	return c.JSON(booking)
}

// CancelBooking moves a booking to CANCELLED. The row is locked and the guard
// re-checked inside the transaction so a concurrent accept cannot be
// overwritten silently.
func CancelBooking(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	bookingID := c.Params("bookingId")

	profile, err := EnsureParentProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load parent profile"})
	}

	var booking models.BabysitterRequest
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND parent_id = ?", bookingID, profile.ID).
			First(&booking).Error; err != nil {
			return gorm.ErrRecordNotFound
		}
		if err := booking.Transition(models.StatusCancelled); err != nil {
			return err
		}
		return tx.Save(&booking).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if booking.BabysitterID != nil {
		var sitter models.User
		if err := database.DB.First(&sitter, "id = ?", booking.BabysitterID).Error; err == nil {
			go notifications.SendEmail(
				sitter.FullName(),
				sitter.Email,
				"Booking Cancelled",
				fmt.Sprintf("<h1>Booking Cancelled</h1><p>The parent has cancelled booking %s.</p>", booking.Reference),
			)
		}
	}

	return c.JSON(booking)
}

func GetUpcomingBookings(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	profile, err := EnsureParentProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load parent profile"})
	}

	bookings := []models.BabysitterRequest{}
	database.DB.
		Preload("Child").
		Preload("Babysitter").
		Where("parent_id = ?", profile.ID).
		Where("start_date > ? AND status IN ?", time.Now(), []models.RequestStatus{models.StatusAccepted, models.StatusPending}).
		Order("start_date asc").
		Find(&bookings)

	return c.JSON(bookings)
}

func GetPastBookings(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	profile, err := EnsureParentProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load parent profile"})
	}

	bookings := []models.BabysitterRequest{}
	database.DB.
		Preload("Child").
		Preload("Babysitter").
		Where("parent_id = ?", profile.ID).
		Where("end_date < ?", time.Now()).
		Order("end_date desc").
		Find(&bookings)

	return c.JSON(bookings)
}

func GetBookingHistory(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	profile, err := EnsureParentProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load parent profile"})
	}

	query := database.DB.
		Preload("Child").
		Preload("Babysitter").
		Where("parent_id = ?", profile.ID).
		Where("status = ?", models.StatusCompleted)

	if childID := c.Query("child"); childID != "" {
		query = query.Where("child_id = ?", childID)
	}
	if sitterID := c.Query("babysitter"); sitterID != "" {
		query = query.Where("babysitter_id = ?", sitterID)
	}

	bookings := []models.BabysitterRequest{}
	query.Order("start_date desc").Find(&bookings)

	return c.JSON(bookings)
}
