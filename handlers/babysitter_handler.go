package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/anjiri1684/baby_ease/database"
	"github.com/anjiri1684/baby_ease/middleware"
	"github.com/anjiri1684/baby_ease/models"
	"github.com/anjiri1684/baby_ease/notifications"
	"github.com/anjiri1684/baby_ease/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetIncomingRequests lists requests assigned to the calling babysitter,
// excluding finished ones. Scope filter first, status filter second.
func GetIncomingRequests(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	query := database.DB.
		Preload("Parent.User").
		Preload("Child").
		Where("babysitter_id = ?", identity.UserID).
		Where("status NOT IN ?", []models.RequestStatus{models.StatusCompleted, models.StatusCancelled})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	requests := []models.BabysitterRequest{}
	query.Order("created_at desc").Find(&requests)

	return c.JSON(requests)
}

var (
	errUnauthenticated = errors.New("no authenticated user on request")
	errNotAssigned     = errors.New("you are not the babysitter for this booking")
)

// applySitterTransition locks the booking row and applies one state-machine
// edge on behalf of the assigned babysitter. The caller maps the returned
// error onto an HTTP status.
func applySitterTransition(c *fiber.Ctx, target models.RequestStatus) (models.BabysitterRequest, error) {
	var booking models.BabysitterRequest

	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return booking, errUnauthenticated
	}
	bookingID := c.Params("bookingId")

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, "id = ?", bookingID).Error; err != nil {
			return gorm.ErrRecordNotFound
		}
		if booking.BabysitterID == nil || *booking.BabysitterID != identity.UserID {
			return errNotAssigned
		}
		if err := booking.Transition(target); err != nil {
			return err
		}
		return tx.Save(&booking).Error
	})

	return booking, err
}

func transitionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	case errors.Is(err, errNotAssigned):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
}

func notifyParent(booking models.BabysitterRequest, subject, body string) {
	var profile models.ParentProfile
	if err := database.DB.Preload("User").First(&profile, "id = ?", booking.ParentID).Error; err != nil {
		return
	}
	notifications.SendEmail(profile.User.FullName(), profile.User.Email, subject, body)
}

func AcceptRequest(c *fiber.Ctx) error {
	booking, err := applySitterTransition(c, models.StatusAccepted)
	if err != nil {
		return transitionError(c, err)
	}

	go notifyParent(booking, "Your Babysitting Request Was Accepted",
		fmt.Sprintf("<h1>Request Accepted</h1><p>Your babysitter has accepted booking %s.</p>", booking.Reference))

	return c.JSON(fiber.Map{"detail": "Request accepted successfully.", "booking": booking})
}

func RejectRequest(c *fiber.Ctx) error {
	booking, err := applySitterTransition(c, models.StatusRejected)
	if err != nil {
		return transitionError(c, err)
	}

	go notifyParent(booking, "Your Babysitting Request Was Declined",
		fmt.Sprintf("<h1>Request Declined</h1><p>Your babysitter has declined booking %s.</p>", booking.Reference))

	return c.JSON(fiber.Map{"detail": "Request rejected.", "booking": booking})
}

func CompleteBooking(c *fiber.Ctx) error {
	booking, err := applySitterTransition(c, models.StatusCompleted)
	if err != nil {
		return transitionError(c, err)
	}

	go notifyParent(booking, "Your Booking Is Complete",
		fmt.Sprintf("<h1>Booking Completed</h1><p>Booking %s has been marked as completed. You can now leave a review.</p>", booking.Reference))
	go services.GenerateBookingReceipt(booking)

	return c.JSON(fiber.Map{"detail": "Booking marked as completed.", "booking": booking})
}

// GetActiveBookings lists accepted bookings for the calling babysitter.
func GetActiveBookings(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	bookings := []models.BabysitterRequest{}
	database.DB.
		Preload("Parent.User").
		Preload("Child").
		Where("babysitter_id = ? AND status = ?", identity.UserID, models.StatusAccepted).
		Order("start_date asc").
		Find(&bookings)

	return c.JSON(bookings)
}

func GetSitterUpcomingBookings(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	bookings := []models.BabysitterRequest{}
	database.DB.
		Preload("Parent.User").
		Preload("Child").
		Where("babysitter_id = ? AND status = ?", identity.UserID, models.StatusAccepted).
		Where("start_date > ?", time.Now()).
		Order("start_date asc").
		Find(&bookings)

	return c.JSON(bookings)
}

func GetSitterPastBookings(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	bookings := []models.BabysitterRequest{}
	database.DB.
		Preload("Parent.User").
		Preload("Child").
		Where("babysitter_id = ?", identity.UserID).
		Where("end_date < ?", time.Now()).
		Order("end_date desc").
		Find(&bookings)

	return c.JSON(bookings)
}

func GetSitterHistory(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	query := database.DB.
		Preload("Parent.User").
		Preload("Child").
		Where("babysitter_id = ? AND status = ?", identity.UserID, models.StatusCompleted)

	if parentID := c.Query("parent"); parentID != "" {
		query = query.Where("parent_id = ?", parentID)
	}

	bookings := []models.BabysitterRequest{}
	query.Order("start_date desc").Find(&bookings)

	return c.JSON(bookings)
}

func GetSitterReviews(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	reviews := []models.BabysitterReview{}
	database.DB.
		Preload("Parent.User").
		Where("babysitter_id = ?", identity.UserID).
		Order("created_at desc").
		Find(&reviews)

	return c.JSON(reviews)
}

// ---- Babysitter directory (parent-facing) ----

type babysitterListing struct {
	User   models.User            `json:"user"`
	Rating services.RatingSummary `json:"rating"`
}

func ListBabysitters(c *fiber.Ctx) error {
	var sitters []models.User
	database.DB.
		Where("role = ? AND is_active = ?", models.RoleBabysitter, true).
		Order("first_name asc").
		Find(&sitters)

	listings := make([]babysitterListing, 0, len(sitters))
	for _, sitter := range sitters {
		summary, _ := services.BabysitterRatingSummary(database.DB, sitter.ID)
		listings = append(listings, babysitterListing{User: sitter, Rating: summary})
	}

	return c.JSON(listings)
}

func SearchBabysitters(c *fiber.Ctx) error {
	query := database.DB.
		Where("role = ? AND is_active = ?", models.RoleBabysitter, true)

	if name := c.Query("name"); name != "" {
		term := "%" + name + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ?", term, term)
	}
	if city := c.Query("city"); city != "" {
		// The profile keeps one free-form address line, so city matches
		// against it.
		term := "%" + city + "%"
		query = query.Where("id IN (?)", database.DB.
			Model(&models.UserProfile{}).
			Select("user_id").
			Where("address ILIKE ?", term))
	}

	var sitters []models.User
	query.Order("first_name asc").Find(&sitters)

	listings := make([]babysitterListing, 0, len(sitters))
	for _, sitter := range sitters {
		summary, _ := services.BabysitterRatingSummary(database.DB, sitter.ID)
		listings = append(listings, babysitterListing{User: sitter, Rating: summary})
	}

	return c.JSON(listings)
}

func GetBabysitter(c *fiber.Ctx) error {
	sitterID := c.Params("userId")

	var sitter models.User
	if err := database.DB.
		Where("id = ? AND role = ? AND is_active = ?", sitterID, models.RoleBabysitter, true).
		First(&sitter).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Babysitter not found"})
	}

	summary, _ := services.BabysitterRatingSummary(database.DB, sitter.ID)

	reviews := []models.BabysitterReview{}
	database.DB.
		Where("babysitter_id = ?", sitter.ID).
		Order("created_at desc").
		Limit(10).
		Find(&reviews)

	return c.JSON(fiber.Map{
		"user":           sitter,
		"rating":         summary,
		"recent_reviews": reviews,
	})
}
