package handlers

import (
	"github.com/anjiri1684/baby_ease/database"
	"github.com/anjiri1684/baby_ease/middleware"
	"github.com/anjiri1684/baby_ease/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnsureParentProfile loads the caller's parent profile, creating an empty one
// if it does not exist yet. Idempotent; called at the boundary before any
// operation that needs a guaranteed profile.
func EnsureParentProfile(db *gorm.DB, userID uuid.UUID) (models.ParentProfile, error) {
	var profile models.ParentProfile
	err := db.Where(models.ParentProfile{UserID: userID}).FirstOrCreate(&profile).Error
	return profile, err
}

func ensureUserProfile(db *gorm.DB, userID uuid.UUID) (models.UserProfile, error) {
	var profile models.UserProfile
	err := db.Where(models.UserProfile{UserID: userID}).FirstOrCreate(&profile).Error
	return profile, err
}

type UpdateProfileRequest struct {
	FirstName         *string `json:"first_name"`
	LastName          *string `json:"last_name"`
	PhoneNumber       *string `json:"phone_number"`
	Bio               *string `json:"bio"`
	Address           *string `json:"address"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

func GetMyProfile(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.Where("id = ?", identity.UserID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	profile, err := ensureUserProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load profile"})
	}

	return c.JSON(fiber.Map{"user": user, "profile": profile})
}

func UpdateMyProfile(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.Where("id = ?", identity.UserID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	database.DB.Save(&user)

	profile, err := ensureUserProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load profile"})
	}

	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.Address != nil {
		profile.Address = req.Address
	}
	if req.ProfilePictureURL != nil {
		profile.ProfilePictureURL = req.ProfilePictureURL
	}
	database.DB.Save(&profile)

	return c.JSON(fiber.Map{"user": user, "profile": profile})
}

type UpdateParentProfileRequest struct {
	Bio               *string `json:"bio"`
	Address           *string `json:"address" validate:"omitempty,max=255"`
	City              *string `json:"city" validate:"omitempty,max=100"`
	State             *string `json:"state" validate:"omitempty,max=100"`
	ZipCode           *string `json:"zip_code" validate:"omitempty,max=20"`
	ProfilePictureURL *string `json:"profile_picture_url" validate:"omitempty,max=255"`
}

func GetMyParentProfile(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	profile, err := EnsureParentProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load parent profile"})
	}

	return c.JSON(profile)
}

func UpdateMyParentProfile(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	profile, err := EnsureParentProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load parent profile"})
	}

	var req UpdateParentProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Verified, average_rating and total_ratings are never writable here.
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.Address != nil {
		profile.Address = req.Address
	}
	if req.City != nil {
		profile.City = req.City
	}
	if req.State != nil {
		profile.State = req.State
	}
	if req.ZipCode != nil {
		profile.ZipCode = req.ZipCode
	}
	if req.ProfilePictureURL != nil {
		profile.ProfilePictureURL = req.ProfilePictureURL
	}
	database.DB.Save(&profile)

	return c.JSON(profile)
}
