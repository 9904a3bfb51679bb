package handlers

import (
	"time"

	"github.com/anjiri1684/baby_ease/database"
	"github.com/anjiri1684/baby_ease/middleware"
	"github.com/anjiri1684/baby_ease/models"
	"github.com/gofiber/fiber/v2"
)

type ChildRequest struct {
	Name                  string  `json:"name" validate:"required,max=100"`
	DateOfBirth           string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender                string  `json:"gender" validate:"omitempty,oneof=M F O"`
	SpecialNeeds          *string `json:"special_needs"`
	DietaryRestrictions   *string `json:"dietary_restrictions"`
	EmergencyContactName  *string `json:"emergency_contact_name" validate:"omitempty,max=100"`
	EmergencyContactPhone *string `json:"emergency_contact_phone" validate:"omitempty,max=15"`
}

func ListChildren(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	profile, err := EnsureParentProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load parent profile"})
	}

	children := []models.ChildProfile{}
	database.DB.
		Where("parent_id = ?", profile.ID).
		Order("created_at desc").
		Find(&children)

	return c.JSON(children)
}

func CreateChild(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var req ChildRequest
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

	dob, _ := time.Parse("2006-01-02", req.DateOfBirth)
	child := models.ChildProfile{
		ParentID:              profile.ID,
		Name:                  req.Name,
		DateOfBirth:           dob,
		Gender:                models.Gender(req.Gender),
		SpecialNeeds:          req.SpecialNeeds,
		DietaryRestrictions:   req.DietaryRestrictions,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	}

	if err := database.DB.Create(&child).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create child profile"})
	}

	return c.Status(fiber.StatusCreated).JSON(child)
}

func GetChild(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	childID := c.Params("childId")

	profile, err := EnsureParentProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load parent profile"})
	}

	var child models.ChildProfile
	if err := database.DB.Where("id = ? AND parent_id = ?", childID, profile.ID).First(&child).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Child profile not found"})
	}

	return c.JSON(child)
}

func UpdateChild(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	childID := c.Params("childId")

	profile, err := EnsureParentProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load parent profile"})
	}

	var child models.ChildProfile
	if err := database.DB.Where("id = ? AND parent_id = ?", childID, profile.ID).First(&child).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Child profile not found"})
	}

	var req ChildRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	dob, _ := time.Parse("2006-01-02", req.DateOfBirth)
	child.Name = req.Name
	child.DateOfBirth = dob
	child.Gender = models.Gender(req.Gender)
	child.SpecialNeeds = req.SpecialNeeds
	child.DietaryRestrictions = req.DietaryRestrictions
	child.EmergencyContactName = req.EmergencyContactName
	child.EmergencyContactPhone = req.EmergencyContactPhone

	if err := database.DB.Save(&child).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update child profile"})
	}

	return c.JSON(child)
}

func DeleteChild(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	childID := c.Params("childId")

	profile, err := EnsureParentProfile(database.DB, identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load parent profile"})
	}

	var child models.ChildProfile
	if err := database.DB.Where("id = ? AND parent_id = ?", childID, profile.ID).First(&child).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Child profile not found"})
	}

	// Bookings that reference the child keep existing with child_id nulled.
	if err := database.DB.Delete(&child).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete child profile"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
