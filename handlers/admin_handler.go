package handlers

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/anjiri1684/baby_ease/database"
	"github.com/anjiri1684/baby_ease/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// normalizePagination clamps query values so the page math never divides by
// zero and a page always holds at least one row.
func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

func GetAllUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	page, limit = normalizePagination(page, limit)
	search := strings.TrimSpace(c.Query("search"))
	role := c.Query("role")
	offset := (page - 1) * limit

	var users []models.User
	var totalUsers int64

	query := database.DB.Model(&models.User{})
	countQuery := database.DB.Model(&models.User{})

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", searchTerm, searchTerm, searchTerm)
		countQuery = countQuery.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", searchTerm, searchTerm, searchTerm)
	}
	if role != "" && models.Role(role).IsValid() {
		query = query.Where("role = ?", role)
		countQuery = countQuery.Where("role = ?", role)
	}

	countQuery.Count(&totalUsers)
	query.Order("created_at desc").Offset(offset).Limit(limit).Find(&users)

	return c.JSON(fiber.Map{
		"data": users,
		"meta": fiber.Map{
			"total_users":  totalUsers,
			"total_pages":  int(math.Ceil(float64(totalUsers) / float64(limit))),
			"current_page": page,
		},
	})
}

func GetUserDetail(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	response := fiber.Map{"user": user}

	var profile models.UserProfile
	if err := database.DB.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
		response["profile"] = profile
	}

	if user.IsParent() {
		var parentProfile models.ParentProfile
		if err := database.DB.Preload("Children").Where("user_id = ?", user.ID).First(&parentProfile).Error; err == nil {
			response["parent_profile"] = parentProfile
		}
	}

	return c.JSON(response)
}

func ToggleUserStatus(c *fiber.Ctx) error {
	userID := c.Params("userId")
	type Request struct {
		IsActive bool `json:"is_active"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	result := database.DB.Model(&models.User{}).Where("id = ?", userID).Update("is_active", req.IsActive)
	if result.Error != nil || result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{"message": "User status updated successfully."})
}

func VerifyParentProfile(c *fiber.Ctx) error {
	profileID := c.Params("profileId")
	type Request struct {
		Verified bool `json:"verified"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	result := database.DB.Model(&models.ParentProfile{}).Where("id = ?", profileID).Update("verified", req.Verified)
	if result.Error != nil || result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Parent profile not found"})
	}

	return c.JSON(fiber.Map{"message": "Parent profile verification updated."})
}

func AdminDeleteUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return errors.New("user not found")
		}

		if user.IsParent() {
			var profile models.ParentProfile
			if err := tx.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
				if err := tx.Where("parent_id = ?", profile.ID).Delete(&models.BabysitterReview{}).Error; err != nil {
					return err
				}
				if err := tx.Where("parent_id = ?", profile.ID).Delete(&models.BabysitterRequest{}).Error; err != nil {
					return err
				}
				if err := tx.Where("parent_id = ?", profile.ID).Delete(&models.ChildProfile{}).Error; err != nil {
					return err
				}
				if err := tx.Delete(&profile).Error; err != nil {
					return err
				}
			}
		}

		if user.IsBabysitter() {
			// Bookings and reviews keep history; the babysitter reference
			// is cleared, matching SET NULL semantics.
			if err := tx.Model(&models.BabysitterRequest{}).
				Where("babysitter_id = ?", user.ID).
				Update("babysitter_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("babysitter_id = ?", user.ID).Delete(&models.BabysitterReview{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})

	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func GetDashboardAnalytics(c *fiber.Ctx) error {
	var totalUsers, totalParents, totalBabysitters, verifiedParents int64

	database.DB.Model(&models.User{}).Count(&totalUsers)
	database.DB.Model(&models.User{}).Where("role = ?", models.RoleParent).Count(&totalParents)
	database.DB.Model(&models.User{}).Where("role = ?", models.RoleBabysitter).Count(&totalBabysitters)
	database.DB.Model(&models.ParentProfile{}).Where("verified = ?", true).Count(&verifiedParents)

	return c.JSON(fiber.Map{
		"total_users":       totalUsers,
		"total_parents":     totalParents,
		"total_babysitters": totalBabysitters,
		"verified_parents":  verifiedParents,
	})
}
