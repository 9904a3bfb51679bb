package routes

import (
	"github.com/anjiri1684/baby_ease/handlers"
	"github.com/anjiri1684/baby_ease/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile/me", middleware.Protected())
	profile.Get("", handlers.GetMyProfile)
	profile.Put("", handlers.UpdateMyProfile)
	profile.Get("/upload-signature", handlers.GenerateUploadSignature)

	parentProfile := api.Group("/parent-profile/me", middleware.Protected(), middleware.ParentRequired())
	parentProfile.Get("", handlers.GetMyParentProfile)
	parentProfile.Put("", handlers.UpdateMyParentProfile)
}
