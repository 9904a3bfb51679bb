package routes

import (
	"github.com/anjiri1684/baby_ease/handlers"
	"github.com/anjiri1684/baby_ease/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/dashboard-analytics", handlers.GetDashboardAnalytics)

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Get("/:userId", handlers.GetUserDetail)
	users.Put("/:userId/status", handlers.ToggleUserStatus)
	users.Delete("/:userId", handlers.AdminDeleteUser)

	admin.Put("/parents/:profileId/verify", handlers.VerifyParentProfile)
}
