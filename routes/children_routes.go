package routes

import (
	"github.com/anjiri1684/baby_ease/handlers"
	"github.com/anjiri1684/baby_ease/middleware"
	"github.com/gofiber/fiber/v2"
)

func ChildrenRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	children := api.Group("/children", middleware.Protected(), middleware.ParentRequired())
	children.Get("", handlers.ListChildren)
	children.Post("", handlers.CreateChild)
	children.Get("/:childId", handlers.GetChild)
	children.Put("/:childId", handlers.UpdateChild)
	children.Delete("/:childId", handlers.DeleteChild)
}
