package routes

import (
	"github.com/anjiri1684/baby_ease/handlers"
	"github.com/anjiri1684/baby_ease/middleware"
	"github.com/gofiber/fiber/v2"
)

func BabysitterRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Parent-facing directory.
	directory := api.Group("/babysitters", middleware.Protected(), middleware.ParentRequired())
	directory.Get("", handlers.ListBabysitters)
	directory.Get("/search", handlers.SearchBabysitters)
	directory.Get("/:userId", handlers.GetBabysitter)

	// Babysitter workspace.
	sitter := api.Group("/sitter", middleware.Protected(), middleware.BabysitterRequired())
	sitter.Get("/requests", handlers.GetIncomingRequests)
	sitter.Post("/requests/:bookingId/accept", handlers.AcceptRequest)
	sitter.Post("/requests/:bookingId/reject", handlers.RejectRequest)
	sitter.Get("/bookings", handlers.GetActiveBookings)
	sitter.Get("/bookings/upcoming", handlers.GetSitterUpcomingBookings)
	sitter.Get("/bookings/past", handlers.GetSitterPastBookings)
	sitter.Post("/bookings/:bookingId/complete", handlers.CompleteBooking)
	sitter.Get("/history", handlers.GetSitterHistory)
	sitter.Get("/reviews", handlers.GetSitterReviews)
}
