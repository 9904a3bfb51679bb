package routes

import (
	"github.com/anjiri1684/baby_ease/handlers"
	"github.com/anjiri1684/baby_ease/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected(), middleware.ParentRequired())
	booking.Get("", handlers.GetMyBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Get("/upcoming", handlers.GetUpcomingBookings)
	booking.Get("/past", handlers.GetPastBookings)
	booking.Get("/history", handlers.GetBookingHistory)
	booking.Get("/:bookingId", handlers.GetBooking)
	booking.Post("/:bookingId/cancel", handlers.CancelBooking)
	booking.Post("/:bookingId/review", handlers.CreateReview)

	reviews := api.Group("/reviews", middleware.Protected(), middleware.ParentRequired())
	reviews.Get("", handlers.GetMyReviews)
}
