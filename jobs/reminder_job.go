package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/anjiri1684/baby_ease/database"
	"github.com/anjiri1684/baby_ease/models"
	"github.com/anjiri1684/baby_ease/notifications"
)

// reminderWindow returns the half-open interval [now+60m, now+65m). The width
// matches the 5-minute cron cadence, so consecutive ticks tile without overlap
// and each booking is picked up exactly once.
func reminderWindow(now time.Time) (time.Time, time.Time) {
	return now.Add(60 * time.Minute), now.Add(65 * time.Minute)
}

// SendBookingReminders emails both parties of accepted bookings starting in
// roughly one hour.
func SendBookingReminders() {
	log.Println("Running job: SendBookingReminders...")

	lowerBound, upperBound := reminderWindow(time.Now())

	var upcomingBookings []models.BabysitterRequest

	err := database.DB.
		Preload("Parent.User").
		Preload("Babysitter").
		Where("status = ? AND start_date >= ? AND start_date < ?", models.StatusAccepted, lowerBound, upperBound).
		Find(&upcomingBookings).Error

	if err != nil {
		log.Printf("Error checking for upcoming bookings: %v", err)
		return
	}

	if len(upcomingBookings) == 0 {
		return
	}

	for _, booking := range upcomingBookings {
		if booking.Babysitter == nil {
			continue
		}
		log.Printf("Sending reminder for booking %s", booking.Reference)

		emailSubject := "Reminder: Your Babysitting Booking Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Booking Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that booking %s is scheduled to start at %s.</p>",
			booking.Reference,
			booking.StartDate.Format(time.Kitchen),
		)

		go notifications.SendEmail(booking.Parent.User.FullName(), booking.Parent.User.Email, emailSubject, emailBody)
		go notifications.SendEmail(booking.Babysitter.FullName(), booking.Babysitter.Email, emailSubject, emailBody)
	}
}
