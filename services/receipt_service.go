package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/anjiri1684/baby_ease/configs"
	"github.com/anjiri1684/baby_ease/database"
	"github.com/anjiri1684/baby_ease/models"
	"github.com/anjiri1684/baby_ease/notifications"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// GenerateBookingReceipt renders a PDF receipt for a completed booking,
// stores it on Cloudinary and emails both parties. Runs after the completion
// transaction has committed; failures are logged and never surfaced to the
// completing request.
func GenerateBookingReceipt(booking models.BabysitterRequest) {
	var full models.BabysitterRequest
	if err := database.DB.
		Preload("Parent.User").
		Preload("Babysitter").
		First(&full, "id = ?", booking.ID).Error; err != nil {
		log.Printf("🔥 Failed to load booking %s for receipt: %v", booking.ID, err)
		return
	}
	if full.Status != models.StatusCompleted || full.Babysitter == nil {
		return
	}

	htmlData, err := generateReceiptHTML(full)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt PDF: %v", err)
		return
	}

	uploadURL, err := uploadReceiptToCloudinary(pdfBytes, full.Reference)
	if err != nil {
		log.Printf("🔥 Failed to upload receipt to Cloudinary: %v", err)
		return
	}

	if err := database.DB.Model(&models.BabysitterRequest{}).
		Where("id = ?", full.ID).
		Update("receipt_url", uploadURL).Error; err != nil {
		log.Printf("🔥 Failed to store receipt URL for booking %s: %v", full.ID, err)
		return
	}

	emailBody := fmt.Sprintf(
		"<h1>Booking Receipt</h1><p>Your receipt for booking %s is ready.</p><p><a href='%s'>Download Receipt</a></p>",
		full.Reference, uploadURL,
	)
	go notifications.SendEmail(full.Parent.User.FullName(), full.Parent.User.Email, "Your BabyEase Receipt", emailBody)
	go notifications.SendEmail(full.Babysitter.FullName(), full.Babysitter.Email, "Your BabyEase Receipt", emailBody)

	log.Printf("✅ Generated receipt for booking %s.", full.Reference)
}

func generateReceiptHTML(booking models.BabysitterRequest) (string, error) {
	tmpl, err := template.ParseFiles("templates/receipt.html")
	if err != nil {
		return "", err
	}

	totalCost := 0.0
	if booking.TotalCost != nil {
		totalCost = *booking.TotalCost
	}

	data := struct {
		Reference      string
		ParentName     string
		BabysitterName string
		StartDate      string
		EndDate        string
		Hours          string
		HourlyRate     string
		TotalCost      string
		IssuedDate     string
	}{
		Reference:      booking.Reference,
		ParentName:     booking.Parent.User.FullName(),
		BabysitterName: booking.Babysitter.FullName(),
		StartDate:      booking.StartDate.Format(time.RFC1123),
		EndDate:        booking.EndDate.Format(time.RFC1123),
		Hours:          fmt.Sprintf("%.2f", booking.DurationHours()),
		HourlyRate:     fmt.Sprintf("%.2f", booking.HourlyRate),
		TotalCost:      fmt.Sprintf("%.2f", totalCost),
		IssuedDate:     time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadReceiptToCloudinary(fileBytes []byte, reference string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s_%s", reference, uuid.New().String()),
		Folder:       "baby_ease_receipts",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
