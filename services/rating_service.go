package services

import (
	"math"

	"github.com/anjiri1684/baby_ease/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingSummary struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

// RoundRating trims an average to two decimal places for display.
func RoundRating(value float64) float64 {
	return math.Round(value*100) / 100
}

// BabysitterRatingSummary aggregates the reviews a babysitter has received.
// Reviews rate babysitters, so the rollup lives on their side; the legacy
// rating columns on ParentProfile are never written.
func BabysitterRatingSummary(db *gorm.DB, babysitterID uuid.UUID) (RatingSummary, error) {
	var summary RatingSummary

	err := db.Model(&models.BabysitterReview{}).
		Where("babysitter_id = ?", babysitterID).
		Count(&summary.TotalRatings).Error
	if err != nil {
		return summary, err
	}
	if summary.TotalRatings == 0 {
		return summary, nil
	}

	var result struct {
		Avg float64
	}
	err = db.Model(&models.BabysitterReview{}).
		Where("babysitter_id = ?", babysitterID).
		Select("avg(rating) as avg").
		Scan(&result).Error
	if err != nil {
		return summary, err
	}

	summary.AverageRating = RoundRating(result.Avg)
	return summary, nil
}
