package utils

import (
	"math/rand"
	"time"

	"github.com/anjiri1684/baby_ease/models"
	"gorm.io/gorm"
)

const referenceLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomReference returns a reference-shaped code without checking uniqueness.
func RandomReference() string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	b := make([]byte, referenceLength)
	for i := range b {
		b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
	}
	return string(b)
}

// GenerateUniqueBookingReference produces a booking reference not yet used by
// any babysitter request, retrying on collision.
func GenerateUniqueBookingReference(tx *gorm.DB) (string, error) {
	for {
		code := RandomReference()

		var booking models.BabysitterRequest
		err := tx.Where("reference = ?", code).First(&booking).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
