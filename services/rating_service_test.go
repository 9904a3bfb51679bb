package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRating(t *testing.T) {
	assert.Equal(t, 4.33, RoundRating(4.3333333))
	assert.Equal(t, 4.67, RoundRating(4.6666666))
	assert.Equal(t, 5.0, RoundRating(5.0))
	assert.Equal(t, 0.0, RoundRating(0))
}
