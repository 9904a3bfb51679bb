package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomReferenceShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		ref := RandomReference()
		assert.Len(t, ref, referenceLength)
		for _, r := range ref {
			assert.True(t, strings.ContainsRune(letterBytes, r), "unexpected character %q", r)
		}
	}
}
