package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGormConfigTranslatesDriverErrors(t *testing.T) {
	cfg := gormConfig()

	assert.True(t, cfg.TranslateError,
		"duplicate-key handling relies on gorm.ErrDuplicatedKey, which needs driver error translation")
	assert.True(t, cfg.SkipDefaultTransaction)
	assert.False(t, cfg.PrepareStmt)
}
