package logger

import (
	"testing"

	"github.com/MikeRez0/ypbookstore/internal/adapter/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(&config.App{LogLevel: "debug", Mode: config.AppModeDevelop})
	assert.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	log, err = NewLogger(&config.App{LogLevel: "warn", Mode: config.AppModeProduction})
	assert.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.InfoLevel))

	_, err = NewLogger(&config.App{LogLevel: "loud"})
	assert.Error(t, err)
}
