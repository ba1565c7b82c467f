package logger

import (
	"testing"

	"github.com/GlebRadaev/ridehail/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name          string
		lvl           string
		expectedError bool
		enabled       zapcore.Level
		disabled      zapcore.Level
	}{
		{name: "Debug enables everything", lvl: "debug", enabled: zapcore.DebugLevel, disabled: zapcore.DebugLevel - 1},
		{name: "Info hides debug", lvl: "info", enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel},
		{name: "Warn hides info", lvl: "warn", enabled: zapcore.WarnLevel, disabled: zapcore.InfoLevel},
		{name: "Error hides warn", lvl: "error", enabled: zapcore.ErrorLevel, disabled: zapcore.WarnLevel},
		{name: "Invalid log level", lvl: "verbose", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.lvl})

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, zap.L().Core().Enabled(tt.enabled))
			assert.False(t, zap.L().Core().Enabled(tt.disabled))
		})
	}
}
