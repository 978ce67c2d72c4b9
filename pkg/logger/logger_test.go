package logger

import (
	"testing"
	"time"

	"github.com/GlebRadaev/xoso/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name           string
		config         *config.Config
		expectedError  bool
		expectedLogLvl zapcore.Level
	}{
		{
			name: "Valid log level info",
			config: &config.Config{
				LogLvl: "info",
			},
			expectedError:  false,
			expectedLogLvl: zapcore.InfoLevel,
		},
		{
			name: "Valid log level error",
			config: &config.Config{
				LogLvl: "error",
			},
			expectedError:  false,
			expectedLogLvl: zapcore.ErrorLevel,
		},
		{
			name: "Valid log level debug",
			config: &config.Config{
				LogLvl: "debug",
			},
			expectedError:  false,
			expectedLogLvl: zapcore.DebugLevel,
		},
		{
			name: "Valid log level warn in upper case",
			config: &config.Config{
				LogLvl: "WARN",
			},
			expectedError:  false,
			expectedLogLvl: zapcore.WarnLevel,
		},
		{
			name: "JSON format",
			config: &config.Config{
				LogLvl:    "info",
				LogFormat: "json",
			},
			expectedError:  false,
			expectedLogLvl: zapcore.InfoLevel,
		},
		{
			name: "Unknown format",
			config: &config.Config{
				LogLvl:    "info",
				LogFormat: "xml",
			},
			expectedError:  true,
			expectedLogLvl: zapcore.InfoLevel,
		},
		{
			name: "Invalid log level",
			config: &config.Config{
				LogLvl: "invalid",
			},
			expectedError:  true,
			expectedLogLvl: zapcore.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.config)

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.True(t, zap.L().Core().Enabled(tt.expectedLogLvl))
				if tt.expectedLogLvl > zapcore.DebugLevel {
					require.False(t, zap.L().Core().Enabled(tt.expectedLogLvl-1))
				}
			}
		})
	}
}

func TestEncoderFor_JSONUsesVietnamTime(t *testing.T) {
	encoding, cfg, err := encoderFor("json")
	require.NoError(t, err)
	require.Equal(t, "json", encoding)

	entry := zapcore.Entry{
		Level:   zapcore.InfoLevel,
		Time:    time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC),
		Message: "Batch settlement finished",
	}
	buf, err := zapcore.NewJSONEncoder(cfg).EncodeEntry(entry, nil)
	require.NoError(t, err)
	defer buf.Free()

	require.Contains(t, buf.String(), `"ts":"2024-01-02T16:30:00.000+0700"`)
	require.Contains(t, buf.String(), `"msg":"Batch settlement finished"`)
}
