package logger

import (
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/xoso/internal/availability"
	"github.com/GlebRadaev/xoso/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	consoleTimeLayout = "15:04:05 02-01-2006"
	serviceName       = "xoso"
)

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// InitLogger replaces the global zap logger. Timestamps are written in
// Vietnam time so they line up with draw dates and the results cutoff.
func InitLogger(conf *config.Config) error {
	logger, err := build(conf)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

func build(conf *config.Config) (*zap.Logger, error) {
	lvl, ok := logLvlMap[strings.ToLower(conf.LogLvl)]
	if !ok {
		return nil, fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	encoding, encodeConfig, err := encoderFor(conf.LogFormat)
	if err != nil {
		return nil, err
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         encoding,
		EncoderConfig:    encodeConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields:    map[string]any{"service": serviceName},
	}

	logger, err := c.Build()
	if err != nil {
		return nil, fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	return logger, nil
}

func encoderFor(format string) (string, zapcore.EncoderConfig, error) {
	switch strings.ToLower(format) {
	case "", "console":
		return "console", zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     vietnamTime(zapcore.TimeEncoderOfLayout(consoleTimeLayout)),
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		}, nil
	case "json":
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = vietnamTime(zapcore.ISO8601TimeEncoder)
		cfg.EncodeDuration = zapcore.MillisDurationEncoder
		return "json", cfg, nil
	default:
		return "", zapcore.EncoderConfig{}, fmt.Errorf("unsupported log format: %s", format)
	}
}

func vietnamTime(enc zapcore.TimeEncoder) zapcore.TimeEncoder {
	return func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		enc(t.In(availability.Vietnam), pae)
	}
}
