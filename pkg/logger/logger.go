package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// InitLogger replaces the global zap logger, every package logs through zap.L().
func InitLogger(level, format string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("unsupported log lvl: %s", level)
	}

	var c zap.Config
	switch format {
	case FormatJSON:
		c = zap.NewProductionConfig()
		c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	case FormatConsole, "":
		c = zap.NewDevelopmentConfig()
		c.Development = false
		c.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05 02-01-2006")
		c.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		c.DisableStacktrace = true
	default:
		return fmt.Errorf("unsupported log format: %s", format)
	}
	c.Level = zap.NewAtomicLevelAt(lvl)
	c.Sampling = nil

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger.Named("coursemarket"))
	return nil
}
