package logging

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a structured logger. Production mode writes JSON with a
// "timestamp" key; otherwise a console encoder is used for terminal output.
func NewLogger(level string, production bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// WithOperation enriches the logger with operation and run identifiers.
func WithOperation(logger *zap.Logger, operation, runID string) *zap.Logger {
	fields := []zap.Field{zap.String("operation", operation)}
	if runID != "" {
		fields = append(fields, zap.String("run_id", runID))
	}
	return logger.With(fields...)
}

// IsTerminal reports whether f is attached to a terminal. Logs written
// anywhere else (a file, a pipe, a desktop launcher) use the JSON config.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
