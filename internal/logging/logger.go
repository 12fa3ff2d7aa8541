package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ytget/todolist/internal/model"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent.
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "TODOLIST_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// If level is empty, TODOLIST_LOG_LEVEL is consulted; if that is empty too
// the logger is a no-op.
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel, err := parseLevel(level)
	if err != nil {
		return err
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// LogViewChange logs a switch of the active view
func LogViewChange(l *zap.Logger, from, to model.ViewID, event model.Event) {
	l.Info("View changed",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Stringer("event", event),
	)
}

// LogSubmit logs a form submission from the redacted draft. Neither the
// password nor its length reaches the log.
func LogSubmit(l *zap.Logger, draft model.SessionDraft, valid bool) {
	r := draft.Redacted()
	fields := []zap.Field{
		zap.String("draft_id", r.ID),
		zap.String("kind", string(r.Kind)),
		zap.Bool("email_valid", valid),
		zap.String("password", r.Password),
	}
	if r.Kind == model.SubmitSignUp {
		fields = append(fields, zap.String("username", r.Username))
	}

	if valid {
		l.Info("Form submitted", fields...)
		return
	}
	l.Warn("Form rejected", fields...)
}

// LogPopup logs visibility changes of the verification popup
func LogPopup(l *zap.Logger, visible bool, reason string) {
	l.Debug("Popup visibility changed",
		zap.Bool("visible", visible),
		zap.String("reason", reason),
	)
}
