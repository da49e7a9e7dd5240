// Package logger holds the CLI's process-wide structured logger.
//
// Library packages never log; only cmd/variations does.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names used by the CLI.
const (
	FieldCommand    = "command"
	FieldSpan       = "span"
	FieldStrings    = "strings"
	FieldCount      = "count"
	FieldPrimes     = "primes"
	FieldDurationMS = "duration_ms"
	FieldConfig     = "config"
)

// Logger is the global sugared logger. It is a no-op until Initialize runs,
// so packages may log before flags are parsed without nil checks.
var Logger = zap.NewNop().Sugar()

// Initialize replaces Logger according to verbosity (0 = warn, 1 = info,
// 2+ = debug) and output style. JSON output uses the production encoder;
// otherwise a console encoder without timestamps writes to stderr.
func Initialize(verbosity int, jsonOutput bool) error {
	level := levelFor(verbosity)

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stderr"}
		zapLogger, err := config.Build()
		if err != nil {
			return err
		}
		Logger = zapLogger.Sugar()
		return nil
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)
	Logger = zap.New(core).Sugar()

	return nil
}

// levelFor maps a -v count to a zap level.
func levelFor(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zap.WarnLevel
	case verbosity == 1:
		return zap.InfoLevel
	default:
		return zap.DebugLevel
	}
}

// Sync flushes buffered entries; errors from syncing stderr are ignored.
func Sync() {
	_ = Logger.Sync()
}
