// Package logger provides structured logging using zap.
package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global logger instance. It discards everything until Init.
var Log = zap.NewNop()

// Sugar is the sugared logger for convenient logging.
var Sugar = Log.Sugar()

// wrapped backs the package-level helpers, skipping their own frame.
var wrapped = Log

// fileWriter is the rotating log file opened by the last Init, if any.
var fileWriter io.Closer

// FileConfig holds file logging configuration.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig returns default file logging settings.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// Init initializes the logger with the given level and optional file output.
func Init(level string, logFile string) error {
	if logFile != "" {
		return InitWithFileConfig(level, DefaultFileConfig(logFile), true)
	}
	return InitWithFileConfig(level, FileConfig{}, true)
}

// InitWithFileConfig initializes the logger with custom file configuration.
// Set consoleOutput to false to disable console logging (useful for tests).
func InitWithFileConfig(level string, fileCfg FileConfig, consoleOutput bool) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}

	if err := Close(); err != nil {
		return fmt.Errorf("closing previous log file: %w", err)
	}

	var cores []zapcore.Core

	if consoleOutput {
		encoder := zapcore.NewConsoleEncoder(encoderConfig(
			zapcore.TimeEncoderOfLayout("15:04:05"),
			zapcore.CapitalColorLevelEncoder,
		))
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), lvl))
	}

	if fileCfg.Path != "" {
		writer := &lumberjack.Logger{
			Filename:   fileCfg.Path,
			MaxSize:    fileCfg.MaxSizeMB,
			MaxBackups: fileCfg.MaxBackups,
			MaxAge:     fileCfg.MaxAgeDays,
			Compress:   fileCfg.Compress,
			LocalTime:  true, // Use local time in rotated filename
		}
		fileWriter = writer

		encoder := zapcore.NewConsoleEncoder(encoderConfig(
			zapcore.ISO8601TimeEncoder,
			zapcore.CapitalLevelEncoder,
		))
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(writer), lvl))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	Sugar = Log.Sugar()
	wrapped = Log.WithOptions(zap.AddCallerSkip(1))

	return nil
}

func encoderConfig(timeEnc zapcore.TimeEncoder, levelEnc zapcore.LevelEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       timeEnc,
		EncodeLevel:      levelEnc,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " ",
	}
}

// parseLevel converts a string level to zapcore.Level. Empty means info.
func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// Named returns a child logger for a component.
func Named(component string) *zap.Logger {
	return Log.Named(component)
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}

// Close flushes the logger and closes the log file.
func Close() error {
	Sync()
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	return err
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) {
	wrapped.Debug(msg, fields...)
}

// Info logs an info message.
func Info(msg string, fields ...zap.Field) {
	wrapped.Info(msg, fields...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) {
	wrapped.Warn(msg, fields...)
}

// Error logs an error message.
func Error(msg string, fields ...zap.Field) {
	wrapped.Error(msg, fields...)
}

// Fatal logs a fatal message and exits.
func Fatal(msg string, fields ...zap.Field) {
	wrapped.Fatal(msg, fields...)
}
