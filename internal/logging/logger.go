// Package logging provides the leveled console logger used by the CLI and
// pipeline. It is backed by zap: a console core writes tagged lines to
// stdout (ERROR to stderr) and, when a log file is configured, a JSON core
// appends the same entries to it.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/backmassage/cardslug/internal/config"
	"github.com/backmassage/cardslug/internal/term"
)

// successLevel sits below zap's DebugLevel; it is only ever written through
// Success and always enabled.
const successLevel = zapcore.DebugLevel - 1

const timeLayout = "2006-01-02 15:04:05"

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	z        *zap.Logger
	file     *os.File
	filePath string
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile.
// Call Close when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	return newLogger(cfg.LogFile, term.Enabled(), os.Stdout, os.Stderr)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{z: zap.NewNop()}
}

func newLogger(logFile string, color bool, stdout, stderr io.Writer) (*Logger, error) {
	l := &Logger{}

	console := zapcore.NewConsoleEncoder(consoleEncoderConfig(color))
	cores := []zapcore.Core{
		zapcore.NewCore(console, zapcore.Lock(zapcore.AddSync(stdout)), zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl < zapcore.ErrorLevel
		})),
		zapcore.NewCore(console, zapcore.Lock(zapcore.AddSync(stderr)), zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= zapcore.ErrorLevel
		})),
	}

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = f
		l.filePath = logFile
		json := zapcore.NewJSONEncoder(fileEncoderConfig())
		cores = append(cores, zapcore.NewCore(json, zapcore.AddSync(f), zap.LevelEnablerFunc(func(zapcore.Level) bool {
			return true
		})))
	}

	l.z = zap.New(zapcore.NewTee(cores...))
	return l, nil
}

func consoleEncoderConfig(color bool) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeTime:       zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeLevel:      consoleLevelEncoder(color),
		EncodeName:       func(name string, enc zapcore.PrimitiveArrayEncoder) { enc.AppendString("(" + name + ")") },
		EncodeDuration:   zapcore.StringDurationEncoder,
	}
}

func fileEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeLevel:    func(lvl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) { enc.AppendString(levelTag(lvl)) },
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

// levelTag is the bracketed tag printed for each level.
func levelTag(lvl zapcore.Level) string {
	switch lvl {
	case successLevel:
		return "SUCCESS"
	case zapcore.DebugLevel:
		return "DEBUG"
	case zapcore.InfoLevel:
		return "INFO"
	case zapcore.WarnLevel:
		return "WARN"
	}
	return "ERROR"
}

func levelColor(lvl zapcore.Level) string {
	switch lvl {
	case successLevel:
		return term.Green
	case zapcore.DebugLevel:
		return term.Cyan
	case zapcore.InfoLevel:
		return term.Blue
	case zapcore.WarnLevel:
		return term.Yellow
	}
	return term.Red
}

func consoleLevelEncoder(color bool) zapcore.LevelEncoder {
	return func(lvl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		tag := "[" + levelTag(lvl) + "]"
		if color {
			tag = term.Paint(levelColor(lvl), tag)
		}
		enc.AppendString(tag)
	}
}

// Close flushes and closes the log file if one was opened.
func (l *Logger) Close() error {
	_ = l.z.Sync()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Named returns a child logger whose lines carry name (e.g. a release slug).
// The child shares the parent's sinks; only the parent should be closed.
func (l *Logger) Named(name string) *Logger {
	return &Logger{z: l.z.Named(name)}
}

func (l *Logger) write(lvl zapcore.Level, format string, args []interface{}) {
	if ce := l.z.Check(lvl, fmt.Sprintf(format, args...)); ce != nil {
		ce.Write()
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.write(zapcore.InfoLevel, format, args)
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.write(successLevel, format, args)
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.write(zapcore.WarnLevel, format, args)
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.write(zapcore.ErrorLevel, format, args)
}

// Debug logs at DEBUG level (cyan) only when verbose.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.write(zapcore.DebugLevel, format, args)
}

// Infow logs msg at INFO with structured key/value pairs; they are rendered
// as JSON on the console and as fields in the log file.
func (l *Logger) Infow(msg string, keysAndValues ...interface{}) {
	l.z.Sugar().Infow(msg, keysAndValues...)
}
