package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the process logger
type Options struct {
	Dir   string
	Env   string
	Level string
	// Console receives human readable output. Defaults to os.Stderr.
	Console io.Writer
	// DisableFile skips the rotating JSON file, used by tests and the CLI.
	DisableFile bool
}

// FilePath returns the log file the server writes for an environment
func FilePath(dir, env string) string {
	if env == "" {
		env = "development"
	}
	return filepath.Join(dir, env+".log")
}

// New builds a zap logger that writes console output and, unless disabled, a
// JSON line per entry to <Dir>/<Env>.log rotated by lumberjack. The returned
// func flushes buffered entries and closes the file.
func New(opts Options) (*zap.Logger, func() error, error) {
	level := ParseLevel(opts.Level)

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	consoleCfg := encoderConfig()
	consoleCfg.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.Format(time.RFC3339))
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(zapcore.AddSync(console)), level),
	}

	var rotator *lumberjack.Logger
	if !opts.DisableFile {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, nil, err
		}
		rotator = &lumberjack.Logger{
			Filename:   FilePath(opts.Dir, opts.Env),
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(rotator), level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	closer := func() error {
		_ = logger.Sync()
		if rotator != nil {
			return rotator.Close()
		}
		return nil
	}
	return logger, closer, nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// encodeLevel writes the level names the log viewer filters on
func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(LevelName(l))
}

// LevelName maps a zap level to the name stored in log files
func LevelName(l zapcore.Level) string {
	switch l {
	case zapcore.DebugLevel:
		return "DEBUG"
	case zapcore.InfoLevel:
		return "INFO"
	case zapcore.WarnLevel:
		return "WARNING"
	case zapcore.ErrorLevel:
		return "ERROR"
	default:
		return "CRITICAL"
	}
}

// ParseLevel accepts both zap ("warn") and stored ("WARNING") names.
// Unknown values map to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "CRITICAL", "FATAL", "DPANIC":
		return zapcore.DPanicLevel
	default:
		return zapcore.InfoLevel
	}
}

// IsKnownLevel reports whether s names a level ParseLevel understands
func IsKnownLevel(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR", "CRITICAL", "FATAL", "DPANIC":
		return true
	}
	return false
}
