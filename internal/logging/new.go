package logging

import (
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported backends.
const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// New builds a Logger writing to w.
//
// backend is "slog" (text handler, the default) or "zap" (JSON encoder).
// level is one of "debug", "info", "warn", "error"; anything else means info.
func New(backend, level string, w io.Writer) Logger {
	if strings.EqualFold(backend, BackendZap) {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(w),
			zapLevel(level),
		)
		return NewZapLogger(zap.New(core))
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel(level)})
	return NewSlogLogger(slog.New(h))
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zapLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
