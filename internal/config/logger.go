package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

// InitLogger настраивает slog как логгер по умолчанию
func InitLogger(env, level string) {
	Logger = NewLogger(os.Stdout, env, level)
	slog.SetDefault(Logger)

	slog.Info("Logger initialized successfully", "env", env, "level", level)
}

// NewLogger создает JSON логгер. В продакшене без источника и локального времени.
func NewLogger(w io.Writer, env, level string) *slog.Logger {
	var handler slog.Handler

	if env == "production" {
		// Продакшен: JSON формат
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: ParseLevel(level),
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       ParseLevel(level),
			ReplaceAttr: replaceTimeAttr,
			AddSource:   true,
		})
	}

	return slog.New(handler)
}

// ParseLevel переводит LOG_LEVEL в уровень slog, по умолчанию info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func replaceTimeAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.String("time", a.Value.Time().Local().Format("2006-01-02 15:04:05"))
	}
	return a
}
