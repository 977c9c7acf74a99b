package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/buildline/crm-backend/internal/config"
)

// serviceName is attached to every record so aggregated logs can be filtered
// per deployment.
const serviceName = "crm-backend"

// redacted replaces the value of any attribute whose key names a secret.
const redacted = "[REDACTED]"

var sensitiveKeys = []string{"password", "token", "secret", "authorization", "cookie"}

// NewLogger builds the process logger from cfg and installs it as the slog
// default. Format "json" is meant for production, "text" adds source
// locations for local work. Unknown levels fall back to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg)).With(slog.String("service", serviceName))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   text,
		ReplaceAttr: redact,
	}
	if text {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// redact masks credentials that end up in log attributes, including nested
// groups such as request headers.
func redact(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		return a
	}
	key := strings.ToLower(a.Key)
	for _, s := range sensitiveKeys {
		if strings.Contains(key, s) {
			return slog.String(a.Key, redacted)
		}
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
