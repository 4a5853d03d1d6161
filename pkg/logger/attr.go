package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Command(name string) slog.Attr {
	return slog.String("command", name)
}

func Schema(name string) slog.Attr {
	return slog.String("schema", name)
}

func Locale(tag string) slog.Attr {
	return slog.String("locale", tag)
}

// Duration records d in milliseconds under "duration_ms".
func Duration(d time.Duration) slog.Attr {
	return slog.Float64("duration_ms", float64(d)/float64(time.Millisecond))
}

// Count records how many items were processed under "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
