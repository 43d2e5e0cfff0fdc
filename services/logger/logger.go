package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// Config cấu hình logger: level (debug|info|error), format (text|json)
type Config struct {
	Level     string
	Format    string
	AddSource bool
}

// ParseLevel đổi level dạng chữ sang Level, mặc định info
func ParseLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "dbg":
		return DebugLevel
	case "error", "err":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case DebugLevel:
		return slog.LevelDebug
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultLogger implement Logger interface trên slog
type DefaultLogger struct {
	level Level
	slog  *slog.Logger
}

// NewDefaultLogger tạo logger ghi ra stdout dạng text
func NewDefaultLogger(level Level) *DefaultLogger {
	return New(os.Stdout, Config{Level: levelName(level)})
}

// New tạo logger ghi ra w theo cấu hình
func New(w io.Writer, cfg Config) *DefaultLogger {
	if w == nil {
		w = os.Stdout
	}
	level := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level.slogLevel(), AddSource: cfg.AddSource}

	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &DefaultLogger{level: level, slog: slog.New(handler)}
}

// Slog trả về slog.Logger bên dưới
func (l *DefaultLogger) Slog() *slog.Logger {
	return l.slog
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.log(slog.LevelInfo, format, v...)
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.log(slog.LevelError, format, v...)
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.log(slog.LevelDebug, format, v...)
}

func (l *DefaultLogger) log(level slog.Level, format string, v ...interface{}) {
	ctx := context.Background()
	if !l.slog.Enabled(ctx, level) {
		return
	}
	l.slog.Log(ctx, level, fmt.Sprintf(format, v...))
}

func levelName(level Level) string {
	switch level {
	case DebugLevel:
		return "debug"
	case ErrorLevel:
		return "error"
	default:
		return "info"
	}
}

// Nop logger bỏ qua mọi log, dùng trong test
type Nop struct{}

func (Nop) Info(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}
func (Nop) Debug(string, ...interface{}) {}
