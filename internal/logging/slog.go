package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/heroiclabs/nakama-common/runtime"
)

// SlogLogger implements runtime.Logger on top of log/slog so the code that
// normally runs inside Nakama can log the same way from a plain binary.
type SlogLogger struct {
	logger *slog.Logger
	fields map[string]interface{}
}

var _ runtime.Logger = (*SlogLogger)(nil)

// NewSlogLogger writes JSON lines at the given level to w.
func NewSlogLogger(w io.Writer, level slog.Level) *SlogLogger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &SlogLogger{logger: slog.New(h), fields: map[string]interface{}{}}
}

func (l *SlogLogger) Debug(format string, v ...interface{}) { l.log(slog.LevelDebug, format, v) }
func (l *SlogLogger) Info(format string, v ...interface{})  { l.log(slog.LevelInfo, format, v) }
func (l *SlogLogger) Warn(format string, v ...interface{})  { l.log(slog.LevelWarn, format, v) }
func (l *SlogLogger) Error(format string, v ...interface{}) { l.log(slog.LevelError, format, v) }

func (l *SlogLogger) log(level slog.Level, format string, v []interface{}) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	l.logger.Log(ctx, level, fmt.Sprintf(format, v...))
}

func (l *SlogLogger) WithField(key string, v interface{}) runtime.Logger {
	return l.WithFields(map[string]interface{}{key: v})
}

func (l *SlogLogger) WithFields(fields map[string]interface{}) runtime.Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	keys := make([]string, 0, len(fields))
	for k, v := range fields {
		merged[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(keys))
	for _, k := range keys {
		args = append(args, slog.Any(k, fields[k]))
	}
	return &SlogLogger{logger: l.logger.With(args...), fields: merged}
}

func (l *SlogLogger) Fields() map[string]interface{} {
	return l.fields
}
