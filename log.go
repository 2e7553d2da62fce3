package muda

import (
	"log/slog"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used for warnings. A nil logger restores
// slog.Default().
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

func warn(w Warning, args ...any) {
	logger().Warn(w.Message, append([]any{slog.String("stage", w.Stage)}, args...)...)
}
