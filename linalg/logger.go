// SPDX-License-Identifier: MIT

package linalg

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// building attributes entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs the logger used for numeric diagnostics.
// By default linalg is silent. Passing nil restores the silent default.
//
// Log levels used by linalg:
//   - [slog.LevelDebug]: determinant shortcuts (degenerate input, triangular
//     fast path) and pivot row swaps
//   - [slog.LevelWarn]: a zero pivot that no row swap could replace; the
//     determinant that follows is NaN or ±Inf
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logEnabled reports whether records at level would be emitted.
func logEnabled(level slog.Level) (*slog.Logger, bool) {
	l := loggerPtr.Load()
	return l, l.Enabled(context.Background(), level)
}
