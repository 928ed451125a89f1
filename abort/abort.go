package abort

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
)

// ErrFatal matches every *Error via errors.Is.
var ErrFatal = errors.New("fatal memory failure")

// Error describes an unrecoverable failure.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type Error struct {
	Op   string // failing operation, e.g. "alloc" or "alloc_many"
	Type string // element type name
	Size uint64 // requested bytes
	Err  error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s (%d bytes): failed to allocate", e.Op, e.Type, e.Size)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports ErrFatal as a match.
func (e *Error) Is(target error) bool { return target == ErrFatal }

// Handler is invoked by Fail after the diagnostic has been logged.
// If it returns, the process exits anyway.
type Handler func(*Error)

var (
	handler atomic.Pointer[Handler]
	logger  atomic.Pointer[slog.Logger]

	// exit is replaced only by this package's tests.
	exit = os.Exit
)

// SetHandler installs h and returns the previously installed handler.
// A nil h restores the default, which does nothing beyond logging.
func SetHandler(h Handler) Handler {
	var old *Handler
	if h == nil {
		old = handler.Swap(nil)
	} else {
		old = handler.Swap(&h)
	}
	if old == nil {
		return nil
	}
	return *old
}

// SetLogger sets the logger used for the fatal diagnostic.
// A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// Fail reports err and terminates the process. It never returns.
func Fail(err *Error) {
	l := logger.Load()
	if l == nil {
		l = slog.Default()
	}
	l.Error("fatal memory failure",
		"op", err.Op,
		"type", err.Type,
		"bytes", err.Size,
		"error", err.Err,
	)

	if h := handler.Load(); h != nil {
		(*h)(err)
	}

	exit(2)
	panic("unreachable")
}
