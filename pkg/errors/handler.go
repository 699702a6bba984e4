package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives everything passed to Report and ReportPanic.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler replaces DefaultHandler. Nil restores a LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func currentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report passes err to the handler, stamping a missing timestamp. Panic
// errors without a stack get the reporter's stack.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if err.Kind == KindPanic && err.StackTrace == "" {
		err.StackTrace = CaptureStack()
	}
	if h := currentHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic passes a recovered panic to the handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if h := currentHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover reports a panic in op and swallows it. It must be deferred
// directly:
//
//	defer errors.Recover("dom.Dispatch.pointerdown")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(newPanic(op, r))
	}
}

// Guard runs fn for surface. A panic inside fn is reported to HandlePanic
// and comes back as a KindPanic error naming op and the surface; otherwise
// Guard returns nil.
func Guard(op, surface string, fn func()) (err *Error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		p := newPanic(op, r)
		ReportPanic(p)
		err = &Error{
			Op:         op,
			Kind:       KindPanic,
			Err:        p,
			Surface:    surface,
			StackTrace: p.StackTrace,
			Timestamp:  p.Timestamp,
		}
	}()
	fn()
	return nil
}

func newPanic(op string, value any) *PanicError {
	return &PanicError{
		Op:         op,
		Value:      value,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

const selfPrefix = "github.com/go-drift/ripplebutton/pkg/errors."

// CaptureStack formats the caller's stack. Leading frames from this package
// and the runtime's panic machinery are trimmed so the first frame is the
// code that failed.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	leading := true
	for {
		frame, more := frames.Next()
		if leading && (strings.HasPrefix(frame.Function, selfPrefix) || strings.HasPrefix(frame.Function, "runtime.")) {
			if !more {
				break
			}
			continue
		}
		leading = false
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
