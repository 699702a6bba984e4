package errors

import (
	"github.com/go-drift/ripplebutton/pkg/log"
)

// LogHandler is an ErrorHandler that writes through a structured logger.
type LogHandler struct {
	// Logger receives entries. Nil falls back to a stderr logger.
	Logger *log.Logger
	// Verbose includes stack traces.
	Verbose bool
}

func (h *LogHandler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	l, err := log.New(log.Options{})
	if err != nil {
		return nil
	}
	h.Logger = l
	return l
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	fields := map[string]any{"op": err.Op, "kind": err.Kind.String()}
	if err.Surface != "" {
		fields["surface"] = err.Surface
	}
	if h.Verbose && err.StackTrace != "" {
		fields["stack"] = err.StackTrace
	}
	h.logger().WithFields(fields).Error(err.Err, "ripplebutton error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := map[string]any{"op": err.Op, "value": err.Value}
	if h.Verbose && err.StackTrace != "" {
		fields["stack"] = err.StackTrace
	}
	h.logger().WithFields(fields).Error(nil, "ripplebutton panic")
}
