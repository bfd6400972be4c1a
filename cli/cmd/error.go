package cmd

import "log/slog"

var (
	// ErrNoSource indicates that none of the requested source inputs could
	// be opened for reading.
	ErrNoSource = NewError("no readable source input")

	// ErrWriteConfig indicates a failure to write the configuration file.
	ErrWriteConfig = NewError("write configuration file")

	// ErrFileExists indicates the target file exists and would be
	// overwritten.
	ErrFileExists = NewError("file exists (use --force to overwrite)")
)

// Error is a structured error carrying attributes for logging.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError creates a new Error with the given message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.err != nil:
		return e.err.Error()
	default:
		return e.msg
	}
}

// Unwrap returns the wrapped error, if any.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an Error carrying this error's message.
// Errors derived from a package sentinel by Wrap or With keep its message,
// so errors.Is matches them against the sentinel at any depth.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && e.msg != "" && e.msg == t.msg
}

// Wrap returns a copy of e wrapping err.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, attrs: e.attrs}
}

// With returns a copy of e carrying the given attributes.
func (e *Error) With(attrs ...slog.Attr) *Error {
	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: append(e.attrs[:len(e.attrs):len(e.attrs)], attrs...),
	}
}

// LogValue implements [slog.LogValuer] so the attached attributes appear
// as structured fields when the error is logged.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)
	attrs = append(attrs, slog.String("msg", e.msg))

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}
