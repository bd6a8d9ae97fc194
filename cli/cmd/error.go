package cmd

import (
	"errors"
	"log/slog"
)

// Error reports a failed side effect of a command on a file, such as writing
// the formatted document back or creating the configuration file.
// Problems with the document itself are reported by package envfile.
type Error struct {
	op   string
	path string
	err  error
}

// Error returns "<op> <path>: <cause>", omitting the parts that are unset.
func (e *Error) Error() string {
	s := e.op

	if e.path != "" {
		s += " " + e.path
	}

	if e.err != nil {
		s += ": " + e.err.Error()
	}

	return s
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel for the same operation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.op == e.op
}

func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 3)
	attrs = append(attrs, slog.String("op", e.op))

	if e.path != "" {
		attrs = append(attrs, slog.String("path", e.path))
	}

	if e.err != nil {
		attrs = append(attrs, slog.Any("cause", e.err))
	}

	return slog.GroupValue(attrs...)
}

// On returns a copy of e for the file at path.
func (e *Error) On(path string) *Error {
	return &Error{op: e.op, path: path, err: e.err}
}

// Wrap returns a copy of e caused by err.
func (e *Error) Wrap(err error) *Error {
	return &Error{op: e.op, path: e.path, err: err}
}

var (
	ErrWriteConfig = &Error{op: "write configuration file"}
	ErrWriteFile   = &Error{op: "write file"}
	ErrLockFile    = &Error{op: "lock file"}

	ErrFileExists = errors.New("file exists (use --force to overwrite)")
)
