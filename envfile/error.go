package envfile

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Category groups error kinds by the layer that reports them.
type Category int

const (
	CategoryUnknown Category = iota // unknown
	CategoryParsing                 // parsing
	CategoryNaming                  // naming
	CategoryAccess                  // access
	CategoryUsage                   // usage
)

// String returns the lowercase name of the category.
func (c Category) String() string {
	switch c {
	case CategoryParsing:
		return "parsing"
	case CategoryNaming:
		return "naming"
	case CategoryAccess:
		return "access"
	case CategoryUsage:
		return "usage"
	default:
		return "unknown"
	}
}

// Kind identifies a specific error condition.
// Two errors with the same Kind match under [errors.Is].
type Kind int

const (
	KindUnknown Kind = iota

	// Structural grammar violations.
	KindMissingEqSeparator
	KindNestedBlock
	KindEmptyInput
	KindBlockNeverOpened
	KindReservedWord
	KindDuplicateBlock
	KindDuplicateVariable
	KindUnclosedBlock
	KindMalformedTags

	// Identifier character-set violations.
	KindNameEmpty
	KindStartsWithInvalidCharacter
	KindContainsInvalidCharacter

	// Lookups, moves and I/O.
	KindBlockNotFound
	KindVariableNotFound
	KindDefaultBlockNotMovable
	KindFileError
	KindReadInput

	// Command-line usage.
	KindUnknownCommand
	KindNoOperation
	KindNoInput
	KindFailedToParseArgs
	KindNotFormatted
)

var kindNames = map[Kind]string{
	KindMissingEqSeparator:         "MissingEqSeparator",
	KindNestedBlock:                "NestedBlock",
	KindEmptyInput:                 "EmptyInput",
	KindBlockNeverOpened:           "BlockNeverOpened",
	KindReservedWord:               "ReservedWord",
	KindDuplicateBlock:             "DuplicateBlock",
	KindDuplicateVariable:          "DuplicateVariable",
	KindUnclosedBlock:              "UnclosedBlock",
	KindMalformedTags:              "MalformedTags",
	KindNameEmpty:                  "NameEmpty",
	KindStartsWithInvalidCharacter: "StartsWithInvalidCharacter",
	KindContainsInvalidCharacter:   "ContainsInvalidCharacter",
	KindBlockNotFound:              "BlockNotFound",
	KindVariableNotFound:           "VariableNotFound",
	KindDefaultBlockNotMovable:     "DefaultBlockNotMovable",
	KindFileError:                  "FileError",
	KindReadInput:                  "ReadInput",
	KindUnknownCommand:             "UnknownCommand",
	KindNoOperation:                "NoOperationFound",
	KindNoInput:                    "NoInputFound",
	KindFailedToParseArgs:          "FailedToParseArgs",
	KindNotFormatted:               "NotFormatted",
}

// String returns the name of the error kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return "Unknown"
}

// Category returns the category the kind belongs to.
func (k Kind) Category() Category {
	switch {
	case k >= KindMissingEqSeparator && k <= KindMalformedTags:
		return CategoryParsing
	case k >= KindNameEmpty && k <= KindContainsInvalidCharacter:
		return CategoryNaming
	case k >= KindBlockNotFound && k <= KindReadInput:
		return CategoryAccess
	case k >= KindUnknownCommand && k <= KindNotFormatted:
		return CategoryUsage
	default:
		return CategoryUnknown
	}
}

// Predefined errors (sentinel values).
var (
	ErrMissingEqSeparator = NewError(KindMissingEqSeparator, "missing key and optional value separator")
	ErrNestedBlock        = NewError(KindNestedBlock, "block can not wrap another block")
	ErrEmptyInput         = NewError(KindEmptyInput, "empty input")
	ErrBlockNeverOpened   = NewError(KindBlockNeverOpened, "closed block was never opened")
	ErrReservedWord       = NewError(KindReservedWord, "reserved keyword")
	ErrDuplicateBlock     = NewError(KindDuplicateBlock, "duplicate block")
	ErrDuplicateVariable  = NewError(KindDuplicateVariable, "duplicate variable")
	ErrUnclosedBlock      = NewError(KindUnclosedBlock, "block was never closed")
	ErrMalformedTags      = NewError(KindMalformedTags, "malformed block tags")

	ErrNameEmpty                  = NewError(KindNameEmpty, "name can not be empty")
	ErrStartsWithInvalidCharacter = NewError(KindStartsWithInvalidCharacter, "name starts with invalid character")
	ErrContainsInvalidCharacter   = NewError(KindContainsInvalidCharacter, "name contains invalid character")

	ErrBlockNotFound          = NewError(KindBlockNotFound, "block not found")
	ErrVariableNotFound       = NewError(KindVariableNotFound, "variable not found")
	ErrDefaultBlockNotMovable = NewError(KindDefaultBlockNotMovable, "default block is not movable")
	ErrFileError              = NewError(KindFileError, "error reading file")
	ErrReadInput              = NewError(KindReadInput, "failed to read input")

	ErrUnknownCommand    = NewError(KindUnknownCommand, "unknown command")
	ErrNoOperation       = NewError(KindNoOperation, "no operation found")
	ErrNoInput           = NewError(KindNoInput, "no input found")
	ErrFailedToParseArgs = NewError(KindFailedToParseArgs, "failed to parse arguments")
	ErrNotFormatted      = NewError(KindNotFormatted, "input is not formatted")
)

// Error represents an error with a kind and optional structured logging
// attributes. It implements both error and slog.LogValuer interfaces.
type Error struct {
	kind  Kind
	msg   string
	hint  string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error of the given kind with a message.
func NewError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// errorf creates an Error of the given kind with a formatted message.
// A non-negative line is reported 1-based as a message prefix and attribute.
func errorf(kind Kind, line int, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	e := &Error{kind: kind, msg: msg}

	if line >= 0 {
		e.msg = "line " + strconv.Itoa(line+1) + ": " + msg
		e.attrs = []slog.Attr{slog.Int("line", line+1)}
	}

	return e
}

// Kind returns the kind of error.
func (e *Error) Kind() Kind { return e.kind }

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	s := strings.Join(part, ": ")
	if e.hint != "" {
		s += "; " + e.hint
	}

	return s
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error of the same, known kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.kind == KindUnknown {
		return false
	}

	return t.kind == e.kind
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+4)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.kind != KindUnknown {
		attrs = append(attrs,
			slog.String("kind", e.kind.String()),
			slog.String("category", e.kind.Category().String()),
		)
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Attrs returns a copy of the structured logging attributes.
func (e *Error) Attrs() []slog.Attr {
	return append([]slog.Attr(nil), e.attrs...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		kind:  e.kind,
		msg:   e.msg,
		hint:  e.hint,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		kind:  e.kind,
		msg:   e.msg,
		hint:  e.hint,
		err:   e.err,
		attrs: newAttrs,
	}
}

// WithHint returns a copy of the error whose message ends with hint.
func (e *Error) WithHint(hint string) *Error {
	return &Error{
		kind:  e.kind,
		msg:   e.msg,
		hint:  hint,
		err:   e.err,
		attrs: e.attrs,
	}
}

// WrapError converts err into an *Error, returning err itself when it
// already is one.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

func missingEqSeparator(line int) *Error {
	return errorf(KindMissingEqSeparator, line,
		"missing key and optional value separator")
}

func nestedBlock(line int, open string) *Error {
	return errorf(KindNestedBlock, line,
		"block %q can not wrap another block", open).
		With(slog.String("block", open))
}

func blockNeverOpened(line int) *Error {
	return errorf(KindBlockNeverOpened, line, "closed block was never opened")
}

func reservedWord(line int, name string) *Error {
	return errorf(KindReservedWord, line, "you can not use keyword %q", name).
		With(slog.String("name", name))
}

func duplicateBlock(name string) *Error {
	return errorf(KindDuplicateBlock, -1, "duplicate block %q found", name).
		With(slog.String("block", name))
}

func duplicateVariable(key, block string) *Error {
	return errorf(KindDuplicateVariable, -1,
		"duplicate variable %q found in block %q", key, block).
		With(slog.String("variable", key), slog.String("block", block))
}

func unclosedBlock(line int, name string) *Error {
	return errorf(KindUnclosedBlock, line, "block %q was never closed", name).
		With(slog.String("block", name))
}

func malformedTags(line int, header string) *Error {
	return errorf(KindMalformedTags, line, "malformed tag list in %q", header).
		With(slog.String("header", header))
}

func nameEmpty(line int, token TokenKind) *Error {
	return errorf(KindNameEmpty, line, "%s name can not be empty", token).
		With(slog.String("token", token.String()))
}

func startsWithInvalid(line int, token TokenKind, ch rune) *Error {
	return errorf(KindStartsWithInvalidCharacter, line,
		"%s name starts with invalid character %q", token, string(ch)).
		With(slog.String("token", token.String()), slog.String("char", string(ch)))
}

func containsInvalid(line int, token TokenKind, ch rune) *Error {
	return errorf(KindContainsInvalidCharacter, line,
		"%s name contains invalid character %q", token, string(ch)).
		With(slog.String("token", token.String()), slog.String("char", string(ch)))
}

func blockNotFound(name string) *Error {
	return errorf(KindBlockNotFound, -1, "block %q was not found", name).
		With(slog.String("block", name))
}

func variableNotFound(key, block string) *Error {
	return errorf(KindVariableNotFound, -1,
		"variable %q not found in block %q", key, block).
		With(slog.String("variable", key), slog.String("block", block))
}

func fileError(path string, err error) *Error {
	return errorf(KindFileError, -1, "error reading file %q", path).
		With(slog.String("path", path)).
		Wrap(err)
}
