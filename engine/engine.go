package engine

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/envmn/envfile"
	"github.com/ardnew/envmn/log"
)

// Op identifies an engine operation.
type Op int

const (
	OpNone   Op = iota // none
	OpLint             // lint
	OpFormat           // format
	OpList             // list
	OpPick             // pick
)

// String returns the command name of the operation.
func (o Op) String() string {
	switch o {
	case OpLint:
		return "lint"
	case OpFormat:
		return "format"
	case OpList:
		return "list"
	case OpPick:
		return "pick"
	default:
		return "none"
	}
}

// Request describes one operation and its parameters.
// Fields not used by Op are ignored.
type Request struct {
	Op Op

	// Format
	Check bool
	Diff  bool

	// List
	Output Encoding
	Filter string

	// Pick
	Block string
}

// Engine runs operations over a single document.
type Engine struct {
	doc       *envfile.Document
	source    string
	hasSource bool
	name      string
}

// Option configures an Engine.
type Option func(Engine) Engine

// WithSource records the text doc was parsed from. Format check and diff
// compare against it.
func WithSource(src string) Option {
	return func(e Engine) Engine {
		e.source = src
		e.hasSource = true

		return e
	}
}

// WithName sets the display name of the input used in logs and diff headers.
func WithName(name string) Option {
	return func(e Engine) Engine {
		e.name = name

		return e
	}
}

// New returns an Engine over doc.
func New(doc *envfile.Document, opts ...Option) *Engine {
	e := Engine{doc: doc, name: "-"}

	for _, opt := range opts {
		e = opt(e)
	}

	return &e
}

// Load parses src and returns an Engine over the result, named name.
func Load(name, src string, opts ...envfile.Option) (*Engine, error) {
	doc, err := envfile.ParseString(src, opts...)
	if err != nil {
		return nil, envfile.WrapError(err).With(slog.String("input", name))
	}

	return New(doc, WithSource(src), WithName(name)), nil
}

// Document returns the document the engine operates on.
func (e *Engine) Document() *envfile.Document { return e.doc }

// Name returns the display name of the input.
func (e *Engine) Name() string { return e.name }

// Run executes req, writing any output to w.
//
// A request without an operation fails with NoOperationFound.
func (e *Engine) Run(ctx context.Context, w io.Writer, req Request) error {
	log.DebugContext(ctx, "engine run",
		slog.String("op", req.Op.String()),
		slog.String("input", e.name),
	)

	switch req.Op {
	case OpLint:
		return e.lint(ctx)
	case OpFormat:
		return e.format(ctx, w, req.Check, req.Diff)
	case OpList:
		return e.list(ctx, w, req.Output, req.Filter)
	case OpPick:
		return e.pick(ctx, w, req.Block)
	default:
		return envfile.ErrNoOperation
	}
}
