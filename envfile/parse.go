package envfile

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"
)

// options configures the parser behavior.
type options struct {
	keepEmpty     bool
	allowUnclosed bool
}

// Option applies a configuration option to the parser.
type Option func(options) options

// WithKeepEmpty records blank lines as [LineEmpty] lines instead of
// discarding them. Blank lines outside blocks are kept only until the first
// block opens; after that they are separators and always discarded.
func WithKeepEmpty(enable bool) Option {
	return func(o options) options {
		o.keepEmpty = enable

		return o
	}
}

// WithAllowUnclosed accepts a block still open at end of input, inserting it
// as though it had been closed. By default an unclosed block fails with
// UnclosedBlock.
func WithAllowUnclosed(enable bool) Option {
	return func(o options) options {
		o.allowUnclosed = enable

		return o
	}
}

func makeOptions(opts ...Option) options {
	var o options

	for _, opt := range opts {
		o = opt(o)
	}

	return o
}

// state is the parser position: outside any block when pending is nil,
// otherwise inside pending, which was opened on line opened. Once a block has
// been opened, seen stays set for the rest of the input.
type state struct {
	pending *Block
	opened  int
	seen    bool
}

// target returns the block that receives comment and variable lines.
func (s state) target(doc *Document) *Block {
	if s.pending != nil {
		return s.pending
	}

	return doc.Default()
}

// ParseString parses input and returns the resulting document.
func ParseString(input string, opts ...Option) (*Document, error) {
	return parse(input, makeOptions(opts...))
}

// Parse parses the bytes in input.
func Parse(input []byte, opts ...Option) (*Document, error) {
	return parse(string(input), makeOptions(opts...))
}

// ParseReader reads all of r and parses it.
func ParseReader(r io.Reader, opts ...Option) (*Document, error) {
	buf, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return parse(string(buf), makeOptions(opts...))
}

// ParseFile reads the file at path and parses its content.
func ParseFile(path string, opts ...Option) (*Document, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fileError(path, err)
	}

	doc, err := parse(string(buf), makeOptions(opts...))
	if err != nil {
		return nil, WrapError(err).With(slog.String("path", path))
	}

	return doc, nil
}

func parse(input string, o options) (*Document, error) {
	if input == "" {
		return nil, ErrEmptyInput
	}

	doc := NewDocument()

	var (
		s   state
		err error
		idx int
	)

	for raw := range strings.Lines(input) {
		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")

		s, err = s.step(doc, idx, line, o)
		if err != nil {
			return nil, err
		}

		idx++
	}

	if s.pending != nil {
		if !o.allowUnclosed {
			return nil, unclosedBlock(s.opened, s.pending.name)
		}

		if err := doc.AddBlock(s.pending); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// step consumes one line and returns the next parser state.
func (s state) step(doc *Document, idx int, line string, o options) (state, error) {
	switch {
	case strings.HasPrefix(line, BlockOpenMarker):
		if s.pending != nil {
			return s, nestedBlock(idx, s.pending.name)
		}

		block, err := parseHeader(idx, strings.TrimPrefix(line, BlockOpenMarker))
		if err != nil {
			return s, err
		}

		return state{pending: block, opened: idx, seen: true}, nil

	case strings.HasPrefix(line, BlockCloseMarker):
		if s.pending == nil {
			return s, blockNeverOpened(idx)
		}

		if err := doc.AddBlock(s.pending); err != nil {
			return s, err
		}

		return state{seen: true}, nil

	case strings.HasPrefix(line, CommentMarker):
		text := strings.TrimLeftFunc(strings.TrimPrefix(line, CommentMarker), unicode.IsSpace)
		s.target(doc).AddComment(text)

		return s, nil

	case strings.TrimSpace(line) == "":
		if o.keepEmpty && (s.pending != nil || !s.seen) {
			s.target(doc).AddEmpty()
		}

		return s, nil

	default:
		key, value, ok := strings.Cut(line, Separator)
		if !ok {
			return s, missingEqSeparator(idx)
		}

		if err := ValidateVariableName(idx, key); err != nil {
			return s, err
		}

		target := s.target(doc)
		if err := target.AddVariable(NewVariable(key, value)); err != nil {
			return s, WrapError(err).With(slog.Int("line", idx+1))
		}

		return s, nil
	}
}

// parseHeader builds a block from the text following the block-open marker:
// a name optionally followed by a bracketed, space-separated tag list.
func parseHeader(idx int, header string) (*Block, error) {
	header = strings.TrimSpace(header)
	name, rest, hasTags := strings.Cut(header, TagsOpen)
	name = strings.TrimSpace(name)

	if name == DefaultBlockName {
		return nil, reservedWord(idx, name)
	}

	if err := ValidateBlockName(idx, name); err != nil {
		return nil, err
	}

	if !hasTags {
		return NewBlock(name), nil
	}

	list, trailing, closed := strings.Cut(rest, TagsClose)
	if !closed || strings.TrimSpace(trailing) != "" {
		return nil, malformedTags(idx, header)
	}

	tags := strings.Fields(list)
	for _, tag := range tags {
		if err := ValidateTag(idx, tag); err != nil {
			return nil, err
		}
	}

	return NewBlock(name, tags...), nil
}
