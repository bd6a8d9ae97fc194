package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/envmn/envfile"
	"github.com/ardnew/envmn/log"
)

// Encoding selects the output format of the list operation.
type Encoding string

const (
	EncodingText Encoding = "text"
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// Encodings lists the supported list encodings.
func Encodings() []string {
	return []string{string(EncodingText), string(EncodingJSON), string(EncodingYAML)}
}

// Block summarizes one block for listing. It is also the environment of list
// filter expressions, where fields are addressed by their expr names.
type Block struct {
	Name      string   `expr:"name"       json:"name"           yaml:"name"`
	Tags      []string `expr:"tags"       json:"tags,omitempty" yaml:"tags,omitempty"`
	Default   bool     `expr:"is_default" json:"default"        yaml:"default"`
	Keys      []string `expr:"keys"       json:"keys"           yaml:"keys"`
	Variables int      `expr:"variables"  json:"variables"      yaml:"variables"`
	Comments  int      `expr:"comments"   json:"comments"       yaml:"comments"`
	Lines     int      `expr:"lines"      json:"lines"          yaml:"lines"`
}

func summarize(b *envfile.Block) Block {
	vars := b.Variables()
	keys := make([]string, len(vars))

	for i, v := range vars {
		keys[i] = v.Key
	}

	return Block{
		Name:      b.Name(),
		Tags:      b.Tags(),
		Default:   b.IsDefault(),
		Keys:      keys,
		Variables: len(vars),
		Comments:  b.Comments(),
		Lines:     b.Len(),
	}
}

// Listing is the encoded result of the list operation.
type Listing struct {
	Count  int     `json:"count"  yaml:"count"`
	Blocks []Block `json:"blocks" yaml:"blocks"`
}

// Names returns the listed block names in order.
func (l Listing) Names() []string {
	names := make([]string, len(l.Blocks))
	for i, b := range l.Blocks {
		names[i] = b.Name
	}

	return names
}

// Listing returns the blocks of the document in order, keeping only those for
// which filter evaluates to true. An empty filter keeps every block.
func (e *Engine) Listing(filter string) (Listing, error) {
	var program *vm.Program

	if strings.TrimSpace(filter) != "" {
		var err error

		program, err = expr.Compile(filter, expr.Env(Block{}), expr.AsBool())
		if err != nil {
			return Listing{}, envfile.ErrFailedToParseArgs.Wrap(err).
				With(slog.String("filter", filter))
		}
	}

	var l Listing

	for b := range e.doc.All() {
		info := summarize(b)

		if program != nil {
			out, err := expr.Run(program, info)
			if err != nil {
				return Listing{}, envfile.ErrFailedToParseArgs.Wrap(err).
					With(slog.String("filter", filter), slog.String("block", info.Name))
			}

			if keep, _ := out.(bool); !keep {
				continue
			}
		}

		l.Blocks = append(l.Blocks, info)
	}

	l.Count = len(l.Blocks)

	return l, nil
}

// list writes the block listing to w in the requested encoding.
func (e *Engine) list(ctx context.Context, w io.Writer, enc Encoding, filter string) error {
	l, err := e.Listing(filter)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "list",
		slog.String("input", e.name),
		slog.String("output", string(enc)),
		slog.Int("count", l.Count),
	)

	switch enc {
	case EncodingText, "":
		return writeText(w, l)

	case EncodingJSON:
		data, err := json.MarshalIndent(l, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(data))

		return err

	case EncodingYAML:
		data, err := yaml.MarshalContext(ctx, l, yaml.Indent(2), yaml.IndentSequence(true))
		if err != nil {
			return err
		}

		_, err = w.Write(data)

		return err

	default:
		return envfile.ErrFailedToParseArgs.
			With(slog.String("output", string(enc))).
			WithHint("expected one of " + strings.Join(Encodings(), ", "))
	}
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	bulletStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	defaultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

// writeText writes the human-readable listing. Styling is applied only when
// w is a terminal.
func writeText(w io.Writer, l Listing) error {
	var sb strings.Builder

	if !log.IsTerminal(w) {
		sb.WriteString("Blocks (" + strconv.Itoa(l.Count) + "):\n")

		for _, b := range l.Blocks {
			sb.WriteString("- " + b.Name + "\n")
		}

		_, err := io.WriteString(w, sb.String())

		return err
	}

	sb.WriteString(headerStyle.Render("Blocks (" + strconv.Itoa(l.Count) + "):"))
	sb.WriteByte('\n')

	for _, b := range l.Blocks {
		sb.WriteString(bulletStyle.Render("-") + " ")

		if b.Default {
			sb.WriteString(defaultStyle.Render(b.Name))
		} else {
			sb.WriteString(nameStyle.Render(b.Name))
		}

		if len(b.Tags) > 0 {
			sb.WriteString(" " + tagStyle.Render("["+strings.Join(b.Tags, " ")+"]"))
		}

		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
