package envfile

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestParse_Structure(t *testing.T) {
	input := `# top comment
APP_ENV=dev

#@ database_block
# primary
DB_HOST=localhost
DB_URL=postgres://u:p@h/db?x=1
##

#@ api_block [prod eu]
API_KEY=
##
`

	doc, err := ParseString(input)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if got, want := doc.Names(), []string{"default", "database_block", "api_block"}; !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}

	def := doc.Default()
	if def.Len() != 2 || def.Lines()[0].Kind() != LineComment || def.Lines()[0].Text() != "top comment" {
		t.Errorf("unexpected default block lines: %v", def.Lines())
	}

	db, ok := doc.Block("database_block")
	if !ok {
		t.Fatal("database_block not found")
	}

	v, ok := db.Variable("DB_URL")
	if !ok || v.Value != "postgres://u:p@h/db?x=1" {
		t.Errorf("DB_URL = %+v, want value split on first '='", v)
	}

	api, _ := doc.Block("api_block")
	if got := api.Tags(); !slices.Equal(got, []string{"prod", "eu"}) {
		t.Errorf("Tags() = %v, want [prod eu]", got)
	}

	if v, ok := api.Variable("API_KEY"); !ok || v.Value != "" {
		t.Errorf("API_KEY = %+v, %v; want empty value", v, ok)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     *Error
		contains string
	}{
		{
			name:  "empty input",
			input: "",
			want:  ErrEmptyInput,
		},
		{
			name:     "missing separator",
			input:    "KEY=value\nNOVALUE\n",
			want:     ErrMissingEqSeparator,
			contains: "line 2",
		},
		{
			name:     "nested block",
			input:    "#@ outer\n#@ inner\n##\n##\n",
			want:     ErrNestedBlock,
			contains: `line 2: block "outer"`,
		},
		{
			name:     "close without open",
			input:    "KEY=value\n##\n",
			want:     ErrBlockNeverOpened,
			contains: "line 2",
		},
		{
			name:     "reserved default name",
			input:    "#@ default\nA=1\n##\n",
			want:     ErrReservedWord,
			contains: `"default"`,
		},
		{
			name:     "duplicate block",
			input:    "#@ a\nX=1\n##\n#@ a\nY=1\n##\n",
			want:     ErrDuplicateBlock,
			contains: `"a"`,
		},
		{
			name:     "duplicate variable in default",
			input:    "KEY=1\nKEY=2\n",
			want:     ErrDuplicateVariable,
			contains: `"KEY" found in block "default"`,
		},
		{
			name:     "duplicate variable in named block",
			input:    "#@ b\nKEY=1\nKEY=2\n##\n",
			want:     ErrDuplicateVariable,
			contains: `block "b"`,
		},
		{
			name:     "invalid block name",
			input:    "#@ Bad\n##\n",
			want:     ErrStartsWithInvalidCharacter,
			contains: "line 1",
		},
		{
			name:  "empty block name",
			input: "#@\n##\n",
			want:  ErrNameEmpty,
		},
		{
			name:     "invalid variable name",
			input:    "MY-KEY=1\n",
			want:     ErrContainsInvalidCharacter,
			contains: `"-"`,
		},
		{
			name:  "empty variable name",
			input: "=value\n",
			want:  ErrNameEmpty,
		},
		{
			name:     "indented comment is not a comment",
			input:    "  # note\n",
			want:     ErrMissingEqSeparator,
			contains: "line 1",
		},
		{
			name:     "unclosed block",
			input:    "#@ database_block\nDB_HOST=localhost\n",
			want:     ErrUnclosedBlock,
			contains: `line 1: block "database_block"`,
		},
		{
			name:  "unterminated tag list",
			input: "#@ a [x y\n##\n",
			want:  ErrMalformedTags,
		},
		{
			name:  "text after tag list",
			input: "#@ a [x] y\n##\n",
			want:  ErrMalformedTags,
		},
		{
			name:  "invalid tag",
			input: "#@ a [Prod]\n##\n",
			want:  ErrStartsWithInvalidCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseString(tt.input)
			if err == nil {
				t.Fatalf("expected error, got document:\n%s", doc)
			}

			if doc != nil {
				t.Errorf("expected nil document on error")
			}

			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v (%s), want kind %s", err, WrapError(err).Kind(), tt.want.Kind())
			}

			if tt.contains != "" && !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q should contain %q", err, tt.contains)
			}
		})
	}
}

func TestParse_WhitespaceOnlyInput(t *testing.T) {
	doc, err := ParseString("\n  \n\t\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if doc.Len() != 1 || !doc.Default().IsEmpty() {
		t.Errorf("expected only an empty default block, got %v", doc.Names())
	}
}

func TestParse_AllowUnclosed(t *testing.T) {
	doc, err := ParseString("#@ database_block\nDB_HOST=localhost\n", WithAllowUnclosed(true))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	b, ok := doc.Block("database_block")
	if !ok {
		t.Fatal("unclosed block should be inserted")
	}

	if _, ok := b.Variable("DB_HOST"); !ok {
		t.Error("DB_HOST missing from unclosed block")
	}
}

func TestParse_KeepEmpty(t *testing.T) {
	input := "A=1\n\n#@ b\nX=1\n\nY=2\n##\n"

	doc, err := ParseString(input, WithKeepEmpty(true))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	b, _ := doc.Block("b")

	kinds := make([]LineKind, 0, b.Len())
	for l := range b.All() {
		kinds = append(kinds, l.Kind())
	}

	wantKinds := []LineKind{LineVariable, LineEmpty, LineVariable}
	if !slices.Equal(kinds, wantKinds) {
		t.Errorf("line kinds = %v, want %v", kinds, wantKinds)
	}

	if got := doc.String(); got != input {
		t.Errorf("keep-empty format:\nwant: %q\ngot:  %q", input, got)
	}
}

func TestParse_KeepEmptyBetweenBlocks(t *testing.T) {
	doc, err := ParseString("#@ a\nX=1\n##\n\n#@ b\nY=1\n##\n", WithKeepEmpty(true))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if !doc.Default().IsEmpty() {
		t.Errorf("default block has %d lines, want 0", doc.Default().Len())
	}
}

func TestParse_KeepEmptyFixedPoint(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "separated blocks",
			input: "A=1\n\n#@ a\nX=1\n##\n\n#@ b\nY=1\n##\n",
			want:  "A=1\n\n#@ a\nX=1\n##\n\n#@ b\nY=1\n##\n",
		},
		{
			name:  "no default lines",
			input: "#@ a\nX=1\n##\n\n#@ b\nY=1\n##\n",
			want:  "#@ a\nX=1\n##\n\n#@ b\nY=1\n##\n",
		},
		{
			name:  "runs of blank lines",
			input: "\n\nA=1\n\n\n#@ a\n\nX=1\n\n##\n\n\n",
			want:  "\n\nA=1\n\n#@ a\n\nX=1\n\n##\n",
		},
		{
			name:  "only blank default",
			input: "\n#@ a\nX=1\n##\n",
			want:  "#@ a\nX=1\n##\n",
		},
		{
			name:  "default only",
			input: "A=1\n\n",
			want:  "A=1\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.input

			for pass := range 3 {
				doc, err := ParseString(out, WithKeepEmpty(true))
				if err != nil {
					t.Fatalf("pass %d: parse error: %v", pass, err)
				}

				out = doc.String()
				if out != tt.want {
					t.Fatalf("pass %d:\nwant: %q\ngot:  %q", pass, tt.want, out)
				}
			}
		})
	}
}

func TestParse_CRLF(t *testing.T) {
	doc, err := ParseString("KEY=value\r\n#@ b\r\nX=1\r\n##\r\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	v, _ := doc.Default().Variable("KEY")
	if v.Value != "value" {
		t.Errorf("KEY = %q, want %q", v.Value, "value")
	}
}

func TestParse_CommentsMayRepeat(t *testing.T) {
	doc, err := ParseString("# same\n# same\n#@ b\n#same\n#   same\n##\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	b, _ := doc.Block("b")
	if b.Comments() != 2 || doc.Default().Comments() != 2 {
		t.Errorf("expected duplicate comments to be kept")
	}

	for l := range b.All() {
		if l.Text() != "same" {
			t.Errorf("comment text = %q, want leading whitespace stripped", l.Text())
		}
	}
}

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(strings.NewReader("A=1\n"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if _, ok := doc.Default().Variable("A"); !ok {
		t.Error("A missing")
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")

	if err := os.WriteFile(path, []byte("#@ a\nX=1\n##\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	doc, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	if doc.Index("a") != 1 {
		t.Errorf("Index(a) = %d, want 1", doc.Index("a"))
	}

	_, err = ParseFile(filepath.Join(dir, "missing.env"))
	if !errors.Is(err, ErrFileError) {
		t.Fatalf("error = %v, want FileError", err)
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("FileError should wrap the I/O cause: %v", err)
	}

	if !strings.Contains(err.Error(), "missing.env") {
		t.Errorf("error %q should name the path", err)
	}
}
