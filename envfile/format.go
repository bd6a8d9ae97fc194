package envfile

import (
	"io"
	"strings"
)

// String returns the block in its canonical text form.
//
// The default block is written as its bare lines. A named block is wrapped in
// block-open and block-close markers.
func (b *Block) String() string {
	var sb strings.Builder

	if !b.IsDefault() {
		sb.WriteString(b.header())
		sb.WriteByte('\n')
	}

	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(l.String())
	}

	if !b.IsDefault() {
		if len(b.lines) > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(BlockCloseMarker)
	}

	return sb.String()
}

// trimTrailingEmpty returns a view of b without its trailing empty lines.
// The view shares storage with b and is only fit for serialization.
func (b *Block) trimTrailingEmpty() *Block {
	n := len(b.lines)
	for n > 0 && b.lines[n-1].Kind() == LineEmpty {
		n--
	}

	if n == len(b.lines) {
		return b
	}

	view := *b
	view.lines = b.lines[:n]

	return &view
}

// String returns the document in its canonical text form: blocks in order
// separated by a blank line, with a single trailing newline.
//
// Unlike a literal join of every block, an empty default block is omitted
// when the document has other blocks. Trailing empty lines of the default
// block are dropped in that case too, since the separator stands in for them.
func (d *Document) String() string {
	part := make([]string, 0, len(d.blocks))

	for i, b := range d.blocks {
		if i == 0 && len(d.blocks) > 1 {
			if b = b.trimTrailingEmpty(); b.IsEmpty() {
				continue
			}
		}

		part = append(part, b.String())
	}

	return strings.Join(part, "\n\n") + "\n"
}

// WriteTo implements io.WriterTo by writing the canonical text form of the
// document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())

	return int64(n), err
}

// Format writes the canonical text form of the document to w.
func (d *Document) Format(w io.Writer) error {
	_, err := d.WriteTo(w)

	return err
}
