package envfile

import (
	"iter"
	"slices"
	"strings"
)

// Block is a named, ordered collection of lines.
//
// Variable keys are unique within a block; comments and empty lines may
// repeat. Lines keep their insertion order.
type Block struct {
	name  string
	tags  []string
	lines []Line
	keys  map[string]int // variable key -> index into lines
}

// NewBlock returns an empty block with the given name and tags.
// Duplicate tags are dropped, keeping the first occurrence.
func NewBlock(name string, tags ...string) *Block {
	b := &Block{
		name: name,
		keys: make(map[string]int),
	}

	for _, tag := range tags {
		if !slices.Contains(b.tags, tag) {
			b.tags = append(b.tags, tag)
		}
	}

	return b
}

func newDefaultBlock() *Block { return NewBlock(DefaultBlockName) }

// Name returns the block name.
func (b *Block) Name() string { return b.name }

// IsDefault reports whether b is the default block.
func (b *Block) IsDefault() bool { return b.name == DefaultBlockName }

// Tags returns a copy of the block tags in declaration order.
func (b *Block) Tags() []string { return slices.Clone(b.tags) }

// HasTag reports whether the block carries tag.
func (b *Block) HasTag(tag string) bool { return slices.Contains(b.tags, tag) }

// Len returns the number of lines in the block.
func (b *Block) Len() int { return len(b.lines) }

// IsEmpty reports whether the block has no lines.
func (b *Block) IsEmpty() bool { return len(b.lines) == 0 }

// Lines returns a copy of the block lines.
func (b *Block) Lines() []Line { return slices.Clone(b.lines) }

// All returns an iterator over the block lines in order.
func (b *Block) All() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for _, l := range b.lines {
			if !yield(l) {
				return
			}
		}
	}
}

// Equal reports whether b and o identify the same block: equal names and
// equal tag sets.
func (b *Block) Equal(o *Block) bool {
	if b == nil || o == nil {
		return b == o
	}

	if b.name != o.name || len(b.tags) != len(o.tags) {
		return false
	}

	for _, tag := range b.tags {
		if !o.HasTag(tag) {
			return false
		}
	}

	return true
}

// AddLine appends l to the block.
// A variable line whose key already exists fails with DuplicateVariable.
func (b *Block) AddLine(l Line) error {
	if v, ok := l.Variable(); ok {
		if _, exists := b.keys[v.Key]; exists {
			return duplicateVariable(v.Key, b.name)
		}

		b.keys[v.Key] = len(b.lines)
	}

	b.lines = append(b.lines, l)

	return nil
}

// AddVariable appends v to the block.
func (b *Block) AddVariable(v Variable) error { return b.AddLine(VariableLine(v)) }

// AddComment appends a comment line.
func (b *Block) AddComment(text string) { _ = b.AddLine(CommentLine(text)) }

// AddEmpty appends an empty separator line.
func (b *Block) AddEmpty() { _ = b.AddLine(EmptyLine()) }

// Variable returns the variable with the given key.
func (b *Block) Variable(key string) (Variable, bool) {
	i, ok := b.keys[key]
	if !ok {
		return Variable{}, false
	}

	return b.lines[i].variable, true
}

// Variables returns the variables of the block in order, skipping comments
// and empty lines.
func (b *Block) Variables() []Variable {
	vars := make([]Variable, 0, len(b.keys))

	for _, l := range b.lines {
		if v, ok := l.Variable(); ok {
			vars = append(vars, v)
		}
	}

	return vars
}

// Comments returns the number of comment lines in the block.
func (b *Block) Comments() int {
	n := 0

	for _, l := range b.lines {
		if l.Kind() == LineComment {
			n++
		}
	}

	return n
}

// UpdateVariable replaces the value of the variable with key v.Key in place.
func (b *Block) UpdateVariable(v Variable) error {
	i, ok := b.keys[v.Key]
	if !ok {
		return variableNotFound(v.Key, b.name)
	}

	b.lines[i] = VariableLine(v)

	return nil
}

// RemoveVariable deletes the variable with the given key.
func (b *Block) RemoveVariable(key string) error {
	i, ok := b.keys[key]
	if !ok {
		return variableNotFound(key, b.name)
	}

	b.lines = slices.Delete(b.lines, i, i+1)
	b.reindex(i)

	return nil
}

// Clear removes every line from the block.
func (b *Block) Clear() {
	b.lines = nil
	b.keys = make(map[string]int)
}

// reindex rebuilds key positions for lines at or after from.
func (b *Block) reindex(from int) {
	for key, i := range b.keys {
		if i >= from {
			delete(b.keys, key)
		}
	}

	for i := from; i < len(b.lines); i++ {
		if v, ok := b.lines[i].Variable(); ok {
			b.keys[v.Key] = i
		}
	}
}

// header returns the block-open line, including tags.
func (b *Block) header() string {
	var sb strings.Builder

	sb.WriteString(BlockOpenMarker)
	sb.WriteByte(' ')
	sb.WriteString(b.name)

	if len(b.tags) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(TagsOpen)
		sb.WriteString(strings.Join(b.tags, " "))
		sb.WriteString(TagsClose)
	}

	return sb.String()
}
