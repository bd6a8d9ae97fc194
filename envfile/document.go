package envfile

import (
	"iter"
	"slices"
)

// Document is an ordered collection of uniquely named blocks.
//
// The default block always exists and is always first.
type Document struct {
	blocks []*Block
	names  map[string]int // block name -> index into blocks
}

// NewDocument returns a document holding only an empty default block.
func NewDocument() *Document {
	return &Document{
		blocks: []*Block{newDefaultBlock()},
		names:  map[string]int{DefaultBlockName: 0},
	}
}

// AddBlock appends b to the document.
// A block whose name is already present, including the default block, fails
// with DuplicateBlock.
func (d *Document) AddBlock(b *Block) error {
	if _, exists := d.names[b.name]; exists {
		return duplicateBlock(b.name)
	}

	d.names[b.name] = len(d.blocks)
	d.blocks = append(d.blocks, b)

	return nil
}

// Block returns the block with the given name.
func (d *Document) Block(name string) (*Block, bool) {
	i, ok := d.names[name]
	if !ok {
		return nil, false
	}

	return d.blocks[i], true
}

// Default returns the default block.
func (d *Document) Default() *Block { return d.blocks[0] }

// Blocks returns the blocks in document order, default block first.
func (d *Document) Blocks() []*Block { return slices.Clone(d.blocks) }

// All returns an iterator over the blocks in document order.
func (d *Document) All() iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		for _, b := range d.blocks {
			if !yield(b) {
				return
			}
		}
	}
}

// Names returns the block names in document order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.blocks))
	for _, b := range d.blocks {
		names = append(names, b.name)
	}

	return names
}

// Index returns the position of the named block, or -1 if it is absent.
func (d *Document) Index(name string) int {
	if i, ok := d.names[name]; ok {
		return i
	}

	return -1
}

// Len returns the number of blocks, including the default block.
func (d *Document) Len() int { return len(d.blocks) }

// Pick moves the named block after every other block, preserving the
// relative order of the rest.
//
// Picking the default block fails with DefaultBlockNotMovable; picking an
// unknown name fails with BlockNotFound.
func (d *Document) Pick(name string) error {
	if name == DefaultBlockName {
		return ErrDefaultBlockNotMovable
	}

	i, ok := d.names[name]
	if !ok {
		return blockNotFound(name)
	}

	last := len(d.blocks) - 1
	if i == last {
		return nil
	}

	b := d.blocks[i]
	d.blocks = append(slices.Delete(d.blocks, i, i+1), b)

	for j := i; j <= last; j++ {
		d.names[d.blocks[j].name] = j
	}

	return nil
}
