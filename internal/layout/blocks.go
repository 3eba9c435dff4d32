// Package layout defines the block model the section renderers produce and
// the engine that turns it into a paginated PDF: blocks become a single
// HTML document that headless Chrome prints with the configured page size
// and margins.
package layout

// Block is one element of the document flow. Implementations are
// Paragraph, Spacer, Divider, and Group, always used as values.
type Block interface {
	block()
}

// Paragraph is a single styled text block. Text may contain the inline
// markup produced by the formatting package (<b>, <i>, <a>).
type Paragraph struct {
	Text  string
	Style string
}

// Spacer is fixed vertical whitespace, in points.
type Spacer struct {
	Height float64
}

// Divider is the horizontal rule drawn under section headers. Width and
// Thickness are in points.
type Divider struct {
	Width     float64
	Thickness float64
	Color     string
}

// Group holds blocks that must not be split across a page boundary.
type Group struct {
	Blocks []Block
}

func (Paragraph) block() {}
func (Spacer) block()    {}
func (Divider) block()   {}
func (Group) block()     {}

// Story is the ordered block sequence accumulated by the section renderers
// before it is handed to a Document.
type Story struct {
	blocks []Block
}

// Append adds blocks to the end of the story.
func (s *Story) Append(blocks ...Block) {
	s.blocks = append(s.blocks, blocks...)
}

// Blocks returns the accumulated sequence.
func (s *Story) Blocks() []Block {
	return s.blocks
}

// Len returns the number of top-level blocks.
func (s *Story) Len() int {
	return len(s.blocks)
}
