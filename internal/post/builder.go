package post

// BlockKind tags one accumulated content block.
type BlockKind string

const (
	KindTitle     BlockKind = "title"
	KindHeader    BlockKind = "header"
	KindParagraph BlockKind = "paragraph"
	KindList      BlockKind = "list"
)

// Block is one content unit. Text carries the payload for title, header and
// paragraph blocks; Items carries the entries of a list block.
type Block struct {
	Kind  BlockKind
	Text  string
	Items []string
}

// Builder accumulates blocks in append order and renders them through its
// Renderer on Build. Append is the only mutation: blocks are never reordered
// or removed.
//
// Build seals the builder: subsequent appends fail with *SealedError, while
// Build itself may be called again and deterministically re-renders the same
// blocks. A Builder is not safe for concurrent use; compose with one builder
// per goroutine.
type Builder struct {
	renderer Renderer
	blocks   []Block
	sealed   bool
}

// NewBuilderWith wraps an explicit renderer, bypassing the format registry.
// Most callers use NewBuilder with a format token instead.
func NewBuilderWith(r Renderer) *Builder {
	return &Builder{renderer: r}
}

// Format returns the token of the renderer backing this builder.
func (b *Builder) Format() string {
	return b.renderer.Format()
}

// Blocks returns the accumulated blocks in append order.
func (b *Builder) Blocks() []Block {
	return b.blocks
}

// Sealed reports whether Build has been called.
func (b *Builder) Sealed() bool {
	return b.sealed
}

func (b *Builder) append(op string, blk Block) error {
	if b.sealed {
		return &SealedError{Op: op}
	}
	b.blocks = append(b.blocks, blk)
	return nil
}

// AddTitle appends a title block. Titles are not unique; each call appends
// an independent block in order.
func (b *Builder) AddTitle(text string) error {
	return b.append("AddTitle", Block{Kind: KindTitle, Text: text})
}

// AddHeader appends a header block.
func (b *Builder) AddHeader(text string) error {
	return b.append("AddHeader", Block{Kind: KindHeader, Text: text})
}

// AddParagraph appends a paragraph block.
func (b *Builder) AddParagraph(text string) error {
	return b.append("AddParagraph", Block{Kind: KindParagraph, Text: text})
}

// AddList appends a single list block holding items in the given order. An
// empty or nil slice is valid and renders zero entries.
func (b *Builder) AddList(items []string) error {
	return b.append("AddList", Block{Kind: KindList, Items: append([]string(nil), items...)})
}

// Build renders every block in append order into the final artifact and
// seals the builder.
func (b *Builder) Build() (string, error) {
	rendered := make([]string, len(b.blocks))
	for i, blk := range b.blocks {
		switch blk.Kind {
		case KindTitle:
			rendered[i] = b.renderer.Title(blk.Text)
		case KindHeader:
			rendered[i] = b.renderer.Header(blk.Text)
		case KindParagraph:
			rendered[i] = b.renderer.Paragraph(blk.Text)
		case KindList:
			rendered[i] = b.renderer.List(blk.Items)
		}
	}

	b.sealed = true
	return b.renderer.Join(rendered), nil
}
