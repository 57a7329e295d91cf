package post

// Renderer is the contract an output format implements. Each method turns
// one block into its formatted text; Join glues the rendered blocks into the
// final artifact. Payload text is opaque to the builder; a renderer may
// escape it for its target markup but never rejects it.
type Renderer interface {
	// Format returns the token the renderer registers under.
	Format() string

	Title(text string) string
	Header(text string) string
	Paragraph(text string) string
	List(items []string) string

	Join(blocks []string) string
}
