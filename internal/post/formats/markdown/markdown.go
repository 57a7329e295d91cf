package markdownformat

import (
	"strings"

	"github.com/vitrinehq/vitrine/internal/post"
)

// Format is the token the markdown renderer registers under.
const Format = "markdown"

type renderer struct{}

// New creates the markdown renderer.
func New() post.Renderer {
	return renderer{}
}

func init() {
	if err := post.RegisterFormat(New()); err != nil {
		panic(err)
	}
}

func (renderer) Format() string { return Format }

func (renderer) Title(text string) string {
	return "# " + text
}

func (renderer) Header(text string) string {
	return "## " + text
}

// Paragraph keeps a trailing newline so the block separator leaves a blank
// line after the text.
func (renderer) Paragraph(text string) string {
	return text + "\n"
}

func (renderer) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("* ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (renderer) Join(blocks []string) string {
	return strings.Join(blocks, "\n")
}
