package htmlformat

import (
	"html"
	"strings"

	"github.com/vitrinehq/vitrine/internal/post"
)

// Format is the token the HTML renderer registers under.
const Format = "html"

type renderer struct{}

// New creates the HTML renderer. Payload text is escaped for markup safety;
// beyond that it is passed through untouched.
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
	return "<h1>" + html.EscapeString(text) + "</h1>"
}

func (renderer) Header(text string) string {
	return "<h2>" + html.EscapeString(text) + "</h2>"
}

func (renderer) Paragraph(text string) string {
	return "<p>" + html.EscapeString(text) + "</p>"
}

func (renderer) List(items []string) string {
	var sb strings.Builder
	sb.WriteString("<ul>")
	for _, item := range items {
		sb.WriteString("\n  <li>")
		sb.WriteString(html.EscapeString(item))
		sb.WriteString("</li>")
	}
	if len(items) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString("</ul>")
	return sb.String()
}

func (renderer) Join(blocks []string) string {
	return strings.Join(blocks, "\n")
}
