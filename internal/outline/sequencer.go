package outline

import (
	"fmt"

	"github.com/vitrinehq/vitrine/internal/post"
)

// Sequence replays outline blocks into the builder, one append per block,
// in input order. It carries no state of its own; builder errors propagate
// unchanged.
func Sequence(b *post.Builder, blocks []Block) error {
	for i, block := range blocks {
		var err error
		switch block.Kind {
		case "title":
			err = b.AddTitle(block.Text)
		case "header":
			err = b.AddHeader(block.Text)
		case "paragraph":
			err = b.AddParagraph(block.Text)
		case "list":
			err = b.AddList(block.Items)
		default:
			// Parse validation rejects unknown kinds; this only triggers on
			// hand-built blocks.
			err = fmt.Errorf("outline: block %d has unknown kind %q", i, block.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Compose is the one-call path from a parsed outline to an artifact: it
// sequences every block into the builder and renders the result.
func Compose(b *post.Builder, o *Outline) (string, error) {
	if err := Sequence(b, o.Blocks); err != nil {
		return "", err
	}
	return b.Build()
}
