package post

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// tagRenderer renders each block as a compact tag so order and payload are
// trivially assertable without format noise.
type tagRenderer struct{}

func (tagRenderer) Format() string { return "tag" }

func (tagRenderer) Title(text string) string { return "T(" + text + ")" }

func (tagRenderer) Header(text string) string { return "H(" + text + ")" }

func (tagRenderer) Paragraph(text string) string { return "P(" + text + ")" }

func (tagRenderer) List(items []string) string { return "L(" + strings.Join(items, ",") + ")" }

func (tagRenderer) Join(blocks []string) string { return strings.Join(blocks, "|") }

func TestBuilder_RenderOrderMatchesAppendOrder(t *testing.T) {
	b := NewBuilderWith(tagRenderer{})

	require.NoError(t, b.AddTitle("t"))
	require.NoError(t, b.AddParagraph("p1"))
	require.NoError(t, b.AddHeader("h"))
	require.NoError(t, b.AddList([]string{"a", "b"}))
	require.NoError(t, b.AddParagraph("p2"))

	out, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "T(t)|P(p1)|H(h)|L(a,b)|P(p2)", out)
}

func TestBuilder_MultipleTitlesStayIndependent(t *testing.T) {
	b := NewBuilderWith(tagRenderer{})

	require.NoError(t, b.AddTitle("one"))
	require.NoError(t, b.AddTitle("two"))

	out, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "T(one)|T(two)", out)
}

func TestBuilder_EmptyListIsNotAnError(t *testing.T) {
	b := NewBuilderWith(tagRenderer{})

	require.NoError(t, b.AddList(nil))
	require.NoError(t, b.AddList([]string{}))

	out, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "L()|L()", out)
}

func TestBuilder_EmptyBuild(t *testing.T) {
	b := NewBuilderWith(tagRenderer{})

	out, err := b.Build()
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestBuilder_PayloadIsOpaque(t *testing.T) {
	b := NewBuilderWith(tagRenderer{})

	require.NoError(t, b.AddTitle(""))
	require.NoError(t, b.AddParagraph("  spaces\tand\ttabs  "))

	out, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "T()|P(  spaces\tand\ttabs  )", out)
}

func TestBuilder_BuildSealsAgainstAppends(t *testing.T) {
	b := NewBuilderWith(tagRenderer{})
	require.NoError(t, b.AddTitle("t"))

	_, err := b.Build()
	require.NoError(t, err)
	require.True(t, b.Sealed())

	for name, op := range map[string]func() error{
		"AddTitle":     func() error { return b.AddTitle("x") },
		"AddHeader":    func() error { return b.AddHeader("x") },
		"AddParagraph": func() error { return b.AddParagraph("x") },
		"AddList":      func() error { return b.AddList([]string{"x"}) },
	} {
		err := op()
		var sealed *SealedError
		require.ErrorAs(t, err, &sealed, "%s must fail on a sealed builder", name)
		require.Equal(t, name, sealed.Op)
		require.True(t, errors.Is(err, &SealedError{}))
	}
}

func TestBuilder_RepeatedBuildIsDeterministic(t *testing.T) {
	b := NewBuilderWith(tagRenderer{})
	require.NoError(t, b.AddTitle("t"))
	require.NoError(t, b.AddList([]string{"a"}))

	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Len(t, b.Blocks(), 2, "Build must not mutate accumulated blocks")
}

func TestBuilder_ListItemsAreCopied(t *testing.T) {
	b := NewBuilderWith(tagRenderer{})

	items := []string{"a", "b"}
	require.NoError(t, b.AddList(items))
	items[0] = "mutated"

	out, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "L(a,b)", out)
}

func BenchmarkBuilderBuild(b *testing.B) {
	builder := NewBuilderWith(tagRenderer{})
	for i := 0; i < 100; i++ {
		_ = builder.AddParagraph("paragraph body")
		_ = builder.AddList([]string{"a", "b", "c"})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Build(); err != nil {
			b.Fatal(err)
		}
	}
}

func TestFormatRegistry_NewBuilder(t *testing.T) {
	ResetFormats()
	require.NoError(t, RegisterFormat(tagRenderer{}))

	b, err := NewBuilder("tag")
	require.NoError(t, err)
	require.Equal(t, "tag", b.Format())
}

func TestFormatRegistry_UnknownFormat(t *testing.T) {
	ResetFormats()

	_, err := NewBuilder("docx")
	require.Error(t, err)

	var unknown *UnknownFormatError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "docx", unknown.Format)
}

func TestFormatRegistry_PreventsDuplicateFormat(t *testing.T) {
	ResetFormats()

	require.NoError(t, RegisterFormat(tagRenderer{}))
	require.Error(t, RegisterFormat(tagRenderer{}))
}

func TestFormatRegistry_FormatsSorted(t *testing.T) {
	ResetFormats()
	require.NoError(t, RegisterFormat(tagRenderer{}))

	require.Equal(t, []string{"tag"}, Formats())
}
