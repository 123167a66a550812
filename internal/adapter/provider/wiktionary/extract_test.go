package wiktionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/heartmarshall/ankiwiktionary/internal/domain"
)

func parseFixture(t *testing.T, name string) *html.Node {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()

	doc, err := html.Parse(f)
	require.NoError(t, err)
	return doc
}

func parseString(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func TestExtract_Palka(t *testing.T) {
	t.Parallel()

	w, err := Extract(parseFixture(t, "palka.html"), "палка")
	require.NoError(t, err)

	assert.Equal(t, "палка", w.Word)
	// Three class-less items; the mw-empty-elt item and the second list are ignored.
	require.Len(t, w.Meanings, 3)

	m0 := w.Meanings[0]
	assert.Equal(t, "длинный кусок дерева, ветви", m0.Definition)
	assert.Equal(t, []string{"Он опирался на палку.", "Взял палку и пошёл."}, m0.Examples)

	m1 := w.Meanings[1]
	assert.Equal(t, "разг. отметка в журнале", m1.Definition)
	assert.Equal(t, []string{"Поставил палку в журнале."}, m1.Examples)

	m2 := w.Meanings[2]
	assert.Equal(t, "жезл", m2.Definition)
	assert.NotNil(t, m2.Examples)
	assert.Empty(t, m2.Examples)
}

func TestExtract_ExamplesNeverLeakIntoDefinition(t *testing.T) {
	t.Parallel()

	w, err := Extract(parseFixture(t, "palka.html"), "палка")
	require.NoError(t, err)

	for _, m := range w.Meanings {
		assert.NotEmpty(t, m.Definition)
		assert.NotContains(t, m.Definition, "◆")
		assert.NotContains(t, m.Definition, "опирался")
		for _, ex := range m.Examples {
			assert.NotContains(t, ex, "Толстой")
			assert.NotContains(t, ex, "Чехов")
			assert.NotContains(t, ex, "Война и мир")
		}
	}
}

func TestExtract_NotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  *html.Node
	}{
		{name: "only class-bearing items", doc: parseFixture(t, "missing.html")},
		{name: "no content container", doc: parseString(t, `<html><body><ol><li>x</li></ol></body></html>`)},
		{name: "no list", doc: parseString(t, `<div id="mw-content-text"><div class="mw-parser-output"><p>x</p></div></div>`)},
		{name: "list nested too deep", doc: parseString(t, `<div id="mw-content-text"><div class="mw-parser-output"><div><ol><li>x</li></ol></div></div></div>`)},
		{name: "empty list", doc: parseString(t, `<div id="mw-content-text"><div class="mw-parser-output"><ol></ol></div></div>`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Extract(tt.doc, "невалидслово")
			require.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestExtract_MeaningCountMatchesClassLessItems(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString(`<div id="mw-content-text"><div class="mw-parser-output"><ol>`)
	for i := 0; i < 7; i++ {
		b.WriteString(`<li>значение</li><li class="meta">метка</li>`)
	}
	b.WriteString(`</ol></div></div>`)

	w, err := Extract(parseString(t, b.String()), "слово")
	require.NoError(t, err)
	assert.Len(t, w.Meanings, 7)
	for _, m := range w.Meanings {
		assert.Equal(t, "значение", m.Definition)
	}
}

func TestExtract_NestedExampleDetailsOnlyDirectChildSkipped(t *testing.T) {
	t.Parallel()

	doc := parseString(t, `<div id="mw-content-text"><div class="mw-parser-output"><ol>
<li>смысл<span class="example-fullblock"><span class="example-block">Начало <i>курсив</i> конец <span class="example-details">Автор</span></span></span></li>
</ol></div></div>`)

	w, err := Extract(doc, "слово")
	require.NoError(t, err)
	require.Len(t, w.Meanings, 1)
	assert.Equal(t, "смысл", w.Meanings[0].Definition)
	assert.Equal(t, []string{"Начало курсив конец"}, w.Meanings[0].Examples)
}

func TestCleanText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "  a  b  ", want: "a b"},
		{in: "a  b", want: "a b"},
		{in: "line\n\tbreak", want: "line break"},
	}
	for _, tt := range tests {
		if got := cleanText(tt.in); got != tt.want {
			t.Errorf("cleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtract_CombinesListsOfEveryBodyBlock(t *testing.T) {
	t.Parallel()

	doc := parseString(t, `<div id="mw-content-text">
<div class="mw-parser-output"><ol><li>первое</li><li>второе</li></ol><ol><li>синоним</li></ol></div>
<div class="mw-parser-output"><p>без списка</p></div>
<div class="mw-parser-output"><ol><li class="meta">метка</li><li>третье</li></ol></div>
</div>`)

	w, err := Extract(doc, "слово")
	require.NoError(t, err)
	require.Len(t, w.Meanings, 3)
	assert.Equal(t, "первое", w.Meanings[0].Definition)
	assert.Equal(t, "второе", w.Meanings[1].Definition)
	assert.Equal(t, "третье", w.Meanings[2].Definition)
}

func TestExtract_ExampleOnlySenseKeepsEmptyDefinition(t *testing.T) {
	t.Parallel()

	doc := parseString(t, `<div id="mw-content-text"><div class="mw-parser-output"><ol>
<li><span class="example-fullblock"><span class="example-block">x</span></span></li>
</ol></div></div>`)

	w, err := Extract(doc, "слово")
	require.NoError(t, err)
	require.Len(t, w.Meanings, 1)
	assert.Equal(t, "", w.Meanings[0].Definition)
	assert.Equal(t, []string{"x"}, w.Meanings[0].Examples)
}

func TestExtract_CitationOnlyExampleDropped(t *testing.T) {
	t.Parallel()

	doc := parseString(t, `<div id="mw-content-text"><div class="mw-parser-output"><ol>
<li>смысл<span class="example-fullblock"><span class="example-block"> <span class="example-details">Автор</span></span></span><span class="example-fullblock"><span class="example-block">Пример.</span></span></li>
</ol></div></div>`)

	w, err := Extract(doc, "слово")
	require.NoError(t, err)
	require.Len(t, w.Meanings, 1)
	assert.Equal(t, []string{"Пример."}, w.Meanings[0].Examples)
}
