package wiktionary

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/heartmarshall/ankiwiktionary/internal/domain"
)

// Page markup class names.
const (
	classParserOutput  = "mw-parser-output"
	classExampleFull   = "example-fullblock"
	classExampleBlock  = "example-block"
	classExampleDetail = "example-details"
	contentTextID      = "mw-content-text"
)

// Extract builds a Word from a parsed article page. Senses are the class-less
// items of the first ordered list of every article body block, in page order;
// class-bearing items are metadata and skipped. A sense holding only examples
// keeps an empty definition. It returns domain.ErrNotFound when there are none.
func Extract(doc *html.Node, word string) (domain.Word, error) {
	items := senseItems(doc)
	if len(items) == 0 {
		return domain.Word{}, fmt.Errorf("word %q: no senses: %w", word, domain.ErrNotFound)
	}

	meanings := make([]domain.Meaning, 0, len(items))
	for _, li := range items {
		meanings = append(meanings, parseMeaning(li))
	}

	return domain.Word{Word: word, Meanings: meanings}, nil
}

func senseItems(doc *html.Node) []*html.Node {
	content := findByID(doc, contentTextID)
	if content == nil {
		return nil
	}

	var items []*html.Node
	for _, output := range children(content, atom.Div, classParserOutput) {
		lists := children(output, atom.Ol, "")
		if len(lists) == 0 {
			continue
		}

		for _, li := range children(lists[0], atom.Li, "") {
			if _, ok := attr(li, "class"); ok {
				continue
			}
			items = append(items, li)
		}
	}
	return items
}

func parseMeaning(li *html.Node) domain.Meaning {
	m := domain.Meaning{
		Definition: parseDefinition(li),
		Examples:   []string{},
	}
	for _, full := range children(li, atom.Span, classExampleFull) {
		for _, block := range children(full, atom.Span, classExampleBlock) {
			// A block holding only a citation leaves no text.
			if ex := parseExample(block); ex != "" {
				m.Examples = append(m.Examples, ex)
			}
		}
	}
	return m
}

// parseDefinition joins every text node of li that is not inside an example block.
func parseDefinition(li *html.Node) string {
	var b strings.Builder
	writeText(&b, li, func(n *html.Node) bool {
		return isElement(n, atom.Span) && hasClass(n, classExampleFull)
	})
	return cleanText(b.String())
}

// parseExample joins the text of an example block, dropping the citation span.
func parseExample(block *html.Node) string {
	var b strings.Builder
	for c := block.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, atom.Span) && hasClass(c, classExampleDetail) {
			continue
		}
		writeText(&b, c, nil)
	}
	return cleanText(b.String())
}
