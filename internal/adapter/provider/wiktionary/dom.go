package wiktionary

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var multiSpaceRe = regexp.MustCompile(`[\s\x{00A0}]+`)

// cleanText collapses runs of whitespace (including no-break spaces) into a
// single space and trims the result.
func cleanText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// hasClass reports whether n carries class among its space-separated classes.
func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func isElement(n *html.Node, a atom.Atom) bool {
	return n != nil && n.Type == html.ElementNode && n.DataAtom == a
}

// findByID returns the first element in document order with the given id.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		if v, ok := attr(n, "id"); ok && v == id {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// children returns the direct element children of n matching a and, when
// class is non-empty, carrying that class.
func children(n *html.Node, a atom.Atom, class string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !isElement(c, a) {
			continue
		}
		if class != "" && !hasClass(c, class) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// writeText appends every descendant text node of n to b, in document order,
// skipping subtrees for which skip returns true.
func writeText(b *strings.Builder, n *html.Node, skip func(*html.Node) bool) {
	if skip != nil && skip(n) {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c, skip)
	}
}
