// Package extract reduces HTML evidence fragments to scannable text.
package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// VisibleText parses an HTML fragment and returns its visible text,
// skipping script, style, noscript, and iframe subtrees. Retrieval
// sometimes stores evidence snippets as raw HTML; the compliance scanner
// only matches against what a reader would actually see.
func VisibleText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String()), nil
}
