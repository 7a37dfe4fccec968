package segment

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags are elements that force a line break around their text, so
// headers rendered as <h2>/<p> blocks stay on their own lines for
// section detection
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"section": true, "article": true, "table": true, "ul": true, "ol": true,
}

// StripHTML extracts the visible text of an HTML memo export, skipping
// scripts and styles and inserting line breaks at block boundaries
func StripHTML(htmlContent string) (string, error) {
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
			if blockTags[n.Data] {
				buf.WriteString("\n")
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

		if n.Type == html.ElementNode && blockTags[n.Data] {
			buf.WriteString("\n")
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String()), nil
}
