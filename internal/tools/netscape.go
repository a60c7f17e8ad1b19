package tools

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"linkmind/internal/models"
)

// ParseNetscapeExport extracts bookmarks from a Netscape bookmark file,
// the de-facto HTML export format of every major browser. Each <A> anchor
// becomes one bookmark; HREF is required, TAGS is an optional
// comma-separated attribute some browsers emit.
func ParseNetscapeExport(raw []byte) ([]models.Bookmark, error) {
	doc, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse bookmark html: %w", err)
	}

	var bookmarks []models.Bookmark
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if b, ok := anchorToBookmark(n); ok {
				bookmarks = append(bookmarks, b)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return bookmarks, nil
}

func anchorToBookmark(n *html.Node) (models.Bookmark, bool) {
	var href, tagsAttr string
	for _, attr := range n.Attr {
		switch strings.ToLower(attr.Key) {
		case "href":
			href = attr.Val
		case "tags":
			tagsAttr = attr.Val
		}
	}
	if href == "" {
		return models.Bookmark{}, false
	}

	var tags []string
	if tagsAttr != "" {
		for _, t := range strings.Split(tagsAttr, ",") {
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				tags = append(tags, trimmed)
			}
		}
	}

	return models.Bookmark{
		URL:   href,
		Title: strings.TrimSpace(nodeText(n)),
		Tags:  tags,
	}, true
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		} else {
			b.WriteString(nodeText(c))
		}
	}
	return b.String()
}
