package htmlutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Projection turns a node into a single string of text.
type Projection func(node *html.Node) string

// GetText joins every descendant text node of `node` in document order.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// FirstText returns the first descendant text node of `node` in document
// order, or "" if there is none. whitespace-only text nodes count.
func FirstText(node *html.Node) string {
	text, _ := firstTextRecursive(node)
	return text
}

func firstTextRecursive(node *html.Node) (string, bool) {
	if node == nil {
		return "", false
	}
	if node.Type == html.TextNode {
		return node.Data, true
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		text, found := firstTextRecursive(child)
		if found {
			return text, true
		}
	}
	return "", false
}

// TrimmedTexts applies `project` to every node in the selection and trims
// surrounding whitespace off the result.
func TrimmedTexts(sel *goquery.Selection, project Projection) []string {
	texts := make([]string, len(sel.Nodes))
	for i, n := range sel.Nodes {
		texts[i] = strings.TrimSpace(project(n))
	}
	return texts
}
