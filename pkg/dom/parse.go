package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseDocument parses a full HTML document. The parser supplies the usual
// html/head/body scaffolding when the input omits it.
func ParseDocument(r io.Reader) (*html.Node, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse document: %w", err)
	}
	return node, nil
}

// RenderNode serializes a node and its subtree back to markup.
func RenderNode(node *html.Node) (string, error) {
	if node == nil {
		return "", fmt.Errorf("dom: node is required")
	}
	var b strings.Builder
	if err := html.Render(&b, node); err != nil {
		return "", fmt.Errorf("dom: render: %w", err)
	}
	return b.String(), nil
}
