package testsupport

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formbind/pkg/dom"
)

// MustParseDocument parses markup into a document node. Testing helpers fail
// the test on error to keep fixtures concise.
func MustParseDocument(t *testing.T, markup string) *html.Node {
	t.Helper()

	doc, err := dom.ParseDocument(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

// Container parses markup and returns its body element, the usual binding
// container in tests.
func Container(t *testing.T, markup string) *html.Node {
	t.Helper()

	body := dom.FindFirst(MustParseDocument(t, markup), "body")
	if body == nil {
		t.Fatalf("fixture has no body element")
	}
	return body.Node
}

// FindKey resolves key inside container and returns the first element of the
// group, failing the test when nothing matches.
func FindKey(t *testing.T, container *html.Node, key string) *dom.Element {
	t.Helper()

	group := dom.Resolve(container, key)
	if len(group) == 0 {
		t.Fatalf("no element for key %q", key)
	}
	return group[0]
}

// FindAll resolves key inside container and returns the whole group, failing
// the test when nothing matches.
func FindAll(t *testing.T, container *html.Node, key string) []*dom.Element {
	t.Helper()

	group := dom.Resolve(container, key)
	if len(group) == 0 {
		t.Fatalf("no elements for key %q", key)
	}
	return group
}

// Render serializes a node for markup assertions.
func Render(t *testing.T, node *html.Node) string {
	t.Helper()

	out, err := dom.RenderNode(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}
