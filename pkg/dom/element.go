package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Kind is the routing class of an element, resolved once at classification
// time. Every typed read and write dispatches on it.
type Kind string

const (
	KindTextInput Kind = "text-input"
	KindCheckbox  Kind = "checkbox"
	KindRadio     Kind = "radio"
	KindFileInput Kind = "file-input"
	KindTextArea  Kind = "textarea"
	KindSelect    Kind = "select"
	KindMedia     Kind = "media"
	KindAnchor    Kind = "anchor"
	KindList      Kind = "list"
	KindGeneric   Kind = "generic"
)

// Element wraps an element node together with its resolved routing class.
type Element struct {
	Node *html.Node
	Kind Kind
	Tag  string
	// InputType holds the normalized type attribute for input elements,
	// defaulting to "text" when absent.
	InputType string
}

// AsElement classifies a node. It returns false for nil and non-element nodes.
func AsElement(node *html.Node) (*Element, bool) {
	if node == nil || node.Type != html.ElementNode {
		return nil, false
	}
	el := &Element{Node: node, Tag: strings.ToLower(node.Data)}
	if el.Tag == "input" {
		typ, _ := el.Attr("type")
		el.InputType = strings.ToLower(strings.TrimSpace(typ))
		if el.InputType == "" {
			el.InputType = "text"
		}
	}
	el.Kind = classify(el.Tag, el.InputType)
	return el, true
}

// NewElement creates a detached element of the given tag.
func NewElement(tag string) *Element {
	tag = strings.ToLower(strings.TrimSpace(tag))
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	el, _ := AsElement(node)
	return el
}

func classify(tag, inputType string) Kind {
	switch tag {
	case "input":
		switch inputType {
		case "checkbox":
			return KindCheckbox
		case "radio":
			return KindRadio
		case "file":
			return KindFileInput
		default:
			// text, hidden, email, number, date and friends all take a
			// plain value write.
			return KindTextInput
		}
	case "textarea":
		return KindTextArea
	case "select":
		return KindSelect
	case "img", "video", "audio", "iframe", "frame", "embed":
		return KindMedia
	case "a":
		return KindAnchor
	case "ul", "ol":
		return KindList
	default:
		return KindGeneric
	}
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, attr := range e.Node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present, regardless of value.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttr sets or replaces the named attribute.
func (e *Element) SetAttr(name, value string) {
	name = strings.ToLower(name)
	for i := range e.Node.Attr {
		if e.Node.Attr[i].Namespace == "" && e.Node.Attr[i].Key == name {
			e.Node.Attr[i].Val = value
			return
		}
	}
	e.Node.Attr = append(e.Node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr deletes the named attribute when present.
func (e *Element) RemoveAttr(name string) {
	name = strings.ToLower(name)
	kept := e.Node.Attr[:0]
	for _, attr := range e.Node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			continue
		}
		kept = append(kept, attr)
	}
	e.Node.Attr = kept
}

// Name returns the name attribute, the primary binding key.
func (e *Element) Name() string {
	v, _ := e.Attr("name")
	return v
}

// ID returns the id attribute, the fallback binding key.
func (e *Element) ID() string {
	v, _ := e.Attr("id")
	return v
}

// Key returns the binding key the element answers to: name when present,
// otherwise id.
func (e *Element) Key() string {
	if name := e.Name(); name != "" {
		return name
	}
	return e.ID()
}

// Value returns the control value. Textareas read their text content;
// checkboxes and radios without a value attribute default to "on" the way
// the value IDL attribute does.
func (e *Element) Value() string {
	switch e.Kind {
	case KindTextArea:
		return e.Text()
	case KindCheckbox, KindRadio:
		if v, ok := e.Attr("value"); ok {
			return v
		}
		return "on"
	default:
		v, _ := e.Attr("value")
		return v
	}
}

// SetValue writes the control value. Textareas store it as text content.
func (e *Element) SetValue(value string) {
	if e.Kind == KindTextArea {
		e.SetText(value)
		return
	}
	e.SetAttr("value", value)
}

// Checked reports the checked state of a checkbox or radio.
func (e *Element) Checked() bool {
	return e.HasAttr("checked")
}

// SetChecked toggles the checked attribute.
func (e *Element) SetChecked(on bool) {
	if on {
		e.SetAttr("checked", "")
		return
	}
	e.RemoveAttr("checked")
}

// Selected reports whether an option carries the selected attribute.
func (e *Element) Selected() bool {
	return e.HasAttr("selected")
}

// SetSelected toggles the selected attribute.
func (e *Element) SetSelected(on bool) {
	if on {
		e.SetAttr("selected", "")
		return
	}
	e.RemoveAttr("selected")
}

// Multiple reports whether a select accepts multiple selections.
func (e *Element) Multiple() bool {
	return e.HasAttr("multiple")
}

// Options returns the option elements under a select in document order,
// descending through optgroup wrappers.
func (e *Element) Options() []*Element {
	var options []*Element
	walkChildren(e.Node, func(node *html.Node) {
		if node.Type != html.ElementNode || !strings.EqualFold(node.Data, "option") {
			return
		}
		if opt, ok := AsElement(node); ok {
			options = append(options, opt)
		}
	})
	return options
}

// OptionValue returns the submission value of an option: the value attribute
// when present (including an empty one), otherwise the whitespace-collapsed
// option text.
func (e *Element) OptionValue() string {
	if v, ok := e.Attr("value"); ok {
		return v
	}
	return strings.Join(strings.Fields(e.Text()), " ")
}

// Source returns the src attribute of a media element.
func (e *Element) Source() string {
	v, _ := e.Attr("src")
	return v
}

// SetSource writes the src attribute.
func (e *Element) SetSource(value string) {
	e.SetAttr("src", value)
}

// Href returns the href attribute of an anchor.
func (e *Element) Href() string {
	v, _ := e.Attr("href")
	return v
}

// SetHref writes the href attribute.
func (e *Element) SetHref(value string) {
	e.SetAttr("href", value)
}

// Text returns the concatenated text content of the element's subtree.
func (e *Element) Text() string {
	var b strings.Builder
	walkChildren(e.Node, func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
	})
	return b.String()
}

// SetText replaces the element's children with a single text node. Text nodes
// escape on serialization, so markup in value never becomes structure.
func (e *Element) SetText(value string) {
	e.RemoveChildren()
	if value == "" {
		return
	}
	e.Node.AppendChild(&html.Node{Type: html.TextNode, Data: value})
}

// InnerHTML serializes the element's children.
func (e *Element) InnerHTML() (string, error) {
	var b strings.Builder
	for child := e.Node.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&b, child); err != nil {
			return "", fmt.Errorf("dom: render children: %w", err)
		}
	}
	return b.String(), nil
}

// SetMarkup parses markup as a fragment in the element's own context and
// replaces the element's children with the result.
func (e *Element) SetMarkup(markup string) error {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     e.Tag,
		DataAtom: e.Node.DataAtom,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return fmt.Errorf("dom: parse fragment: %w", err)
	}
	e.RemoveChildren()
	for _, node := range nodes {
		e.Node.AppendChild(node)
	}
	return nil
}

// RemoveChildren detaches every child of the element.
func (e *Element) RemoveChildren() {
	for child := e.Node.FirstChild; child != nil; {
		next := child.NextSibling
		e.Node.RemoveChild(child)
		child = next
	}
}

// AppendChild attaches another element as the last child.
func (e *Element) AppendChild(child *Element) {
	e.Node.AppendChild(child.Node)
}

func walkChildren(root *html.Node, visit func(*html.Node)) {
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		walkNode(child, visit)
	}
}

func walkNode(node *html.Node, visit func(*html.Node)) {
	visit(node)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		walkNode(child, visit)
	}
}
