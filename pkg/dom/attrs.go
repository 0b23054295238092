package dom

import "strings"

type attrOp uint8

const (
	attrSet attrOp = iota
	attrPresent
	attrRemove
)

// Attr is a single attribute directive. The three cases are distinct: remove
// the attribute, assert bare presence, or set an explicit value (the empty
// string included). Build one with AttrRemove, AttrPresent, or AttrSet.
type Attr struct {
	op    attrOp
	value string
}

// AttrSet returns a directive writing an explicit attribute value.
func AttrSet(value string) Attr {
	return Attr{op: attrSet, value: value}
}

// AttrPresent returns a directive asserting bare attribute presence, the
// boolean-attribute form (disabled, readonly, data-* markers).
func AttrPresent() Attr {
	return Attr{op: attrPresent}
}

// AttrRemove returns a directive deleting the attribute.
func AttrRemove() Attr {
	return Attr{op: attrRemove}
}

// Attrs maps attribute names to directives. data-* names flow through the
// same mechanism as everything else.
type Attrs map[string]Attr

// ApplyAttrs applies every directive to the element. Directives address
// independent attributes, so application order carries no meaning.
func ApplyAttrs(el *Element, attrs Attrs) {
	if el == nil || len(attrs) == 0 {
		return
	}
	for name, directive := range attrs {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		switch directive.op {
		case attrRemove:
			el.RemoveAttr(name)
		case attrPresent:
			el.SetAttr(name, "")
		default:
			el.SetAttr(name, directive.value)
		}
	}
}
