package bind

import "github.com/goliatone/go-formbind/pkg/dom"

// renderList fills a list target. Sequences rebuild the item children from
// scratch; anything else becomes the element's sole text content. Nested
// sequences nest a list of the same tag inside their item, to any depth. Item
// text goes in as text nodes, so it escapes on serialization no matter the
// populate mode.
func renderList(el *dom.Element, value any) {
	entries, ok := sequence(value)
	if !ok {
		el.SetText(Stringify(value))
		return
	}
	el.RemoveChildren()
	appendItems(el, entries)
}

func appendItems(list *dom.Element, entries []any) {
	for _, entry := range entries {
		item := dom.NewElement("li")
		if nested, ok := sequence(entry); ok {
			inner := dom.NewElement(list.Tag)
			appendItems(inner, nested)
			item.AppendChild(inner)
		} else {
			item.SetText(Stringify(entry))
		}
		list.AppendChild(item)
	}
}
