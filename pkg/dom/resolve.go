package dom

import "golang.org/x/net/html"

// Resolve returns the element group bound to key inside container. Every
// descendant whose name attribute equals the key wins outright; only when no
// name matches does the first descendant whose id equals the key stand in as
// a one-element group. The two match modes never mix. Resolution walks the
// tree in document order and absence is an empty group, not an error.
func Resolve(container *html.Node, key string) []*Element {
	if container == nil || key == "" {
		return nil
	}

	var byName []*Element
	var byID *Element
	walkChildren(container, func(node *html.Node) {
		el, ok := AsElement(node)
		if !ok {
			return
		}
		if el.Name() == key {
			byName = append(byName, el)
			return
		}
		if byID == nil && el.ID() == key {
			byID = el
		}
	})

	if len(byName) > 0 {
		return byName
	}
	if byID != nil {
		return []*Element{byID}
	}
	return nil
}

// ControlKeys enumerates the distinct binding keys of the form controls under
// container in document order. Controls without a name fall back to their id;
// controls with neither are skipped.
func ControlKeys(container *html.Node) []string {
	if container == nil {
		return nil
	}

	var keys []string
	seen := make(map[string]struct{})
	walkChildren(container, func(node *html.Node) {
		el, ok := AsElement(node)
		if !ok {
			return
		}
		switch el.Tag {
		case "input", "select", "textarea":
		default:
			return
		}
		key := el.Key()
		if key == "" {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	})
	return keys
}

// FindFirst returns the first descendant element with the given tag name, or
// nil when none exists.
func FindFirst(root *html.Node, tag string) *Element {
	if root == nil || tag == "" {
		return nil
	}
	var found *Element
	walkChildren(root, func(node *html.Node) {
		if found != nil {
			return
		}
		el, ok := AsElement(node)
		if ok && el.Tag == tag {
			found = el
		}
	})
	return found
}
