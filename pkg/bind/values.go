package bind

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formbind/pkg/dom"
)

// Values holds extracted control state: a string scalar or []string sequence
// per key. Keys that resolved to nothing, or to checkbox groups with nothing
// checked, are absent rather than nil.
type Values map[string]any

// String returns the scalar stored at key.
func (v Values) String(key string) (string, bool) {
	s, ok := v[key].(string)
	return s, ok
}

// Strings returns the sequence stored at key, wrapping a scalar when needed.
func (v Values) Strings(key string) ([]string, bool) {
	switch entry := v[key].(type) {
	case []string:
		return entry, true
	case string:
		return []string{entry}, true
	default:
		return nil, false
	}
}

// Values reads current control state for the requested keys. Blank keys and
// keys matching nothing are skipped; a key whose read fails is logged and
// omitted. Checkbox groups extract asymmetrically on purpose: one checked box
// yields a scalar, several yield a sequence, none drops the key. Multiple
// selects always yield a sequence, even an empty one. Other multi-element
// groups yield one string per member; a member whose own read is a sequence,
// such as a multiple select, flattens to its comma-joined form.
func (b *Binder) Values(container *html.Node, keys ...string) (Values, error) {
	if err := checkContainer(container); err != nil {
		return nil, err
	}

	out := make(Values, len(keys))
	for _, key := range keys {
		if strings.TrimSpace(key) == "" {
			b.logger.Warn("blank extraction key skipped")
			continue
		}
		group := dom.Resolve(container, key)
		if len(group) == 0 {
			b.logger.Debug("no elements matched extraction key", "key", key)
			continue
		}
		value, ok, err := b.extractGroup(group)
		if err != nil {
			b.logger.Warn("extraction failed for key", "key", key, "error", err)
			continue
		}
		if !ok {
			continue
		}
		out[key] = value
	}
	return out, nil
}

func (b *Binder) extractGroup(group []*dom.Element) (any, bool, error) {
	switch {
	case group[0].Kind == dom.KindRadio:
		for _, el := range group {
			if el.Checked() {
				return el.Value(), true, nil
			}
		}
		return "", true, nil
	case group[0].Kind == dom.KindCheckbox:
		var checked []string
		for _, el := range group {
			if el.Checked() {
				checked = append(checked, el.Value())
			}
		}
		switch len(checked) {
		case 0:
			return nil, false, nil
		case 1:
			return checked[0], true, nil
		default:
			return checked, true, nil
		}
	case len(group) > 1:
		out := make([]string, 0, len(group))
		for _, el := range group {
			value, err := b.extractElement(el)
			if err != nil {
				return nil, false, err
			}
			out = append(out, Stringify(value))
		}
		return out, true, nil
	default:
		value, err := b.extractElement(group[0])
		if err != nil {
			return nil, false, err
		}
		return value, true, nil
	}
}

// extractElement is the typed read table, mirroring the write table in
// populate.go.
func (b *Binder) extractElement(el *dom.Element) (any, error) {
	switch el.Kind {
	case dom.KindTextInput:
		if widget, ok := b.widgets.NumericFor(el.Node); ok {
			value, err := widget.NumericString()
			if err != nil {
				return nil, fmt.Errorf("bind: numeric read: %w", err)
			}
			return value, nil
		}
		return el.Value(), nil
	case dom.KindCheckbox, dom.KindRadio:
		// reached only inside mixed groups; checked state gates the value
		if el.Checked() {
			return el.Value(), nil
		}
		return "", nil
	case dom.KindFileInput, dom.KindTextArea:
		return el.Value(), nil
	case dom.KindSelect:
		return extractSelect(el), nil
	case dom.KindMedia:
		return el.Source(), nil
	case dom.KindAnchor:
		return el.Href(), nil
	default:
		if text := el.Text(); text != "" {
			return text, nil
		}
		markup, err := el.InnerHTML()
		if err != nil {
			return nil, fmt.Errorf("bind: read markup: %w", err)
		}
		return markup, nil
	}
}

// extractSelect returns every selected option for multiple selects, keeping
// the sequence shape even when empty. Single selects yield a scalar, the
// empty string when nothing is selected.
func extractSelect(el *dom.Element) any {
	options := el.Options()
	if el.Multiple() {
		selected := make([]string, 0, len(options))
		for _, opt := range options {
			if opt.Selected() {
				selected = append(selected, opt.OptionValue())
			}
		}
		return selected
	}
	for _, opt := range options {
		if opt.Selected() {
			return opt.OptionValue()
		}
	}
	return ""
}
