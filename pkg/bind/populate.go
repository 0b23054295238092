package bind

import (
	"fmt"
	"sort"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formbind/pkg/dom"
)

// Populate routes every entry of data onto the elements of container. Keys
// resolve by name first, id second; keys matching nothing are skipped. A
// failing key is logged and does not stop the remaining keys, and there is no
// rollback: keys routed before a failure stay routed. Only the container and
// data preconditions fail the whole call, before any mutation.
func (b *Binder) Populate(container *html.Node, data map[string]any, opts ...PopulateOption) error {
	if err := checkContainer(container); err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("bind: data must be a non-nil map: %w", ErrTypeMismatch)
	}

	cfg := populateConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		group := dom.Resolve(container, key)
		if len(group) == 0 {
			b.logger.Debug("no elements matched binding key", "key", key)
			continue
		}
		if err := b.routeKey(group, data[key], &cfg); err != nil {
			b.logger.Warn("populate failed for key", "key", key, "error", err)
		}
		applyGroupAttrs(group, cfg.attrs[key])
	}
	return nil
}

func checkContainer(container *html.Node) error {
	if container == nil || (container.Type != html.ElementNode && container.Type != html.DocumentNode) {
		return fmt.Errorf("bind: container must be an element or document node: %w", ErrTypeMismatch)
	}
	return nil
}

// routeKey picks the group strategy: radio and checkbox groups carry their
// own check-state semantics, other multi-element groups fan out, and a lone
// element takes its typed write directly.
func (b *Binder) routeKey(group []*dom.Element, value any, cfg *populateConfig) error {
	switch {
	case group[0].Kind == dom.KindRadio:
		setRadioGroup(group, value)
		return nil
	case group[0].Kind == dom.KindCheckbox:
		setCheckboxGroup(group, value)
		return nil
	case len(group) > 1:
		return b.fanOut(group, value, cfg)
	default:
		return b.setElement(group[0], value, cfg)
	}
}

// setRadioGroup checks exactly the radios whose own value matches loosely.
// nil unchecks the whole group.
func setRadioGroup(group []*dom.Element, value any) {
	if value == nil {
		for _, el := range group {
			el.SetChecked(false)
		}
		return
	}
	for _, el := range group {
		el.SetChecked(looseEqual(el.Value(), value))
	}
}

// setCheckboxGroup checks membership: the value normalizes to a sequence
// (scalars wrap into one) and each box checks iff its own value matches an
// entry loosely. nil and the empty sequence uncheck everything.
func setCheckboxGroup(group []*dom.Element, value any) {
	entries, ok := sequence(value)
	if !ok && value != nil {
		entries = []any{value}
	}

	want := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		want[Stringify(entry)] = struct{}{}
	}
	for _, el := range group {
		_, on := want[el.Value()]
		el.SetChecked(on)
	}
}

// fanOut routes a value across a same-key group. Sequences land positionally:
// entry i goes to element i, a short sequence blanks the tail, and extra
// entries are dropped. Scalars broadcast to every element.
func (b *Binder) fanOut(group []*dom.Element, value any, cfg *populateConfig) error {
	entries, isSeq := sequence(value)

	var firstErr error
	for i, el := range group {
		routed := value
		if isSeq {
			routed = any("")
			if i < len(entries) {
				routed = entries[i]
			}
		}
		if err := b.setElement(el, routed, cfg); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// setElement is the typed write table, dispatching on the element kind
// resolved at classification time.
func (b *Binder) setElement(el *dom.Element, value any, cfg *populateConfig) error {
	switch el.Kind {
	case dom.KindTextInput:
		if widget, ok := b.widgets.NumericFor(el.Node); ok {
			if value == nil {
				return widget.Clear()
			}
			return widget.Set(Stringify(value))
		}
		el.SetValue(Stringify(value))
	case dom.KindCheckbox:
		setCheckboxGroup([]*dom.Element{el}, value)
	case dom.KindRadio:
		setRadioGroup([]*dom.Element{el}, value)
	case dom.KindFileInput:
		// user-agent owned; never written
	case dom.KindTextArea:
		el.SetValue(Stringify(value))
	case dom.KindSelect:
		return b.applySelect(el, value)
	case dom.KindMedia:
		el.SetSource(Stringify(value))
	case dom.KindAnchor:
		el.SetHref(Stringify(value))
	case dom.KindList:
		renderList(el, value)
	default:
		return b.setContent(el, value, cfg)
	}
	return nil
}

// setContent fills a generic content element. Sanitize mode inserts the value
// as text, which escapes on serialization; raw markup mode parses it as a
// fragment, laundered through the configured policy when one is present.
func (b *Binder) setContent(el *dom.Element, value any, cfg *populateConfig) error {
	content := Stringify(value)
	if !cfg.rawMarkup {
		el.SetText(content)
		return nil
	}
	if b.policy != nil {
		content = b.policy.Sanitize(content)
	}
	if err := el.SetMarkup(content); err != nil {
		return fmt.Errorf("bind: set markup: %w", err)
	}
	return nil
}

func applyGroupAttrs(group []*dom.Element, attrs dom.Attrs) {
	if len(attrs) == 0 {
		return
	}
	for _, el := range group {
		dom.ApplyAttrs(el, attrs)
	}
}
