package bind

import (
	"fmt"

	"github.com/goliatone/go-formbind/pkg/dom"
	"github.com/goliatone/go-formbind/pkg/widgets"
)

// applySelect drives every select write through the same fixed sequence:
// clear the native selection, clear whatever enhanced layer sits on top, stop
// on empty values, then hand the write to the highest-priority writer. A
// bound widget beats the legacy bridge, the bridge beats the native walk, and
// no writer ever falls back to a default option.
func (b *Binder) applySelect(el *dom.Element, value any) error {
	for _, opt := range el.Options() {
		opt.SetSelected(false)
	}

	widget, bound := b.widgets.SelectFor(el.Node)
	bridge, hasBridge := b.widgets.Bridge()
	bridged := !bound && hasBridge && el.HasAttr(b.widgets.BridgeMarker())

	if bound {
		if err := widget.Clear(true); err != nil {
			return fmt.Errorf("bind: widget clear: %w", err)
		}
		if err := syncWidget(widget); err != nil {
			return err
		}
	} else if bridged {
		if err := bridge.TriggerUpdate(el.Node); err != nil {
			return fmt.Errorf("bind: bridge update: %w", err)
		}
	}

	values, empty := selectionValues(value)
	if empty {
		return nil
	}

	switch {
	case bound:
		if err := widget.SetValues(values, true); err != nil {
			return fmt.Errorf("bind: widget set: %w", err)
		}
		return syncWidget(widget)
	case bridged:
		if err := bridge.Val(el.Node, values); err != nil {
			return fmt.Errorf("bind: bridge val: %w", err)
		}
		if err := bridge.TriggerUpdate(el.Node); err != nil {
			return fmt.Errorf("bind: bridge update: %w", err)
		}
		return nil
	default:
		nativeSelect(el, value, values)
		return nil
	}
}

func syncWidget(widget widgets.Select) error {
	syncer, ok := widget.(widgets.Syncer)
	if !ok {
		return nil
	}
	if err := syncer.Sync(); err != nil {
		return fmt.Errorf("bind: widget sync: %w", err)
	}
	return nil
}

// selectionValues normalizes a routed value for selection writes. empty
// reports the guard cases that leave the control cleared: nil, the empty
// string, and the empty sequence.
func selectionValues(value any) (values []string, empty bool) {
	if value == nil {
		return nil, true
	}
	if entries, ok := sequence(value); ok {
		if len(entries) == 0 {
			return nil, true
		}
		out := make([]string, len(entries))
		for i, entry := range entries {
			out[i] = Stringify(entry)
		}
		return out, false
	}
	if s := Stringify(value); s != "" {
		return []string{s}, false
	}
	return nil, true
}

// nativeSelect walks the options directly: sequence values select every loose
// match, scalars select only the first. No match leaves the select cleared.
func nativeSelect(el *dom.Element, value any, values []string) {
	options := el.Options()
	if _, isSeq := sequence(value); isSeq {
		want := make(map[string]struct{}, len(values))
		for _, v := range values {
			want[v] = struct{}{}
		}
		for _, opt := range options {
			if _, ok := want[opt.OptionValue()]; ok {
				opt.SetSelected(true)
			}
		}
		return
	}
	for _, opt := range options {
		if opt.OptionValue() == values[0] {
			opt.SetSelected(true)
			return
		}
	}
}
