package widgets

import "golang.org/x/net/html"

// Select is the contract an enhanced select control exposes: set a group of
// values or clear the selection, in both cases without firing the control's
// own change notifications when silent is true.
type Select interface {
	SetValues(values []string, silent bool) error
	Clear(silent bool) error
}

// Syncer marks Select implementations that buffer silent writes until an
// explicit synchronization pass pushes them into the rendered control. The
// engine calls Sync after every silent operation on widgets that expose it;
// a bare Select is expected to propagate silent writes on its own.
type Syncer interface {
	Sync() error
}

// Bridge drives legacy enhanced selects that predate per-instance bindings.
// One bridge serves the whole registry and is consulted only for elements
// carrying the bridge marker attribute. Val writes the selection through the
// legacy calling convention; TriggerUpdate tells the control to re-render
// from the underlying element.
type Bridge interface {
	Val(node *html.Node, values []string) error
	TriggerUpdate(node *html.Node) error
}

// Numeric formats the display value of a numeric text input. Set receives the
// plain numeric string to format, Clear empties the control, and
// NumericString reports the bare numeric value behind the formatted display.
type Numeric interface {
	Set(value string) error
	Clear() error
	NumericString() (string, error)
}
