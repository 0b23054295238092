package widgets

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// DefaultBridgeMarker is the attribute that opts an element into the legacy
// bridge when no per-element widget is bound.
const DefaultBridgeMarker = "data-enhanced"

// Registry associates widget instances with the elements they decorate.
// Bindings are keyed by node identity, so a registry follows one parsed
// document. Registration is safe for concurrent use; binding resolution
// during a populate or extract pass runs on the caller's goroutine.
type Registry struct {
	mu       sync.RWMutex
	selects  map[*html.Node]Select
	numerics map[*html.Node]Numeric
	bridge   Bridge
	marker   string
}

// NewRegistry constructs an empty registry with the default bridge marker.
func NewRegistry() *Registry {
	return &Registry{
		selects:  make(map[*html.Node]Select),
		numerics: make(map[*html.Node]Numeric),
		marker:   DefaultBridgeMarker,
	}
}

// BindSelect associates an enhanced select widget with an element. Rebinding
// an element that already has one returns an error; Unbind it first.
func (r *Registry) BindSelect(node *html.Node, widget Select) error {
	if node == nil {
		return fmt.Errorf("widgets: element is required")
	}
	if widget == nil {
		return fmt.Errorf("widgets: select widget is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.selects[node]; exists {
		return fmt.Errorf("widgets: element already has a select widget")
	}
	r.selects[node] = widget
	return nil
}

// MustBindSelect panics on binding failure.
func (r *Registry) MustBindSelect(node *html.Node, widget Select) {
	if err := r.BindSelect(node, widget); err != nil {
		panic(err)
	}
}

// BindNumeric associates a numeric formatter widget with an element.
func (r *Registry) BindNumeric(node *html.Node, widget Numeric) error {
	if node == nil {
		return fmt.Errorf("widgets: element is required")
	}
	if widget == nil {
		return fmt.Errorf("widgets: numeric widget is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.numerics[node]; exists {
		return fmt.Errorf("widgets: element already has a numeric widget")
	}
	r.numerics[node] = widget
	return nil
}

// MustBindNumeric panics on binding failure.
func (r *Registry) MustBindNumeric(node *html.Node, widget Numeric) {
	if err := r.BindNumeric(node, widget); err != nil {
		panic(err)
	}
}

// Unbind drops every widget bound to the element.
func (r *Registry) Unbind(node *html.Node) {
	if node == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.selects, node)
	delete(r.numerics, node)
}

// Reset drops every element binding. The bridge and its marker stay.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.selects = make(map[*html.Node]Select)
	r.numerics = make(map[*html.Node]Numeric)
}

// SelectFor returns the select widget bound to the element.
func (r *Registry) SelectFor(node *html.Node) (Select, bool) {
	if node == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	widget, ok := r.selects[node]
	return widget, ok
}

// NumericFor returns the numeric widget bound to the element.
func (r *Registry) NumericFor(node *html.Node) (Numeric, bool) {
	if node == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	widget, ok := r.numerics[node]
	return widget, ok
}

// SetBridge installs the registry-wide legacy bridge. Pass nil to remove it.
func (r *Registry) SetBridge(bridge Bridge) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bridge = bridge
}

// Bridge returns the installed legacy bridge.
func (r *Registry) Bridge() (Bridge, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.bridge, r.bridge != nil
}

// SetBridgeMarker overrides the attribute that opts elements into the bridge.
// An empty name restores the default.
func (r *Registry) SetBridgeMarker(name string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		trimmed = DefaultBridgeMarker
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.marker = trimmed
}

// BridgeMarker returns the attribute consulted for bridge dispatch.
func (r *Registry) BridgeMarker() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.marker
}
