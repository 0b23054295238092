// Package formbind binds plain key-value data to the elements of a parsed
// HTML document and reads it back. The root package re-exports the pieces
// most callers need; pkg/bind, pkg/dom, and pkg/widgets carry the full API.
package formbind

import (
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/goliatone/go-formbind/pkg/bind"
	"github.com/goliatone/go-formbind/pkg/dom"
	"github.com/goliatone/go-formbind/pkg/widgets"
)

// Binder routes values onto elements and extracts them back.
type Binder = bind.Binder

// Option customises a Binder.
type Option = bind.Option

// PopulateOption customises a single Populate call.
type PopulateOption = bind.PopulateOption

// Attr is a single attribute directive; Attrs maps attribute names to them.
type Attr = dom.Attr

// Attrs maps attribute names to directives.
type Attrs = dom.Attrs

// WidgetRegistry associates enhanced-control instances with their elements.
type WidgetRegistry = widgets.Registry

// ErrTypeMismatch flags fatal precondition violations on the engine entry
// points.
var ErrTypeMismatch = bind.ErrTypeMismatch

// New constructs a Binder, mirroring bind.New.
func New(options ...Option) *Binder {
	return bind.New(options...)
}

// NewWidgetRegistry constructs an empty widget registry for WithWidgets.
func NewWidgetRegistry() *widgets.Registry {
	return widgets.NewRegistry()
}

// Populate binds data onto container with a fresh default Binder. Callers
// driving enhanced widgets should construct their own Binder via New with
// WithWidgets instead.
func Populate(container *html.Node, data map[string]any, opts ...PopulateOption) error {
	return bind.New().Populate(container, data, opts...)
}

// Values extracts current control state for keys with a fresh default Binder.
func Values(container *html.Node, keys ...string) (bind.Values, error) {
	return bind.New().Values(container, keys...)
}

// WithWidgets injects the registry of enhanced controls the binder drives.
func WithWidgets(registry *widgets.Registry) Option {
	return bind.WithWidgets(registry)
}

// WithLogger injects the logger used for per-key diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return bind.WithLogger(logger)
}

// WithSanitizePolicy launders raw markup through policy before insertion.
func WithSanitizePolicy(policy *bluemonday.Policy) Option {
	return bind.WithSanitizePolicy(policy)
}

// Attributes applies attribute directives alongside value routing.
func Attributes(attrs map[string]Attrs) PopulateOption {
	return bind.Attributes(attrs)
}

// RawMarkup disables text escaping for generic content targets.
func RawMarkup() PopulateOption {
	return bind.RawMarkup()
}

// AttrSet returns a directive writing an explicit attribute value.
func AttrSet(value string) Attr {
	return dom.AttrSet(value)
}

// AttrPresent returns a directive asserting bare attribute presence.
func AttrPresent() Attr {
	return dom.AttrPresent()
}

// AttrRemove returns a directive deleting the attribute.
func AttrRemove() Attr {
	return dom.AttrRemove()
}
