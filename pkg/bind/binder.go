package bind

import (
	"log/slog"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formbind/pkg/widgets"
)

// Option customises a Binder.
type Option func(*Binder)

// WithWidgets injects the registry of enhanced controls the binder drives.
func WithWidgets(registry *widgets.Registry) Option {
	return func(b *Binder) {
		b.widgets = registry
	}
}

// WithLogger injects the logger used for per-key diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Binder) {
		b.logger = logger
	}
}

// WithSanitizePolicy launders raw markup through policy before insertion.
// Without one, raw markup mode inserts values as parsed.
func WithSanitizePolicy(policy *bluemonday.Policy) Option {
	return func(b *Binder) {
		b.policy = policy
	}
}

// Binder routes data values onto elements and extracts them back. A zero
// configuration binder works against plain documents; widget-aware callers
// share their registry through WithWidgets.
type Binder struct {
	widgets *widgets.Registry
	logger  *slog.Logger
	policy  *bluemonday.Policy
}

// New constructs a Binder applying any provided options. Missing dependencies
// fall back to an empty widget registry and the default logger.
func New(options ...Option) *Binder {
	b := &Binder{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	b.applyDefaults()
	return b
}

func (b *Binder) applyDefaults() {
	if b.widgets == nil {
		b.widgets = widgets.NewRegistry()
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
}

// Widgets returns the registry the binder consults, letting callers bind
// widget instances after construction.
func (b *Binder) Widgets() *widgets.Registry {
	return b.widgets
}
