package bind

import "github.com/goliatone/go-formbind/pkg/dom"

type populateConfig struct {
	attrs     map[string]dom.Attrs
	rawMarkup bool
}

// PopulateOption customises a single Populate call.
type PopulateOption func(*populateConfig)

// Attributes applies attribute directives alongside value routing. Directives
// are keyed the way values are and land on every element of the key's group.
func Attributes(attrs map[string]dom.Attrs) PopulateOption {
	return func(cfg *populateConfig) {
		cfg.attrs = attrs
	}
}

// RawMarkup disables text escaping for generic content targets: string values
// parse as HTML fragments instead of being inserted as text. List rendering
// keeps escaping regardless.
func RawMarkup() PopulateOption {
	return func(cfg *populateConfig) {
		cfg.rawMarkup = true
	}
}
