package bind

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// DefaultMarkupPolicy returns a shared policy suitable for laundering raw
// markup before insertion: the standard user-generated-content rules plus
// data attributes, which the select bridge marker relies on.
func DefaultMarkupPolicy() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowDataAttributes()
		markupPolicy = policy
	})
	return markupPolicy
}
