package bind

import "errors"

// ErrTypeMismatch flags the fatal precondition class: a container that is not
// an element or document node, or a nil data map. Engine entry points wrap it
// with call context before any mutation happens; test with errors.Is.
var ErrTypeMismatch = errors.New("bind: type mismatch")
