// Package dom models the slice of an HTML document the binding engine works
// with: element classification, key-based group resolution, and attribute
// directives over golang.org/x/net/html nodes.
package dom
