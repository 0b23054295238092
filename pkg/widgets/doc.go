// Package widgets declares the capability contracts enhanced form controls
// expose to the binding engine, plus the registry that associates live widget
// instances with the elements they decorate. The engine only drives
// registered instances; creating, configuring, and tearing down widgets stays
// with the host application.
package widgets
