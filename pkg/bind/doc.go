// Package bind implements the bidirectional binding engine. Populate routes a
// key-value data map onto the elements of a container; Values reads current
// control state back out. Matching everywhere follows a single loose equality
// rule: stringify both operands, then compare as text.
package bind
