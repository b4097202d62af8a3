// Package registry provides a generic, ordered, type-safe registry of named
// items. The field table and the rule store are both built on it: each needs
// lookup by name and iteration in declaration order.
package registry
