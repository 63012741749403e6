// Package catalog defines the declarative scaffold descriptions appskel
// materializes: a tree of named directory and file nodes, the built-in
// catalogs compiled into the binary, and a loader for user-supplied catalog
// YAML files with JSON Schema validation. Catalogs are immutable once
// constructed; traversal is depth-first in declared order.
package catalog
