// Package scaffold materializes catalog trees on disk. It powers the
// "appskel create" command, creating directories and zero-byte placeholder
// files in declared order with touch semantics: existing entries are reused,
// never truncated or overwritten. It also backs "appskel verify", which
// checks an existing tree against a catalog without modifying it.
package scaffold
