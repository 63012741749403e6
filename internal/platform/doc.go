// Package platform provides cross-platform filesystem operations for
// permission management. On Unix systems it applies chmod directly; on
// Windows, where Unix permission bits have no meaning, the operations are
// no-ops.
package platform
