// Package history records one row per import run in a small SQLite journal
// under the library's metadata root. It exists for the `pomelo history`
// command and is strictly best-effort: a journal failure never blocks or
// rolls back an import.
package history
