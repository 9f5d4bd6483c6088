// Package library implements the content-addressed photo library: a
// deduplication index keyed by SHA-256 content hash, its versioned on-disk
// persistence format, and the sort policies that decide where newly accepted
// files land under the output root.
//
// A Library is opened against an output root, holds an advisory lock for the
// duration of the session, and couples filesystem moves with in-memory index
// updates. The index is persisted explicitly, once per session, by Persist;
// there is no autosave and no delete operation.
//
// The package returns plain errors tagged with the exported sentinels
// (ErrCorruptIndex, ErrUnsupportedVersion, ...) and leaves logging decisions
// to the caller apart from per-file debug lines on the logger it is handed.
package library
