package library

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/google/uuid"
)

// indexVersion is the current revision of the persisted index format. The
// loader accepts anything up to and including this value and refuses newer
// files rather than risk misinterpreting them.
const indexVersion = 1

// contentSentinel separates the index header from the entry body.
const contentSentinel = "--START-CONTENT--"

// Entry is one file known to the library: its content hash and its path
// relative to the output root. Entries are created only when a file has been
// moved into the output tree and are never mutated in place.
type Entry struct {
	Hash    Hash
	RelPath string
}

// loadIndex parses the persisted index at path. A missing file is the
// bootstrap case: an empty index is written and an empty entry set returned.
// Parsing is strict and all-or-nothing; any malformed content fails the whole
// load.
func loadIndex(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := writeIndex(path, nil); err != nil {
				return nil, err
			}
			return nil, nil
		}
		return nil, Wrap(ErrIO, "open index", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, Wrap(ErrIO, "read index", path, err)
		}
		return nil, Wrap(ErrCorruptIndex, "read index", fmt.Sprintf("%s: missing version line", path), nil)
	}
	version, err := strconv.ParseUint(scanner.Text(), 10, 32)
	if err != nil {
		return nil, Wrap(ErrCorruptIndex, "read index", fmt.Sprintf("%s: bad version line %q", path, scanner.Text()), nil)
	}
	if version > indexVersion {
		return nil, Wrap(ErrUnsupportedVersion, "read index", fmt.Sprintf("%s: version %d exceeds supported %d", path, version, indexVersion), nil)
	}

	if !scanner.Scan() || scanner.Text() != contentSentinel {
		if err := scanner.Err(); err != nil {
			return nil, Wrap(ErrIO, "read index", path, err)
		}
		return nil, Wrap(ErrCorruptIndex, "read index", fmt.Sprintf("%s: missing %s sentinel", path, contentSentinel), nil)
	}

	var entries []Entry
	seen := make(map[Hash]struct{})
	lineNo := 2
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		// The relative path may contain spaces, so the line is split at the
		// fixed hash width rather than scanned for whitespace.
		if len(line) < EncodedHashLength+2 || line[EncodedHashLength] != ' ' {
			return nil, Wrap(ErrCorruptIndex, "read index", fmt.Sprintf("%s:%d: malformed entry line", path, lineNo), nil)
		}
		hash, err := DecodeHash(line[:EncodedHashLength])
		if err != nil {
			return nil, Wrap(ErrCorruptIndex, "read index", fmt.Sprintf("%s:%d", path, lineNo), err)
		}
		if _, dup := seen[hash]; dup {
			return nil, Wrap(ErrCorruptIndex, "read index", fmt.Sprintf("%s:%d: duplicate hash %s", path, lineNo, hash.Encode()), nil)
		}
		seen[hash] = struct{}{}
		entries = append(entries, Entry{Hash: hash, RelPath: line[EncodedHashLength+1:]})
	}
	if err := scanner.Err(); err != nil {
		return nil, Wrap(ErrIO, "read index", path, err)
	}
	return entries, nil
}

// writeIndex serializes the full entry set to path. The content goes to a
// uniquely named temp file in the same directory first and is renamed over
// the target, so a crash mid-write leaves the previous index intact. The
// parent directory must already exist.
func writeIndex(path string, entries []Entry) error {
	tmp := fmt.Sprintf("%s.tmp.%s", path, uuid.NewString())

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return Wrap(ErrIO, "write index", tmp, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n%s\n", indexVersion, contentSentinel)
	for _, entry := range entries {
		fmt.Fprintf(w, "%s %s\n", entry.Hash.Encode(), entry.RelPath)
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return Wrap(ErrIO, "write index", tmp, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return Wrap(ErrIO, "write index", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return Wrap(ErrIO, "write index", path, err)
	}
	return nil
}
