package library

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"pomelo/internal/fileutil"
	"pomelo/internal/logging"
)

const (
	metaDirName   = "_pometa"
	indexFileName = "hashes"
	lockFileName  = "lock"
)

// UnsortedFile is a candidate path paired with its content hash. It exists
// only as the hand-off between CheckNew and Place and is never persisted.
type UnsortedFile struct {
	Path string
	Hash Hash
}

// Library owns the output root, the metadata root beneath it, and the set of
// entries currently known. No two entries ever share a content hash.
type Library struct {
	outputRoot string
	metaRoot   string
	entries    []Entry
	seen       map[Hash]struct{}
	lock       *flock.Flock
	logger     *slog.Logger
}

// Open loads the library persisted under outputRoot, creating the metadata
// root and an empty index when none exists yet. The session lock is held
// until Close; a second pomelo process opening the same root fails with
// ErrLocked instead of racing the index.
func Open(outputRoot string, logger *slog.Logger) (*Library, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.String("component", "library"))

	metaRoot := filepath.Join(outputRoot, metaDirName)
	if err := os.MkdirAll(metaRoot, 0o755); err != nil {
		return nil, Wrap(ErrIO, "create metadata root", metaRoot, err)
	}

	lock := flock.New(filepath.Join(metaRoot, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, Wrap(ErrIO, "acquire library lock", lock.Path(), err)
	}
	if !ok {
		return nil, Wrap(ErrLocked, "acquire library lock", "another pomelo process is using this library", nil)
	}

	entries, err := loadIndex(filepath.Join(metaRoot, indexFileName))
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	seen := make(map[Hash]struct{}, len(entries))
	for _, entry := range entries {
		seen[entry.Hash] = struct{}{}
	}

	logger.Debug("library loaded",
		logging.String("output_root", outputRoot),
		logging.Int("entries", len(entries)),
	)
	return &Library{
		outputRoot: outputRoot,
		metaRoot:   metaRoot,
		entries:    entries,
		seen:       seen,
		lock:       lock,
		logger:     logger,
	}, nil
}

// Root returns the output root path.
func (l *Library) Root() string {
	return l.outputRoot
}

// MetaRoot returns the metadata directory beneath the output root.
func (l *Library) MetaRoot() string {
	return l.metaRoot
}

// Entries returns a copy of the current entry set for read-only consumers.
func (l *Library) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// CheckNew hashes each candidate and returns, in input order, the ones whose
// content the library has not seen. Candidates matching an existing entry by
// hash are skipped, as is the second occurrence of identical content within
// the batch itself. The index is not modified.
func (l *Library) CheckNew(candidates []string) ([]UnsortedFile, error) {
	var newFiles []UnsortedFile
	batch := make(map[Hash]struct{})

	for _, path := range candidates {
		hash, err := HashFile(path)
		if err != nil {
			return nil, err
		}
		if _, ok := l.seen[hash]; ok {
			l.logger.Debug("file already in library",
				logging.String("path", path),
				logging.String("hash", hash.Encode()),
			)
			continue
		}
		if _, ok := batch[hash]; ok {
			l.logger.Debug("duplicate content within batch",
				logging.String("path", path),
				logging.String("hash", hash.Encode()),
			)
			continue
		}
		batch[hash] = struct{}{}
		l.logger.Debug("found new file",
			logging.String("path", path),
			logging.String("hash", hash.Encode()),
		)
		newFiles = append(newFiles, UnsortedFile{Path: path, Hash: hash})
	}
	return newFiles, nil
}

// Place moves each file into the output tree at the destination the policy
// computes and records an entry for it. Files are processed in input order;
// on failure the batch stops at the offending file and everything before it
// stays moved and recorded. There is no rollback. An already-existing
// destination fails that file rather than overwriting it.
func (l *Library) Place(files []UnsortedFile, policy SortPolicy) error {
	l.logger.Info("sorting files",
		logging.Int("count", len(files)),
		logging.String("policy", policy.String()),
	)
	for _, file := range files {
		if _, ok := l.seen[file.Hash]; ok {
			l.logger.Debug("hash already recorded, skipping",
				logging.String("path", file.Path),
				logging.String("hash", file.Hash.Encode()),
			)
			continue
		}

		rel, err := policy.relativePath(file.Path)
		if err != nil {
			return err
		}
		dest := filepath.Join(l.outputRoot, rel)

		if dir := filepath.Dir(dest); dir != l.outputRoot {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return Wrap(ErrIO, "create destination directory", dir, err)
			}
		}
		if _, err := os.Lstat(dest); err == nil {
			return Wrap(ErrIO, "place file", file.Path+" -> "+dest, fs.ErrExist)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Wrap(ErrIO, "place file", dest, err)
		}

		l.logger.Info("sorting file",
			logging.String("from", file.Path),
			logging.String("to", dest),
		)
		if err := fileutil.MoveFile(file.Path, dest); err != nil {
			return Wrap(ErrIO, "place file", file.Path+" -> "+dest, err)
		}

		l.entries = append(l.entries, Entry{Hash: file.Hash, RelPath: rel})
		l.seen[file.Hash] = struct{}{}
	}
	return nil
}

// Persist writes the complete current entry set to the index file. It may be
// called more than once; each call serializes the full set.
func (l *Library) Persist() error {
	return writeIndex(filepath.Join(l.metaRoot, indexFileName), l.entries)
}

// Close releases the session lock. The Library must not be used afterwards.
func (l *Library) Close() error {
	if l.lock == nil {
		return nil
	}
	err := l.lock.Unlock()
	l.lock = nil
	return err
}
