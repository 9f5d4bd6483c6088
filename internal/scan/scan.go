// Package scan enumerates candidate files in the configured input
// directories. Directories are read non-recursively and only files whose
// extension appears in the configured set are captured.
package scan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"pomelo/internal/logging"
)

// Scan lists the files directly inside each dir whose extension matches one
// of extensions (case-insensitive, leading dot optional). Subdirectories and
// extensionless files are skipped. Results are in directory order, with each
// directory's entries sorted by name.
func Scan(dirs []string, extensions []string, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.String("component", "scan"))

	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			allowed[ext] = struct{}{}
		}
	}

	var captured []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read input directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
			if ext == "" {
				logger.Debug("no extension for file", logging.String("file", name))
				continue
			}
			if _, ok := allowed[ext]; !ok {
				logger.Debug("ignoring file", logging.String("file", name))
				continue
			}
			logger.Debug("capturing file", logging.String("file", name))
			captured = append(captured, filepath.Join(dir, name))
		}
	}
	logger.Debug("scan complete",
		logging.Int("captured", len(captured)),
		logging.Int("dirs", len(dirs)),
	)
	return captured, nil
}
