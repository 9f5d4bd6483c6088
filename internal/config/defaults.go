package config

const (
	defaultLogDir     = "~/.local/share/pomelo/logs"
	defaultSortPolicy = "root"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

var defaultExtensions = []string{
	"jpg", "jpeg", "png", "gif", "heic", "webp", "tif", "tiff",
	"raw", "cr2", "cr3", "nef", "arw", "dng",
	"mp4", "mov",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Import: Import{
			Extensions: append([]string(nil), defaultExtensions...),
			SortPolicy: defaultSortPolicy,
			History:    true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
