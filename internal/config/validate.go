package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateImport(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.OutputDir == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/pomelo/config.toml"
		}
		return fmt.Errorf("paths.output_dir is required. Edit %s (create with 'pomelo config init') or pass --output", defaultPath)
	}
	if len(c.Paths.InputDirs) == 0 {
		return errors.New("paths.input_dirs must name at least one directory (or pass --input)")
	}
	return nil
}

func (c *Config) validateImport() error {
	if len(c.Import.Extensions) == 0 {
		return errors.New("import.extensions must not be empty")
	}
	switch c.Import.SortPolicy {
	case "root", "date":
		return nil
	default:
		return fmt.Errorf("import.sort_policy must be \"root\" or \"date\", got %q", c.Import.SortPolicy)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}
