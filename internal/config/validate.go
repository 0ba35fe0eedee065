package config

import (
	"fmt"
)

var validQualities = map[string]struct{}{
	"default":  {},
	"screen":   {},
	"ebook":    {},
	"printer":  {},
	"prepress": {},
}

var validLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if _, ok := validQualities[c.Merge.Quality]; !ok {
		return fmt.Errorf("merge.quality: unknown profile %q (expected default, screen, ebook, printer, or prepress)", c.Merge.Quality)
	}
	if _, ok := validLogFormats[c.Logging.Format]; !ok {
		return fmt.Errorf("logging.format: unknown format %q (expected console or json)", c.Logging.Format)
	}
	if c.Merge.MaxWorkers > 64 {
		return fmt.Errorf("merge.max_workers: %d is unreasonably high (max 64)", c.Merge.MaxWorkers)
	}
	return nil
}
