package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTools()
	c.normalizeMerge()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StagingDir) == "" {
		c.Paths.StagingDir = defaultStagingDir
	}
	if c.Paths.StagingDir, err = expandPath(c.Paths.StagingDir); err != nil {
		return fmt.Errorf("paths.staging_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTools() {
	if strings.TrimSpace(c.Tools.MagickCommand) == "" {
		c.Tools.MagickCommand = defaultMagickCommand
	}
	if strings.TrimSpace(c.Tools.SofficeCommand) == "" {
		c.Tools.SofficeCommand = defaultSofficeCommand
	}
	if strings.TrimSpace(c.Tools.GsCommand) == "" {
		c.Tools.GsCommand = defaultGsCommand
	}
	if c.Tools.ConvertTimeout <= 0 {
		c.Tools.ConvertTimeout = defaultConvertTimeout
	}
	if c.Tools.RenderTimeout <= 0 {
		c.Tools.RenderTimeout = defaultRenderTimeout
	}
	if c.Tools.AssembleTimeout <= 0 {
		c.Tools.AssembleTimeout = defaultAssembleTimeout
	}
}

func (c *Config) normalizeMerge() {
	c.Merge.Quality = strings.ToLower(strings.TrimSpace(c.Merge.Quality))
	if c.Merge.Quality == "" {
		c.Merge.Quality = defaultQuality
	}
	if c.Merge.MaxWorkers <= 0 {
		c.Merge.MaxWorkers = defaultMaxWorkers
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
